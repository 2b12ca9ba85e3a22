package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// tokenKey is the single metadata key under which the bearer credential is
// cached. Absence of the key means unauthenticated.
const tokenKey = "token"

// TokenStore persists the bearer credential between runs. It is the
// console's analog of a browser's local storage: the session store writes
// and evicts the token, the request pipeline reads it per outbound call.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Token returns the cached credential, or an empty string when none is
// stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return string(value), nil
}

// Save stores the credential, replacing any previous one.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, []byte(token))
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// Clear removes the credential. Clearing an absent credential is a no-op.
func (s *TokenStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
