package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *TokenStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTokenStore(db)
}

func TestTokenStore_EmptyWhenAbsent(t *testing.T) {
	s := setupStore(t)

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok_abc"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", tok)
}

func TestTokenStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "first"))
	require.NoError(t, s.Save(ctx, "second"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestTokenStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, "tok_abc"))
	require.NoError(t, s.Clear(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestTokenStore_ClearWithoutTokenIsNoop(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Clear(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewTokenStore(db).Save(ctx, "persisted"))
	require.NoError(t, db.Close())

	// Token survives process restart; migrations must be idempotent.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	tok, err := NewTokenStore(db).Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}
