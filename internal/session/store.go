// Package session owns the in-memory authentication state of the console:
// who is signed in, and whether the startup credential resolution is still
// in flight. Exactly one Store exists per running console; it is recreated
// on every start and re-resolves the user from the persisted credential.
package session

import (
	"context"
	"errors"
	"sync"

	"printwatch/internal/api"
	"printwatch/internal/logging"
	"printwatch/internal/models"
)

// AuthAPI is the slice of the backend surface the store needs. Satisfied by
// *api.AuthGroup.
type AuthAPI interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// TokenStore persists the bearer credential. Satisfied by *state.TokenStore.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Snapshot is a read-only view of the session state.
//
// Loading=true means the startup resolution has not settled yet and the UI
// must not assume a final state. Loading=false with User=nil is the only
// "definitely unauthenticated" combination.
type Snapshot struct {
	User    *models.User
	Loading bool
}

// Store is the single source of truth for the signed-in user. It is mutated
// only through its own actions (Resolve, Login, Logout, Register); if two
// actions race, last-resolved-wins.
type Store struct {
	auth   AuthAPI
	tokens TokenStore
	log    logging.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// New creates a Store in the initial state: loading, nobody signed in.
func New(auth AuthAPI, tokens TokenStore, log logging.Logger) *Store {
	return &Store{
		auth:    auth,
		tokens:  tokens,
		log:     log.With("component", "session"),
		loading: true,
	}
}

// Snapshot returns a copy of the current state. The contained User is
// detached from the store and safe to read after later actions.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{User: user, Loading: s.loading}
}

// Resolve performs the startup credential resolution. Without a stored
// credential it settles unauthenticated immediately and issues no network
// call. With one, it exchanges the credential for the current profile; a
// rejected credential is evicted silently and the store settles
// unauthenticated. Transport failures are returned to the caller; the
// credential is kept so a later start can retry. The store never returns
// to the loading state once settled.
func (s *Store) Resolve(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.settle(nil)
		return err
	}
	if token == "" {
		s.settle(nil)
		return nil
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.log.Info(ctx, "stored credential rejected, clearing")
			if clearErr := s.tokens.Clear(ctx); clearErr != nil {
				s.log.Error(ctx, "credential eviction failed", "error", clearErr)
			}
			s.settle(nil)
			return nil
		}
		s.settle(nil)
		return err
	}

	s.log.Info(ctx, "session resolved", "email", user.Email)
	s.settle(user)
	return nil
}

// Login exchanges the credentials, persists the returned token, and then
// resolves the profile. On a failed exchange no credential is stored and
// the user is unchanged.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		// The credential is stored; the next startup resolution retries
		// or evicts it.
		return err
	}

	s.log.Info(ctx, "signed in", "email", user.Email)
	s.settle(user)
	return nil
}

// Logout evicts the credential and forgets the user without waiting on any
// network response. Server-side invalidation is fire-and-forget and uses
// the evicted credential, since the logout route itself is authenticated.
func (s *Store) Logout(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential read failed during logout", "error", err)
	}

	clearErr := s.tokens.Clear(ctx)
	s.settle(nil)

	if token != "" {
		go func() {
			if lerr := s.auth.Logout(context.WithoutCancel(ctx), token); lerr != nil {
				s.log.Debug(ctx, "server-side logout failed", "error", lerr)
			}
		}()
	}

	return clearErr
}

// Register creates the account and, on success, signs in with the same
// credentials. A failed creation aborts before any login attempt.
func (s *Store) Register(ctx context.Context, email, password, fullName string) error {
	if _, err := s.auth.Register(ctx, email, password, fullName); err != nil {
		return err
	}
	return s.Login(ctx, email, password)
}

func (s *Store) settle(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.loading = false
}
