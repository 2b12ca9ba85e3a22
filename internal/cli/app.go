// Package cli implements the interactive operator console. Every command is
// a leaf consumer: fetch through the API client, render, discard. The only
// shared state is the session store; commands hold nothing but view-scoped
// input such as the selected day range.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"printwatch/internal/api"
	"printwatch/internal/config"
	"printwatch/internal/logging"
	"printwatch/internal/session"
	"printwatch/internal/state"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	api     *api.Client
	session *session.Store
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the console: local state database, API client, and session
// store, all constructed once at process start.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, cfg.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("init local state: %w", err)
	}

	tokens := state.NewTokenStore(db)
	client := api.New(cfg.APIBaseURL, tokens, log)
	store := session.New(client.Auth, tokens, log)

	return &App{
		config:  cfg,
		log:     log,
		api:     client,
		session: store,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the local state database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	snap := a.session.Snapshot()
	return !snap.Loading && snap.User != nil
}

// reportErr presents a command failure per the console's error policy:
// rejected credentials force the session back to unauthenticated, all other
// failures are shown and the command can simply be retried.
func (a *App) reportErr(ctx context.Context, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Your session is no longer valid. Please login again.")
		if lerr := a.session.Logout(ctx); lerr != nil {
			a.log.Error(ctx, "forced logout failed", "error", lerr)
		}
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Cannot reach the backend. Check your connection and try again.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

// reportAuthErr presents a failed credential exchange. A 401 here is a
// rejected login or registration, not an expired session, so the backend's
// detail is shown verbatim instead of the re-login messaging.
func (a *App) reportAuthErr(err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		fmt.Fprintln(a.out, apiErr.Detail)
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Cannot reach the backend. Check your connection and try again.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
