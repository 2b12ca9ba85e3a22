package api

import (
	"context"
	"net/http"

	"printwatch/internal/models"
)

// AuthGroup wraps the backend's account endpoints.
type AuthGroup struct {
	c *Client
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account. The backend rejects already-registered
// emails with a validation error.
func (g *AuthGroup) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	var user models.User
	err := g.c.post(ctx, "/auth/register", registerRequest{Email: email, Password: password, FullName: fullName}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token.
func (g *AuthGroup) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := g.c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me resolves the cached credential into the current user's profile,
// including the embedded license summary.
func (g *AuthGroup) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout tells the backend to invalidate the session for the given
// credential. The route is authenticated, and the caller has already
// evicted the cached token by the time this runs, so the credential is
// passed in rather than read from the token store. Best effort; the
// client-side eviction does not depend on it.
func (g *AuthGroup) Logout(ctx context.Context, token string) error {
	return g.c.doBearer(ctx, http.MethodPost, "/auth/logout", token)
}
