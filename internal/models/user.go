// Package models defines the data transfer objects exchanged with the
// PrinterMonitor backend. Field names and JSON tags follow the backend's
// serializers; all entities here are fetched, displayed and discarded.
// Nothing is reconciled or cached client-side except the bearer token.
package models

import "time"

// License is the subscription summary embedded in the current-user profile.
// It is read-only from the console's perspective; only billing actions on
// the backend mutate it.
type License struct {
	TierID      string     `json:"tier_id"`
	Status      string     `json:"status"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// TrialActive reports whether the license is on a still-running trial.
func (l *License) TrialActive(now time.Time) bool {
	return l != nil && l.Status == "trial" && l.TrialEndsAt != nil && l.TrialEndsAt.After(now)
}

// User is the authenticated operator's profile as returned by /auth/me.
type User struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	IsActive    bool       `json:"is_active"`
	IsVerified  bool       `json:"is_verified"`
	CreatedAt   *time.Time `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
	License     *License   `json:"license,omitempty"`
}
