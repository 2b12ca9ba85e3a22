package models

import "time"

// Device is a proxy agent (Raspberry Pi, server) that discovers and polls
// printers on the operator's network. The console only manages its
// registration metadata.
type Device struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Version    *string    `json:"version"`
	LastSeenAt *time.Time `json:"last_seen_at"`
	CreatedAt  *time.Time `json:"created_at"`

	// APIKey is populated only in the registration response and is never
	// shown again by the backend.
	APIKey string `json:"api_key,omitempty"`
}
