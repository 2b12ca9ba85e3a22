package models

import "time"

// Subnet is a remote CIDR range configured for a proxy device to scan.
type Subnet struct {
	ID            int        `json:"id"`
	Subnet        string     `json:"subnet"`
	Description   *string    `json:"description"`
	DeviceID      *int       `json:"device_id"`
	Enabled       bool       `json:"enabled"`
	CreatedAt     *time.Time `json:"created_at"`
	LastScannedAt *time.Time `json:"last_scanned_at"`
}

// SubnetUpdate carries the patchable subnet fields. Nil means "leave as is".
type SubnetUpdate struct {
	Description *string `json:"description,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	DeviceID    *int    `json:"device_id,omitempty"`
}
