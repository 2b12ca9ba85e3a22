package models

import "time"

// Printer is a monitored printer registered by one of the user's proxy
// devices.
type Printer struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	IP               string     `json:"ip"`
	Location         *string    `json:"location"`
	Model            *string    `json:"model"`
	Manufacturer     *string    `json:"manufacturer"`
	SerialNumber     *string    `json:"serial_number"`
	ConnectionStatus string     `json:"connection_status"`
	LastSeenAt       *time.Time `json:"last_seen_at"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// PrinterUpdate carries the patchable printer fields. Nil means "leave as is".
type PrinterUpdate struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Model    *string `json:"model,omitempty"`
}
