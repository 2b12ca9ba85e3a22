package models

import "time"

// MetricsPoint is one time-series sample for a printer. The collectors poll
// roughly every five minutes, so a 7-day window is on the order of two
// thousand points.
type MetricsPoint struct {
	ID            int        `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	TotalPages    *int       `json:"total_pages"`
	TonerLevelPct *int       `json:"toner_level_pct"`
	TonerStatus   *string    `json:"toner_status"`
	DrumLevelPct  *int       `json:"drum_level_pct"`
	DeviceStatus  *int       `json:"device_status"`
	Model         *string    `json:"model"`
}

// PrinterSummary is one row of the fleet overview: the printer's identity
// joined with its most recent sample.
type PrinterSummary struct {
	PrinterID        int        `json:"printer_id"`
	PrinterName      string     `json:"printer_name"`
	PrinterIP        string     `json:"printer_ip"`
	Location         *string    `json:"location"`
	LatestTimestamp  *time.Time `json:"latest_timestamp"`
	TotalPages       *int       `json:"total_pages"`
	TonerLevelPct    *int       `json:"toner_level_pct"`
	TonerStatus      *string    `json:"toner_status"`
	DrumLevelPct     *int       `json:"drum_level_pct"`
	ConnectionStatus string     `json:"connection_status"`
}
