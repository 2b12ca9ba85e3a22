package models

import "fmt"

// Tier is one entry of the backend-owned pricing catalog. Prices are in
// cents; -1 on a limit means unlimited.
type Tier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	PriceYearly  int      `json:"price_yearly"`
	MaxDevices   int      `json:"max_devices"`
	MaxPrinters  int      `json:"max_printers"`
	HistoryDays  int      `json:"history_days"`
	Features     []string `json:"features"`
}

// FormatPrice renders a price in cents as dollars, e.g. 1000 -> "$10.00".
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// TierIndex returns the position of tierID in the catalog, or -1 when the
// tier is unknown. The catalog order defines upgrade/downgrade direction.
func TierIndex(tiers []Tier, tierID string) int {
	for i, t := range tiers {
		if t.ID == tierID {
			return i
		}
	}
	return -1
}
