package cli

import (
	"context"
	"fmt"
)

// Status renders the fleet overview: one line per printer with its latest
// sample, the console's counterpart of the dashboard landing page.
func (a *App) Status(ctx context.Context) error {
	rows, err := a.api.Metrics.Summary(ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No printers yet. Set up a proxy device to start monitoring ('adddevice').")
		return nil
	}

	header := []string{"ID", "PRINTER", "LOCATION", "IP", "STATUS", "TONER", "PAGES", "UPDATED"}
	var out [][]string
	for _, r := range rows {
		out = append(out, []string{
			fmt.Sprintf("%d", r.PrinterID),
			r.PrinterName,
			strOrNA(r.Location),
			r.PrinterIP,
			r.ConnectionStatus,
			tonerBar(r.TonerLevelPct),
			intOrNA(r.TotalPages),
			timeOrNever(r.LatestTimestamp),
		})
	}
	table(a.out, header, out)
	return nil
}
