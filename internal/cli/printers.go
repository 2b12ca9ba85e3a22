package cli

import (
	"context"
	"errors"
	"fmt"

	"printwatch/internal/api"
	"printwatch/internal/models"
)

// Printers lists all printers of the current user.
func (a *App) Printers(ctx context.Context) error {
	printers, err := a.api.Printers.List(ctx)
	if err != nil {
		return err
	}

	if len(printers) == 0 {
		fmt.Fprintln(a.out, "No printers yet. Set up a proxy device to start monitoring ('adddevice').")
		return nil
	}

	header := []string{"ID", "NAME", "MODEL", "LOCATION", "IP", "STATUS", "LAST SEEN"}
	var rows [][]string
	for _, p := range printers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			strOrNA(p.Model),
			strOrNA(p.Location),
			p.IP,
			p.ConnectionStatus,
			timeOrNever(p.LastSeenAt),
		})
	}
	table(a.out, header, rows)
	return nil
}

// PrinterShow renders one printer's detail view: identity, the latest
// sample, and the metrics history of the selected day range as charts.
// Missing metrics are an empty state, not an error.
func (a *App) PrinterShow(ctx context.Context, id, days int) error {
	printer, err := a.api.Printers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "Printer %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s  (%s)\n", printer.Name, strOrNA(printer.Model))
	fmt.Fprintf(a.out, "  Location: %s\n", strOrNA(printer.Location))
	fmt.Fprintf(a.out, "  IP:       %s\n", printer.IP)
	fmt.Fprintf(a.out, "  Status:   %s\n", printer.ConnectionStatus)
	fmt.Fprintf(a.out, "  Last seen: %s\n", timeOrNever(printer.LastSeenAt))

	points, err := a.api.Metrics.History(ctx, id, days)
	if err != nil {
		a.log.Debug(ctx, "no metrics for printer", "printer_id", id, "error", err)
		points = nil
	}

	if len(points) == 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "No metrics data available yet.")
		fmt.Fprintln(a.out, "The proxy device collects data every 5 minutes. Check back soon!")
		return nil
	}

	// Backend serves newest first; charts read oldest to newest.
	reversePoints(points)
	latest := points[len(points)-1]

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Latest sample (%s):\n", latest.Timestamp.Local().Format(timeFormat))
	fmt.Fprintf(a.out, "  Total pages: %s\n", intOrNA(latest.TotalPages))
	fmt.Fprintf(a.out, "  Toner:       %s  %s\n", pctOrNA(latest.TonerLevelPct), strOrNA(latest.TonerStatus))
	fmt.Fprintf(a.out, "  Drum:        %s\n", pctOrNA(latest.DrumLevelPct))

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "History, last %d days (%d samples)\n\n", days, len(points))

	toner, tonerSet := intSeries(points, func(p models.MetricsPoint) *int { return p.TonerLevelPct })
	renderChart(a.out, "Toner level (%)", toner, tonerSet, 100)
	fmt.Fprintln(a.out)

	pages, pagesSet := intSeries(points, func(p models.MetricsPoint) *int { return p.TotalPages })
	renderChart(a.out, "Total pages", pages, pagesSet, 0)

	return nil
}

// RenamePrinter sets a new display name.
func (a *App) RenamePrinter(ctx context.Context, id int, name string) error {
	printer, err := a.api.Printers.Update(ctx, id, models.PrinterUpdate{Name: &name})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "Printer %d not found.\n", id)
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Renamed printer %d to %q.\n", printer.ID, printer.Name)
	return nil
}

// DeletePrinter removes a printer and its history after confirmation.
func (a *App) DeletePrinter(ctx context.Context, id int) error {
	prompt := fmt.Sprintf("Delete printer %d? This also deletes all historical metrics data.", id)
	if !confirm(a.reader, prompt, a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.Printers.Delete(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "Printer %d not found.\n", id)
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Printer %d deleted.\n", id)
	return nil
}

func reversePoints(points []models.MetricsPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

func intSeries(points []models.MetricsPoint, pick func(models.MetricsPoint) *int) ([]float64, []bool) {
	values := make([]float64, len(points))
	present := make([]bool, len(points))
	for i, p := range points {
		if v := pick(p); v != nil {
			values[i] = float64(*v)
			present[i] = true
		}
	}
	return values, present
}
