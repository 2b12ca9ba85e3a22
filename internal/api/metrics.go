package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"printwatch/internal/models"
)

// MetricsGroup wraps the metrics history endpoints.
type MetricsGroup struct {
	c *Client
}

// Summary returns one row per printer with its latest sample, backing the
// fleet overview.
func (g *MetricsGroup) Summary(ctx context.Context) ([]models.PrinterSummary, error) {
	var rows []models.PrinterSummary
	if err := g.c.get(ctx, "/metrics/summary", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// History returns the samples of one printer over the last days days,
// newest first as served by the backend.
func (g *MetricsGroup) History(ctx context.Context, printerID, days int) ([]models.MetricsPoint, error) {
	q := url.Values{"days": []string{strconv.Itoa(days)}}
	var points []models.MetricsPoint
	if err := g.c.get(ctx, fmt.Sprintf("/metrics/%d", printerID), q, &points); err != nil {
		return nil, err
	}
	return points, nil
}
