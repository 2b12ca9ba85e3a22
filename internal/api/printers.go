package api

import (
	"context"
	"fmt"

	"printwatch/internal/models"
)

// PrinterGroup wraps the printer listing and management endpoints.
type PrinterGroup struct {
	c *Client
}

// List returns all printers registered for the current user.
func (g *PrinterGroup) List(ctx context.Context) ([]models.Printer, error) {
	var printers []models.Printer
	if err := g.c.get(ctx, "/printers", nil, &printers); err != nil {
		return nil, err
	}
	return printers, nil
}

// Get returns a single printer by id.
func (g *PrinterGroup) Get(ctx context.Context, id int) (*models.Printer, error) {
	var printer models.Printer
	if err := g.c.get(ctx, fmt.Sprintf("/printers/%d", id), nil, &printer); err != nil {
		return nil, err
	}
	return &printer, nil
}

// Update patches the given fields of a printer.
func (g *PrinterGroup) Update(ctx context.Context, id int, upd models.PrinterUpdate) (*models.Printer, error) {
	var printer models.Printer
	if err := g.c.patch(ctx, fmt.Sprintf("/printers/%d", id), upd, &printer); err != nil {
		return nil, err
	}
	return &printer, nil
}

// Delete removes a printer and all of its historical metrics.
func (g *PrinterGroup) Delete(ctx context.Context, id int) error {
	return g.c.delete(ctx, fmt.Sprintf("/printers/%d", id))
}
