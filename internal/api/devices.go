package api

import (
	"context"

	"printwatch/internal/models"
)

// DeviceGroup wraps the proxy device registration endpoints.
type DeviceGroup struct {
	c *Client
}

type registerDeviceRequest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// List returns the user's registered proxy devices.
func (g *DeviceGroup) List(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := g.c.get(ctx, "/devices", nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Register creates a new proxy device. The response carries the device's
// API key exactly once; it cannot be retrieved again afterwards.
func (g *DeviceGroup) Register(ctx context.Context, name, version string) (*models.Device, error) {
	var device models.Device
	err := g.c.post(ctx, "/devices/register", registerDeviceRequest{Name: name, Version: version}, &device)
	if err != nil {
		return nil, err
	}
	return &device, nil
}
