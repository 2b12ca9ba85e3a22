package api

import (
	"context"
	"fmt"

	"printwatch/internal/models"
)

// SubnetGroup wraps the remote subnet configuration endpoints.
type SubnetGroup struct {
	c *Client
}

type createSubnetRequest struct {
	Subnet      string  `json:"subnet"`
	Description *string `json:"description,omitempty"`
	DeviceID    *int    `json:"device_id,omitempty"`
}

// List returns the remote subnets configured for the current user.
func (g *SubnetGroup) List(ctx context.Context) ([]models.Subnet, error) {
	var subnets []models.Subnet
	if err := g.c.get(ctx, "/remote-subnets", nil, &subnets); err != nil {
		return nil, err
	}
	return subnets, nil
}

// Create registers a new subnet for scanning. The backend rejects
// duplicates per user with a validation error.
func (g *SubnetGroup) Create(ctx context.Context, subnet string, description *string, deviceID *int) (*models.Subnet, error) {
	var created models.Subnet
	err := g.c.post(ctx, "/remote-subnets", createSubnetRequest{Subnet: subnet, Description: description, DeviceID: deviceID}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update patches the given fields of a subnet.
func (g *SubnetGroup) Update(ctx context.Context, id int, upd models.SubnetUpdate) (*models.Subnet, error) {
	var subnet models.Subnet
	if err := g.c.patch(ctx, fmt.Sprintf("/remote-subnets/%d", id), upd, &subnet); err != nil {
		return nil, err
	}
	return &subnet, nil
}

// Delete removes a subnet.
func (g *SubnetGroup) Delete(ctx context.Context, id int) error {
	return g.c.delete(ctx, fmt.Sprintf("/remote-subnets/%d", id))
}
