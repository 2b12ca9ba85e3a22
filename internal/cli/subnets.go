package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"printwatch/internal/api"
	"printwatch/internal/models"
)

// Subnets lists the remote subnets configured for scanning.
func (a *App) Subnets(ctx context.Context) error {
	subnets, err := a.api.Subnets.List(ctx)
	if err != nil {
		return err
	}

	if len(subnets) == 0 {
		fmt.Fprintln(a.out, "No remote subnets configured. Run 'addsubnet' to add one.")
		return nil
	}

	header := []string{"ID", "SUBNET", "DESCRIPTION", "DEVICE", "ENABLED", "LAST SCAN"}
	var rows [][]string
	for _, s := range subnets {
		device := "any"
		if s.DeviceID != nil {
			device = strconv.Itoa(*s.DeviceID)
		}
		enabled := "no"
		if s.Enabled {
			enabled = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			s.Subnet,
			strOrNA(s.Description),
			device,
			enabled,
			timeOrNever(s.LastScannedAt),
		})
	}
	table(a.out, header, rows)
	return nil
}

// AddSubnet prompts for a CIDR range and registers it. The CIDR is checked
// locally before the request so typos fail fast; the backend still rejects
// duplicates.
func (a *App) AddSubnet(ctx context.Context) error {
	cidr, err := getSimpleText(a.reader, "Subnet in CIDR notation (e.g. 192.168.10.0/24)", a.out)
	if err != nil {
		return err
	}
	if _, _, err := net.ParseCIDR(cidr); err != nil {
		fmt.Fprintf(a.out, "%q is not a valid CIDR range.\n", cidr)
		return nil
	}

	descText, err := getSimpleText(a.reader, "Description (optional, leave empty to skip)", a.out)
	if err != nil {
		return err
	}
	var description *string
	if descText != "" {
		description = &descText
	}

	deviceText, err := getSimpleText(a.reader, "Device id to scan from (optional, leave empty for any)", a.out)
	if err != nil {
		return err
	}
	var deviceID *int
	if deviceText != "" {
		id, err := strconv.Atoi(deviceText)
		if err != nil {
			fmt.Fprintf(a.out, "%q is not a device id.\n", deviceText)
			return nil
		}
		deviceID = &id
	}

	subnet, err := a.api.Subnets.Create(ctx, cidr, description, deviceID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Subnet %s added (id %d). It will be scanned on the next device cycle.\n", subnet.Subnet, subnet.ID)
	return nil
}

// ToggleSubnet flips a subnet's enabled flag.
func (a *App) ToggleSubnet(ctx context.Context, id int) error {
	subnets, err := a.api.Subnets.List(ctx)
	if err != nil {
		return err
	}

	var current *models.Subnet
	for i := range subnets {
		if subnets[i].ID == id {
			current = &subnets[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(a.out, "Subnet %d not found.\n", id)
		return nil
	}

	enabled := !current.Enabled
	updated, err := a.api.Subnets.Update(ctx, id, models.SubnetUpdate{Enabled: &enabled})
	if err != nil {
		return err
	}

	if updated.Enabled {
		fmt.Fprintf(a.out, "Subnet %s enabled.\n", updated.Subnet)
	} else {
		fmt.Fprintf(a.out, "Subnet %s disabled.\n", updated.Subnet)
	}
	return nil
}

// DeleteSubnet removes a subnet after confirmation.
func (a *App) DeleteSubnet(ctx context.Context, id int) error {
	if !confirm(a.reader, fmt.Sprintf("Delete subnet %d?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.Subnets.Delete(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "Subnet %d not found.\n", id)
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Subnet %d deleted.\n", id)
	return nil
}
