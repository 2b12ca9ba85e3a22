package cli

import (
	"context"
	"fmt"

	"printwatch/internal/buildinfo"
)

// Devices lists the user's registered proxy devices.
func (a *App) Devices(ctx context.Context) error {
	devices, err := a.api.Devices.List(ctx)
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Fprintln(a.out, "No devices yet. Run 'adddevice' to register one.")
		return nil
	}

	header := []string{"ID", "NAME", "STATUS", "VERSION", "LAST SEEN"}
	var rows [][]string
	for _, d := range devices {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.ID),
			d.Name,
			d.Status,
			strOrNA(d.Version),
			timeOrNever(d.LastSeenAt),
		})
	}
	table(a.out, header, rows)
	return nil
}

// AddDevice registers a new proxy device and prints its API key. The key is
// returned by the backend exactly once, so the setup instructions follow
// immediately.
func (a *App) AddDevice(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Device name (e.g. office-pi)", a.out)
	if err != nil {
		return err
	}

	device, err := a.api.Devices.Register(ctx, name, buildinfo.Version())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Device %q registered (id %d).\n", device.Name, device.ID)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "API key (shown only once, copy it now):")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "    %s\n", device.APIKey)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "On the device, configure the monitoring agent with:")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "    CLOUD_API_KEY=%s\n", device.APIKey)
	fmt.Fprintln(a.out, "    MONITOR_MODE=cloud")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "then restart the agent. Discovered printers appear under 'printers'.")
	return nil
}
