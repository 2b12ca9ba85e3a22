package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"printwatch/internal/models"
)

// Billing shows the current plan and the backend's pricing catalog. The
// license is re-fetched so a checkout completed elsewhere shows up without
// restarting the console.
func (a *App) Billing(ctx context.Context) error {
	user, err := a.api.Auth.Me(ctx)
	if err != nil {
		return err
	}

	tiers, err := a.api.Billing.Tiers(ctx)
	if err != nil {
		return err
	}

	currentIdx := -1
	if user.License != nil {
		currentIdx = models.TierIndex(tiers, user.License.TierID)
	}

	if user.License != nil {
		fmt.Fprintf(a.out, "Current plan: %s (%s)\n", user.License.TierID, user.License.Status)
		if user.License.TrialActive(time.Now()) {
			days := int(time.Until(*user.License.TrialEndsAt).Hours()/24) + 1
			fmt.Fprintf(a.out, "Trial: %d day(s) remaining, ends %s\n", days, user.License.TrialEndsAt.Local().Format(timeFormat))
		}
		if user.License.ExpiresAt != nil {
			fmt.Fprintf(a.out, "Renews/expires: %s\n", user.License.ExpiresAt.Local().Format(timeFormat))
		}
	} else {
		fmt.Fprintln(a.out, "No license on this account.")
	}
	fmt.Fprintln(a.out)

	header := []string{"", "TIER", "MONTHLY", "YEARLY", "DEVICES", "PRINTERS", "HISTORY"}
	var rows [][]string
	for i, t := range tiers {
		marker := ""
		switch {
		case i == currentIdx:
			marker = "*"
		case currentIdx >= 0 && i > currentIdx:
			marker = "^"
		case currentIdx >= 0 && i < currentIdx:
			marker = "v"
		}
		rows = append(rows, []string{
			marker,
			t.ID,
			models.FormatPrice(t.PriceMonthly),
			models.FormatPrice(t.PriceYearly),
			limitStr(t.MaxDevices),
			limitStr(t.MaxPrinters),
			fmt.Sprintf("%d days", t.HistoryDays),
		})
	}
	table(a.out, header, rows)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "* current   ^ upgrade   v downgrade")
	for _, t := range tiers {
		if len(t.Features) > 0 {
			fmt.Fprintf(a.out, "%s: %s\n", t.ID, strings.Join(t.Features, ", "))
		}
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Run 'upgrade <tier> [monthly|yearly]' to change plans.")
	return nil
}

// Upgrade starts a checkout session for the given tier. Payment happens in
// the browser; the console only hands out the URL.
func (a *App) Upgrade(ctx context.Context, tierID, period string) error {
	tiers, err := a.api.Billing.Tiers(ctx)
	if err != nil {
		return err
	}
	if models.TierIndex(tiers, tierID) < 0 {
		fmt.Fprintf(a.out, "Unknown tier %q. Run 'billing' to see the catalog.\n", tierID)
		return nil
	}

	url, err := a.api.Billing.CreateCheckoutSession(ctx, tierID, period)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Open this URL in your browser to complete the checkout:")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "    %s\n", url)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Your plan updates once the payment is confirmed. Run 'billing' to verify.")
	return nil
}

func limitStr(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}
