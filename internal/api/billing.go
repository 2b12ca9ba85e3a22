package api

import (
	"context"

	"printwatch/internal/models"
)

// BillingGroup wraps the billing endpoints. The tier catalog is owned by
// the backend; the console never hardcodes prices or limits.
type BillingGroup struct {
	c *Client
}

type checkoutRequest struct {
	TierID        string `json:"tier_id"`
	BillingPeriod string `json:"billing_period"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// Tiers returns the pricing catalog in the backend's canonical order, which
// also defines the upgrade/downgrade direction.
func (g *BillingGroup) Tiers(ctx context.Context) ([]models.Tier, error) {
	var tiers []models.Tier
	if err := g.c.get(ctx, "/billing/tiers", nil, &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// CreateCheckoutSession starts a checkout for the given tier and billing
// period ("monthly" or "yearly") and returns the payment provider URL the
// operator has to open.
func (g *BillingGroup) CreateCheckoutSession(ctx context.Context, tierID, period string) (string, error) {
	var resp checkoutResponse
	err := g.c.post(ctx, "/billing/create-checkout-session", checkoutRequest{TierID: tierID, BillingPeriod: period}, &resp)
	if err != nil {
		return "", err
	}
	return resp.CheckoutURL, nil
}
