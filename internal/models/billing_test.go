package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$19.00", FormatPrice(1900))
	assert.Equal(t, "$9.99", FormatPrice(999))
}

func TestTierIndex(t *testing.T) {
	tiers := []Tier{{ID: "free"}, {ID: "pro"}, {ID: "enterprise"}}
	assert.Equal(t, 0, TierIndex(tiers, "free"))
	assert.Equal(t, 2, TierIndex(tiers, "enterprise"))
	assert.Equal(t, -1, TierIndex(tiers, "platinum"))
	assert.Equal(t, -1, TierIndex(nil, "free"))
}

func TestTrialActive(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	var nilLicense *License
	assert.False(t, nilLicense.TrialActive(now))
	assert.False(t, (&License{Status: "active", TrialEndsAt: &future}).TrialActive(now))
	assert.False(t, (&License{Status: "trial"}).TrialActive(now))
	assert.False(t, (&License{Status: "trial", TrialEndsAt: &past}).TrialActive(now))
	assert.True(t, (&License{Status: "trial", TrialEndsAt: &future}).TrialActive(now))
}
