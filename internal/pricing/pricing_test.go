package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/pricing"
)

func TestTierMonthlyPriceCents(t *testing.T) {
	assert.Equal(t, int64(900), pricing.TierMonthlyPriceCents(db.ServiceTierStarter))
	assert.Equal(t, int64(2900), pricing.TierMonthlyPriceCents(db.ServiceTierPro))
	assert.Equal(t, int64(18500), pricing.TierMonthlyPriceCents(db.ServiceTierEnterprise))
	assert.Equal(t, int64(0), pricing.TierMonthlyPriceCents(db.ServiceTier("unknown")))
}

func TestTierRankOrdering(t *testing.T) {
	assert.Less(t, pricing.TierRank(db.ServiceTierStarter), pricing.TierRank(db.ServiceTierPro))
	assert.Less(t, pricing.TierRank(db.ServiceTierPro), pricing.TierRank(db.ServiceTierEnterprise))
}

func TestSubscriptionDescription(t *testing.T) {
	assert.Equal(t, "Seal Enterprise tier subscription",
		pricing.SubscriptionDescription(db.ServiceTypeSeal, db.ServiceTierEnterprise))
	assert.Equal(t, "CDN Starter tier subscription",
		pricing.SubscriptionDescription(db.ServiceTypeCdn, db.ServiceTierStarter))
}

func TestTierLineItemTypeRoundTrip(t *testing.T) {
	for _, tier := range []db.ServiceTier{db.ServiceTierStarter, db.ServiceTierPro, db.ServiceTierEnterprise} {
		itemType := pricing.TierLineItemType(tier)
		back, ok := pricing.TierForLineItemType(itemType)
		assert.True(t, ok)
		assert.Equal(t, tier, back)
	}

	_, ok := pricing.TierForLineItemType(db.LineItemTypeRequests)
	assert.False(t, ok)
}

func TestUsageRequestsAmountCents(t *testing.T) {
	// 500 cents per million, truncated.
	assert.Equal(t, int64(0), pricing.UsageRequestsAmountCents(0))
	assert.Equal(t, int64(0), pricing.UsageRequestsAmountCents(1999))
	assert.Equal(t, int64(500), pricing.UsageRequestsAmountCents(1_000_000))
	assert.Equal(t, int64(1250), pricing.UsageRequestsAmountCents(2_500_000))
}
