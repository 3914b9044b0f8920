// Package pricing is the single source of truth for tier, add-on and usage
// prices. All amounts are integer USD cents per month.
package pricing

import "github.com/sealpoint/billing-api/internal/db"

const (
	TierStarterCents    int64 = 900
	TierProCents        int64 = 2900
	TierEnterpriseCents int64 = 18500

	ExtraApiKeyCents  int64 = 200
	ExtraSealKeyCents int64 = 500
	ExtraPackageCents int64 = 300

	// RequestsCentsPerMillion prices usage line items: 500 cents per million
	// billable requests, truncated.
	RequestsCentsPerMillion int64 = 500

	// DefaultSpendingLimitCents is the default 28-day rolling spending limit.
	DefaultSpendingLimitCents int64 = 25000
)

// TierMonthlyPriceCents returns the monthly price for a tier.
func TierMonthlyPriceCents(tier db.ServiceTier) int64 {
	switch tier {
	case db.ServiceTierStarter:
		return TierStarterCents
	case db.ServiceTierPro:
		return TierProCents
	case db.ServiceTierEnterprise:
		return TierEnterpriseCents
	default:
		return 0
	}
}

// TierLineItemType maps a tier to its subscription line item type.
func TierLineItemType(tier db.ServiceTier) db.LineItemType {
	switch tier {
	case db.ServiceTierPro:
		return db.LineItemTypeSubscriptionPro
	case db.ServiceTierEnterprise:
		return db.LineItemTypeSubscriptionEnterprise
	default:
		return db.LineItemTypeSubscriptionStarter
	}
}

// TierForLineItemType is the inverse of TierLineItemType; ok is false for
// non-subscription item types.
func TierForLineItemType(itemType db.LineItemType) (db.ServiceTier, bool) {
	switch itemType {
	case db.LineItemTypeSubscriptionStarter:
		return db.ServiceTierStarter, true
	case db.LineItemTypeSubscriptionPro:
		return db.ServiceTierPro, true
	case db.LineItemTypeSubscriptionEnterprise:
		return db.ServiceTierEnterprise, true
	default:
		return "", false
	}
}

// TierRank orders tiers for upgrade/downgrade direction checks.
func TierRank(tier db.ServiceTier) int {
	switch tier {
	case db.ServiceTierStarter:
		return 1
	case db.ServiceTierPro:
		return 2
	case db.ServiceTierEnterprise:
		return 3
	default:
		return 0
	}
}

// ServiceDisplayName returns the customer-facing name of a service type.
func ServiceDisplayName(serviceType db.ServiceType) string {
	switch serviceType {
	case db.ServiceTypeSeal:
		return "Seal"
	case db.ServiceTypeCdn:
		return "CDN"
	default:
		return string(serviceType)
	}
}

// TierDisplayName returns the customer-facing name of a tier.
func TierDisplayName(tier db.ServiceTier) string {
	switch tier {
	case db.ServiceTierStarter:
		return "Starter"
	case db.ServiceTierPro:
		return "Pro"
	case db.ServiceTierEnterprise:
		return "Enterprise"
	default:
		return string(tier)
	}
}

// SubscriptionDescription renders the billing-history description for a
// subscription line item, e.g. "Seal Enterprise tier subscription".
func SubscriptionDescription(serviceType db.ServiceType, tier db.ServiceTier) string {
	return ServiceDisplayName(serviceType) + " " + TierDisplayName(tier) + " tier subscription"
}

// UsageRequestsAmountCents converts billable requests into cents, truncated.
func UsageRequestsAmountCents(requests int64) int64 {
	return requests * RequestsCentsPerMillion / 1_000_000
}
