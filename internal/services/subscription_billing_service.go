package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/pricing"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// upgradeBoundaryGraceDays waives pro-rated upgrade charges in the last days
// of a month.
const upgradeBoundaryGraceDays = 2

// SubscriptionBillingService translates subscription events into invoices and
// credits, and owns the DRAFT recalculation that keeps next month's invoice in
// sync with the customer's services.
type SubscriptionBillingService struct {
	logger     *zap.Logger
	invoices   *InvoiceService
	credits    *CreditService
	payments   *PaymentService
	validation *ValidationService
	factory    *providers.Factory
}

// NewSubscriptionBillingService creates the subscription billing service.
func NewSubscriptionBillingService(
	logger *zap.Logger,
	invoices *InvoiceService,
	credits *CreditService,
	payments *PaymentService,
	validation *ValidationService,
	factory *providers.Factory,
) *SubscriptionBillingService {
	return &SubscriptionBillingService{
		logger:     logger,
		invoices:   invoices,
		credits:    credits,
		payments:   payments,
		validation: validation,
		factory:    factory,
	}
}

// HandleSubscriptionBilling charges the first month of a new subscription in
// full, issues the partial-month reconciliation credit on success, and brings
// the DRAFT up to date. Must run under the customer lock; the service instance
// already exists.
func (s *SubscriptionBillingService) HandleSubscriptionBilling(ctx context.Context, queries db.Querier, clk clock.Clock, customer db.Customer, service db.ServiceInstance, tier db.ServiceTier) (*business.SubscribeResult, error) {
	monthlyPrice := pricing.TierMonthlyPriceCents(tier)
	now := clk.Now()

	invoice, err := s.invoices.CreateImmediateInvoice(ctx, queries, clk, CreateInvoiceParams{
		CustomerID:         customer.ID,
		AmountUsdCents:     monthlyPrice,
		BillingPeriodStart: now,
		BillingPeriodEnd:   now.AddDate(0, 0, 30),
		DueDate:            now,
		LineItems: []LineItemParams{{
			ItemType:          pricing.TierLineItemType(tier),
			ServiceType:       service.ServiceType,
			Quantity:          1,
			UnitPriceUsdCents: monthlyPrice,
			AmountUsdCents:    monthlyPrice,
			Description:       pricing.SubscriptionDescription(service.ServiceType, tier),
		}},
	})
	if err != nil {
		return nil, err
	}

	chain, err := s.factory.LoadChain(ctx, queries, customer.ID)
	if err != nil {
		return nil, business.NewSystemError("failed to load provider chain", err)
	}

	payment, err := s.payments.ProcessInvoicePayment(ctx, queries, clk, customer, invoice.ID, chain)
	if err != nil {
		return nil, err
	}

	result := &business.SubscribeResult{
		InvoiceID:         invoice.ID,
		AmountUsdCents:    monthlyPrice,
		PaymentSuccessful: payment.FullyPaid,
	}

	if payment.FullyPaid {
		if err := queries.SetServicePaidOnce(ctx, service.ID); err != nil {
			return nil, business.NewSystemError("failed to mark service paid", err)
		}
		if err := queries.SetCustomerPaidOnce(ctx, customer.ID); err != nil {
			return nil, business.NewSystemError("failed to mark customer paid", err)
		}
		if err := s.issuePartialMonthCredit(ctx, queries, clk, customer.ID, service, tier, monthlyPrice); err != nil {
			return nil, err
		}
	} else {
		invoiceID := invoice.ID
		result.SubPendingInvoiceID = &invoiceID
		result.Error = payment.Error
	}

	if err := s.RecalculateDraftInvoice(ctx, queries, clk, customer.ID); err != nil {
		return nil, err
	}

	return result, nil
}

// issuePartialMonthCredit grants a non-expiring reconciliation credit for the
// unused head of the month. The subscription charge covers a full month
// starting today; the DRAFT bills the next calendar month in full, so the
// overlap (days before today's date this month) comes back as credit and is
// consumed on the next 1st.
func (s *SubscriptionBillingService) issuePartialMonthCredit(ctx context.Context, queries db.Querier, clk clock.Clock, customerID int32, service db.ServiceInstance, tier db.ServiceTier, monthlyPrice int64) error {
	if monthlyPrice <= 0 {
		return nil
	}

	today := clk.Today()
	daysInMonth := clock.DaysInMonth(today)
	daysUsed := clock.DaysRemainingInMonth(today)
	daysNotUsed := daysInMonth - daysUsed
	if daysNotUsed <= 0 {
		return nil
	}

	amount := monthlyPrice * int64(daysNotUsed) / int64(daysInMonth)
	if amount <= 0 {
		return nil
	}

	_, err := s.credits.IssueCredit(ctx, queries, IssueCreditParams{
		CustomerID:     customerID,
		AmountUsdCents: amount,
		Reason:         db.CreditReasonReconciliation,
		Description: fmt.Sprintf("Partial month adjustment for %s (%d of %d days unused)",
			pricing.SubscriptionDescription(service.ServiceType, tier), daysNotUsed, daysInMonth),
	})
	return err
}

// RecalculateDraftInvoice is the single idempotent entry point invoked when
// anything affecting next-month billing changes. It rebuilds all subscription
// and add-on line items from the customer's current services; usage items are
// owned by the usage sync and left alone. Must run under the customer lock.
func (s *SubscriptionBillingService) RecalculateDraftInvoice(ctx context.Context, queries db.Querier, clk clock.Clock, customerID int32) error {
	draft, err := s.invoices.GetOrCreateDraft(ctx, queries, customerID, clk)
	if err != nil {
		return err
	}

	if err := queries.DeleteSubscriptionLineItems(ctx, draft.ID); err != nil {
		return business.NewSystemError("failed to clear draft line items", err)
	}

	instances, err := queries.ListServiceInstances(ctx, customerID)
	if err != nil {
		return business.NewSystemError("failed to list service instances", err)
	}

	for _, instance := range instances {
		if !billableNextMonth(instance) {
			continue
		}

		tier := effectiveTier(instance)
		price := pricing.TierMonthlyPriceCents(tier)
		if _, err := queries.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
			InvoiceID:         draft.ID,
			ItemType:          pricing.TierLineItemType(tier),
			ServiceType:       instance.ServiceType,
			Quantity:          1,
			UnitPriceUsdCents: price,
			AmountUsdCents:    price,
			Description:       textToPgtype(pricing.SubscriptionDescription(instance.ServiceType, tier)),
		}); err != nil {
			return business.NewSystemError("failed to add subscription line item", err)
		}

		if err := s.addAddonLineItems(ctx, queries, draft.ID, instance); err != nil {
			return err
		}
	}

	total, err := queries.SumInvoiceLineItems(ctx, draft.ID)
	if err != nil {
		return business.NewSystemError("failed to sum draft line items", err)
	}
	if err := s.invoices.UpdateDraftAmount(ctx, queries, draft.ID, total); err != nil {
		return err
	}

	updated, err := queries.GetBillingRecord(ctx, draft.ID)
	if err != nil {
		return business.NewSystemError("failed to reload draft", err)
	}
	if updated.AmountUsdCents != total {
		return &business.ValidationError{
			Code:    CodeDraftAmountMismatch,
			Message: fmt.Sprintf("draft %d amount %d does not match line item sum %d", draft.ID, updated.AmountUsdCents, total),
			Details: map[string]interface{}{
				"amount_usd_cents": updated.AmountUsdCents,
				"line_item_sum":    total,
			},
		}
	}

	return s.validation.EnsureInvoiceValid(ctx, queries, draft.ID)
}

func (s *SubscriptionBillingService) addAddonLineItems(ctx context.Context, queries db.Querier, draftID int64, instance db.ServiceInstance) error {
	config := decodeServiceConfig(instance.Config)

	addons := []struct {
		itemType  db.LineItemType
		quantity  int64
		unitPrice int64
		label     string
	}{
		{db.LineItemTypeExtraApiKeys, int64(config.PurchasedApiKeys), pricing.ExtraApiKeyCents, "Additional API keys"},
		{db.LineItemTypeExtraSealKeys, int64(config.PurchasedSealKeys), pricing.ExtraSealKeyCents, "Additional Seal keys"},
		{db.LineItemTypeExtraPackages, int64(config.PurchasedPackages), pricing.ExtraPackageCents, "Additional packages"},
	}

	for _, addon := range addons {
		if addon.quantity <= 0 {
			continue
		}
		if _, err := queries.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
			InvoiceID:         draftID,
			ItemType:          addon.itemType,
			ServiceType:       instance.ServiceType,
			Quantity:          addon.quantity,
			UnitPriceUsdCents: addon.unitPrice,
			AmountUsdCents:    addon.quantity * addon.unitPrice,
			Description:       textToPgtype(addon.label),
		}); err != nil {
			return business.NewSystemError("failed to add add-on line item", err)
		}
	}
	return nil
}

// CalculateProRatedUpgradeCharge prices the remainder of the month at the
// tier difference. The last days of the month are free to avoid charging for
// a sliver that the next invoice already covers.
func (s *SubscriptionBillingService) CalculateProRatedUpgradeCharge(oldPriceCents, newPriceCents int64, clk clock.Clock) int64 {
	today := clk.Today()
	daysInMonth := clock.DaysInMonth(today)
	daysRemaining := clock.DaysRemainingInMonth(today)

	if daysRemaining <= upgradeBoundaryGraceDays {
		return 0
	}

	diff := newPriceCents - oldPriceCents
	if diff <= 0 {
		return 0
	}
	return diff * int64(daysRemaining) / int64(daysInMonth)
}

// RewritePendingSubscriptionInvoice retargets an unpaid first-month invoice at
// a new tier: the aggregate amount and the subscription line item both move,
// so the eventual charge and the billing history read the new tier. Billing
// history descriptions derive from the line item, which is why rewriting just
// the amount would not be enough.
func (s *SubscriptionBillingService) RewritePendingSubscriptionInvoice(ctx context.Context, queries db.Querier, invoiceID int64, serviceType db.ServiceType, newTier db.ServiceTier) error {
	price := pricing.TierMonthlyPriceCents(newTier)

	if err := queries.RewriteSubscriptionLineItem(ctx, db.RewriteSubscriptionLineItemParams{
		InvoiceID:         invoiceID,
		ItemType:          pricing.TierLineItemType(newTier),
		UnitPriceUsdCents: price,
		Description:       textToPgtype(pricing.SubscriptionDescription(serviceType, newTier)),
	}); err != nil {
		return business.NewSystemError("failed to rewrite subscription line item", err)
	}

	total, err := queries.SumInvoiceLineItems(ctx, invoiceID)
	if err != nil {
		return business.NewSystemError("failed to sum rewritten invoice", err)
	}
	if err := queries.UpdateInvoiceAmount(ctx, db.UpdateInvoiceAmountParams{ID: invoiceID, AmountUsdCents: total}); err != nil {
		return business.NewSystemError("failed to update rewritten invoice amount", err)
	}

	s.logger.Info("rewrote pending subscription invoice",
		zap.Int64("invoice_id", invoiceID),
		zap.String("new_tier", string(newTier)),
		zap.Int64("amount_usd_cents", total))
	return nil
}

// billableNextMonth reports whether the instance contributes to next month's
// DRAFT: provisioned, not scheduled for cancellation, not already winding
// down.
func billableNextMonth(instance db.ServiceInstance) bool {
	if instance.State == db.ServiceStateNotProvisioned || instance.State == db.ServiceStateCancellationPending {
		return false
	}
	return !instance.CancellationScheduledFor.Valid
}

// effectiveTier is the tier the next billing period will run under.
func effectiveTier(instance db.ServiceInstance) db.ServiceTier {
	if instance.ScheduledTier.Valid {
		return instance.ScheduledTier.ServiceTier
	}
	return instance.Tier
}

func decodeServiceConfig(raw []byte) business.ServiceConfig {
	var config business.ServiceConfig
	if len(raw) == 0 {
		return config
	}
	// Invalid config is treated as empty rather than blocking billing.
	_ = json.Unmarshal(raw, &config)
	return config
}
