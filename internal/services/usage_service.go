package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/pricing"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// usageSyncDebounce is the minimum spacing between hourly draft refreshes.
const usageSyncDebounce = time.Hour

// UsageService folds the pre-aggregated hourly usage table into the DRAFT
// invoice as requests line items. It owns those items exclusively; the draft
// recalculator never touches them.
type UsageService struct {
	logger   *zap.Logger
	invoices *InvoiceService
}

// NewUsageService creates the usage service.
func NewUsageService(logger *zap.Logger, invoices *InvoiceService) *UsageService {
	return &UsageService{
		logger:   logger,
		invoices: invoices,
	}
}

// AddUsageChargesToDraft is the authoritative monthly fold: it rewrites the
// draft's requests line items from the usage table, windowed by the draft's
// own billing period, and refreshes the draft total. Must run under the
// customer lock.
func (s *UsageService) AddUsageChargesToDraft(ctx context.Context, queries db.Querier, customerID int32, draft db.BillingRecord) error {
	if draft.Status != db.InvoiceStatusDraft {
		return &business.ValidationError{
			Code:    "USAGE_ON_NON_DRAFT",
			Message: fmt.Sprintf("invoice %d is %s; usage charges only apply to drafts", draft.ID, draft.Status),
		}
	}

	if err := queries.DeleteUsageLineItems(ctx, draft.ID); err != nil {
		return business.NewSystemError("failed to clear usage line items", err)
	}

	instances, err := queries.ListServiceInstances(ctx, customerID)
	if err != nil {
		return business.NewSystemError("failed to list service instances", err)
	}

	periodStart := draft.BillingPeriodStart.Time
	periodEnd := draft.BillingPeriodEnd.Time.AddDate(0, 0, 1) // exclusive upper bound

	for _, instance := range instances {
		if instance.State == db.ServiceStateNotProvisioned {
			continue
		}

		requests, err := queries.SumBillableRequests(ctx, db.SumBillableRequestsParams{
			CustomerID:  customerID,
			ServiceType: instance.ServiceType,
			PeriodStart: timestampToPgtype(periodStart),
			PeriodEnd:   timestampToPgtype(periodEnd),
		})
		if err != nil {
			return business.NewSystemError("failed to sum billable requests", err)
		}
		if requests <= 0 {
			continue
		}

		amount := pricing.UsageRequestsAmountCents(requests)
		if _, err := queries.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
			InvoiceID:         draft.ID,
			ItemType:          db.LineItemTypeRequests,
			ServiceType:       instance.ServiceType,
			Quantity:          requests,
			UnitPriceUsdCents: pricing.RequestsCentsPerMillion,
			AmountUsdCents:    amount,
			Description: textToPgtype(fmt.Sprintf("%s requests (%d)",
				pricing.ServiceDisplayName(instance.ServiceType), requests)),
		}); err != nil {
			return business.NewSystemError("failed to add usage line item", err)
		}
	}

	total, err := queries.SumInvoiceLineItems(ctx, draft.ID)
	if err != nil {
		return business.NewSystemError("failed to sum draft after usage fold", err)
	}
	if err := s.invoices.UpdateDraftAmount(ctx, queries, draft.ID, total); err != nil {
		return err
	}

	s.logger.Debug("usage charges folded into draft",
		zap.Int32("customer_id", customerID),
		zap.Int64("draft_id", draft.ID),
		zap.Int64("total_usd_cents", total))
	return nil
}

// SyncUsageToDraft is the hourly, debounced refresh that keeps the DRAFT
// visible to customers between monthly runs. force bypasses the debounce for
// tests and admin tooling. Must run under the customer lock.
func (s *UsageService) SyncUsageToDraft(ctx context.Context, queries db.Querier, clk clock.Clock, customerID int32, force bool) error {
	draft, err := s.invoices.GetOrCreateDraft(ctx, queries, customerID, clk)
	if err != nil {
		return err
	}

	if !force && draft.LastUpdatedAt.Valid && clk.Now().Sub(draft.LastUpdatedAt.Time) < usageSyncDebounce {
		return nil
	}

	return s.AddUsageChargesToDraft(ctx, queries, customerID, draft)
}
