package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// Validation issue codes.
const (
	CodeNegativeAmount                = "NEGATIVE_AMOUNT"
	CodeMultipleDraftInvoices         = "MULTIPLE_DRAFT_INVOICES"
	CodeDraftAmountMismatch           = "DRAFT_AMOUNT_MISMATCH"
	CodeOrphanedReconciliationCredits = "ORPHANED_RECONCILIATION_CREDITS"
)

// ValidationService runs the pre-charge sanity checks on invoices. Critical
// issues come back as a typed ValidationError (safe to cache and to skip the
// invoice); warnings are recorded and logged only.
type ValidationService struct {
	logger        *zap.Logger
	notifications *NotificationService
}

// NewValidationService creates a validation service.
func NewValidationService(logger *zap.Logger, notifications *NotificationService) *ValidationService {
	return &ValidationService{
		logger:        logger,
		notifications: notifications,
	}
}

// EnsureInvoiceValid checks an invoice before any DRAFT mutation or
// DRAFT->PENDING transition. Every issue found is persisted as an admin
// notification; the first critical one is returned.
func (s *ValidationService) EnsureInvoiceValid(ctx context.Context, queries db.Querier, invoiceID int64) error {
	invoice, err := queries.GetBillingRecord(ctx, invoiceID)
	if err != nil {
		return business.NewSystemError("failed to load invoice for validation", err)
	}

	if invoice.AmountUsdCents < 0 {
		ve := &business.ValidationError{
			Code:    CodeNegativeAmount,
			Message: fmt.Sprintf("invoice %d has negative total %d", invoiceID, invoice.AmountUsdCents),
			Details: map[string]interface{}{
				"amount_usd_cents": invoice.AmountUsdCents,
			},
		}
		s.notifications.RecordValidationIssue(ctx, queries, db.NotificationSeverityError, ve, invoice.CustomerID, invoiceID)
		return ve
	}

	draftCount, err := queries.CountDraftInvoices(ctx, invoice.CustomerID)
	if err != nil {
		return business.NewSystemError("failed to count draft invoices", err)
	}
	if draftCount > 1 {
		ve := &business.ValidationError{
			Code:    CodeMultipleDraftInvoices,
			Message: fmt.Sprintf("customer %d has %d draft invoices, expected at most one", invoice.CustomerID, draftCount),
			Details: map[string]interface{}{
				"draft_count": draftCount,
			},
		}
		s.notifications.RecordValidationIssue(ctx, queries, db.NotificationSeverityError, ve, invoice.CustomerID, invoiceID)
		return ve
	}

	s.checkOrphanedReconciliationCredits(ctx, queries, invoice.CustomerID, invoiceID)

	return nil
}

// checkOrphanedReconciliationCredits flags reconciliation credits that can
// never be consumed because the customer has no subscribed services. Warning
// only; the operation proceeds.
func (s *ValidationService) checkOrphanedReconciliationCredits(ctx context.Context, queries db.Querier, customerID int32, invoiceID int64) {
	credits, err := queries.ListReconciliationCreditsWithRemaining(ctx, customerID)
	if err != nil {
		s.logger.Warn("failed to check reconciliation credits",
			zap.Int32("customer_id", customerID),
			zap.Error(err))
		return
	}
	if len(credits) == 0 {
		return
	}

	instances, err := queries.ListServiceInstances(ctx, customerID)
	if err != nil {
		s.logger.Warn("failed to list service instances for credit check",
			zap.Int32("customer_id", customerID),
			zap.Error(err))
		return
	}
	for _, instance := range instances {
		if instance.State != db.ServiceStateNotProvisioned {
			return
		}
	}

	var remaining int64
	for _, credit := range credits {
		remaining += credit.RemainingAmountUsdCents
	}

	ve := &business.ValidationError{
		Code:    CodeOrphanedReconciliationCredits,
		Message: fmt.Sprintf("customer %d holds %d reconciliation credits but no subscribed services", customerID, len(credits)),
		Details: map[string]interface{}{
			"credit_count":            len(credits),
			"remaining_usd_cents_sum": remaining,
		},
	}
	s.notifications.RecordValidationIssue(ctx, queries, db.NotificationSeverityWarning, ve, customerID, invoiceID)
	s.logger.Warn("orphaned reconciliation credits",
		zap.Int32("customer_id", customerID),
		zap.Int("credit_count", len(credits)))
}
