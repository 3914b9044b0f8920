package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// CreditService applies customer credits to invoices under expiry ordering
// and issues new credits.
type CreditService struct {
	logger *zap.Logger
}

// NewCreditService creates a credit service.
func NewCreditService(logger *zap.Logger) *CreditService {
	return &CreditService{logger: logger}
}

// IssueCreditParams describes a credit grant.
type IssueCreditParams struct {
	CustomerID     int32
	AmountUsdCents int64
	Reason         db.CreditReason
	Description    string
	ExpiresAt      *time.Time
	CampaignID     string
}

// IssueCredit grants a credit with remaining = original = amount.
func (s *CreditService) IssueCredit(ctx context.Context, queries db.Querier, params IssueCreditParams) (db.CustomerCredit, error) {
	if params.AmountUsdCents <= 0 {
		return db.CustomerCredit{}, &business.ValidationError{
			Code:    "INVALID_CREDIT_AMOUNT",
			Message: "credit amount must be positive",
		}
	}

	create := db.CreateCustomerCreditParams{
		CustomerID:             params.CustomerID,
		OriginalAmountUsdCents: params.AmountUsdCents,
		Reason:                 params.Reason,
		Description:            textToPgtype(params.Description),
		CampaignID:             textToPgtype(params.CampaignID),
	}
	if params.ExpiresAt != nil {
		create.ExpiresAt = timestampToPgtype(*params.ExpiresAt)
	}

	credit, err := queries.CreateCustomerCredit(ctx, create)
	if err != nil {
		return db.CustomerCredit{}, business.NewSystemError("failed to issue credit", err)
	}

	s.logger.Info("issued credit",
		zap.Int32("customer_id", params.CustomerID),
		zap.Int64("amount_usd_cents", params.AmountUsdCents),
		zap.String("reason", string(params.Reason)),
		zap.String("credit_id", credit.ID.String()))
	return credit, nil
}

// ApplyCreditsToInvoice walks the customer's non-expired credits, soonest
// expiry first (never-expiring last), consuming them against the invoice's
// remaining amount. Each consumption is recorded as an invoice payment and
// reflected in the invoice's amount_paid. Applied credits are durable even if
// a later provider charge in the same attempt fails. Must run under the
// customer lock.
func (s *CreditService) ApplyCreditsToInvoice(ctx context.Context, queries db.Querier, clk clock.Clock, customerID int32, invoiceID, invoiceRemainingCents int64) (int64, []business.PaymentSource, error) {
	if invoiceRemainingCents <= 0 {
		return 0, nil, nil
	}

	credits, err := queries.ListAvailableCredits(ctx, db.ListAvailableCreditsParams{
		CustomerID: customerID,
		Now:        timestampToPgtype(clk.Now()),
	})
	if err != nil {
		return 0, nil, business.NewSystemError("failed to list available credits", err)
	}

	var applied int64
	var sources []business.PaymentSource
	remaining := invoiceRemainingCents

	for _, credit := range credits {
		if remaining <= 0 {
			break
		}

		use := credit.RemainingAmountUsdCents
		if use > remaining {
			use = remaining
		}

		if err := queries.UpdateCreditRemaining(ctx, db.UpdateCreditRemainingParams{
			ID:                      credit.ID,
			RemainingAmountUsdCents: credit.RemainingAmountUsdCents - use,
		}); err != nil {
			return applied, sources, business.NewSystemError("failed to decrement credit", err)
		}

		if _, err := queries.CreateInvoicePayment(ctx, db.CreateInvoicePaymentParams{
			InvoiceID:      invoiceID,
			SourceType:     db.PaymentSourceTypeCredit,
			CreditID:       uuidToPgtype(credit.ID),
			AmountUsdCents: use,
		}); err != nil {
			return applied, sources, business.NewSystemError("failed to record credit payment", err)
		}

		applied += use
		remaining -= use
		sources = append(sources, business.PaymentSource{
			SourceType:     string(db.PaymentSourceTypeCredit),
			AmountUsdCents: use,
			CreditID:       credit.ID.String(),
		})
	}

	if applied > 0 {
		if err := queries.RecordInvoicePartialPayment(ctx, db.RecordInvoicePartialPaymentParams{
			ID:             invoiceID,
			AmountUsdCents: applied,
		}); err != nil {
			return applied, sources, business.NewSystemError("failed to record partial payment", err)
		}
		s.logger.Info("applied credits to invoice",
			zap.Int32("customer_id", customerID),
			zap.Int64("invoice_id", invoiceID),
			zap.Int64("applied_usd_cents", applied))
	}

	return applied, sources, nil
}

// AvailableCredits returns the sum of non-expired credit remainders.
func (s *CreditService) AvailableCredits(ctx context.Context, queries db.Querier, clk clock.Clock, customerID int32) (int64, error) {
	sum, err := queries.SumAvailableCredits(ctx, db.SumAvailableCreditsParams{
		CustomerID: customerID,
		Now:        timestampToPgtype(clk.Now()),
	})
	if err != nil {
		return 0, business.NewSystemError("failed to sum available credits", err)
	}
	return sum, nil
}
