package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// spendingLimitWindow is the rolling window of the per-customer spending cap.
const spendingLimitWindow = 28 * 24 * time.Hour

// PaymentService pays invoices from multiple sources: credits first, then the
// provider chain in priority order.
type PaymentService struct {
	logger        *zap.Logger
	credits       *CreditService
	invoices      *InvoiceService
	notifications *NotificationService
}

// NewPaymentService creates a payment service.
func NewPaymentService(logger *zap.Logger, credits *CreditService, invoices *InvoiceService, notifications *NotificationService) *PaymentService {
	return &PaymentService{
		logger:        logger,
		credits:       credits,
		invoices:      invoices,
		notifications: notifications,
	}
}

// ProcessInvoicePayment attempts to fully pay the invoice. Credits already
// applied stay applied regardless of the provider outcome; the invoice status
// reflects the whole multi-source attempt. Must run under the customer lock.
func (s *PaymentService) ProcessInvoicePayment(ctx context.Context, queries db.Querier, clk clock.Clock, customer db.Customer, invoiceID int64, chain []providers.PaymentProvider) (*business.PaymentResult, error) {
	invoice, err := queries.GetBillingRecord(ctx, invoiceID)
	if err != nil {
		return nil, business.NewSystemError("failed to load invoice for payment", err)
	}

	paidSoFar, err := queries.SumInvoicePayments(ctx, invoiceID)
	if err != nil {
		return nil, business.NewSystemError("failed to sum invoice payments", err)
	}

	result := &business.PaymentResult{AmountPaidCents: paidSoFar}
	remaining := invoice.AmountUsdCents - paidSoFar

	if remaining <= 0 {
		if err := s.invoices.MarkInvoicePaid(ctx, queries, invoiceID, invoice.AmountUsdCents, invoice.TxDigest.String); err != nil {
			return nil, err
		}
		result.FullyPaid = true
		return result, nil
	}

	applied, creditSources, err := s.credits.ApplyCreditsToInvoice(ctx, queries, clk, customer.ID, invoiceID, remaining)
	if err != nil {
		return nil, err
	}
	remaining -= applied
	result.AmountPaidCents += applied
	result.PaymentSources = append(result.PaymentSources, creditSources...)

	if remaining <= 0 {
		if err := s.invoices.MarkInvoicePaid(ctx, queries, invoiceID, invoice.AmountUsdCents, ""); err != nil {
			return nil, err
		}
		result.FullyPaid = true
		return result, nil
	}

	if exceeded, err := s.enforceSpendingLimit(ctx, queries, clk, customer, invoice, remaining); err != nil {
		return nil, err
	} else if exceeded {
		reason := "28-day spending limit exceeded"
		if err := s.failInvoice(ctx, queries, clk, invoiceID, reason); err != nil {
			return nil, err
		}
		result.Error = reason
		return result, nil
	}

	var errorsSeen []string
	var firstNonRetryable string

	for _, provider := range chain {
		if remaining <= 0 {
			break
		}

		canPay, err := provider.CanPay(ctx, customer, remaining)
		if err != nil {
			s.logger.Warn("provider can_pay check failed",
				zap.String("provider", string(provider.Type())),
				zap.Error(err))
			errorsSeen = append(errorsSeen, fmt.Sprintf("%s: %v", provider.Type(), err))
			continue
		}
		if !canPay {
			continue
		}

		chargeResult, err := provider.Charge(ctx, customer, business.ChargeParams{
			CustomerID:     customer.ID,
			InvoiceID:      invoiceID,
			AmountUsdCents: remaining,
			Description:    fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
			IdempotencyKey: providers.IdempotencyKey(invoiceID, provider.Type()),
		})
		if err != nil {
			// Infrastructure failure on one provider does not stop the chain.
			s.logger.Error("provider charge errored",
				zap.String("provider", string(provider.Type())),
				zap.Int64("invoice_id", invoiceID),
				zap.Error(err))
			errorsSeen = append(errorsSeen, fmt.Sprintf("%s: %v", provider.Type(), err))
			continue
		}

		if chargeResult.Success {
			if _, err := queries.CreateInvoicePayment(ctx, db.CreateInvoicePaymentParams{
				InvoiceID:             invoiceID,
				SourceType:            provider.Type(),
				ProviderTransactionID: textToPgtype(chargeResult.ProviderReference),
				AmountUsdCents:        remaining,
			}); err != nil {
				return nil, business.NewSystemError("failed to record provider payment", err)
			}
			if err := s.invoices.MarkInvoicePaid(ctx, queries, invoiceID, invoice.AmountUsdCents, chargeResult.ProviderReference); err != nil {
				return nil, err
			}
			if err := queries.AddCustomerPeriodCharge(ctx, db.AddCustomerPeriodChargeParams{
				ID:             customer.ID,
				AmountUsdCents: remaining,
			}); err != nil {
				return nil, business.NewSystemError("failed to record period charge", err)
			}

			result.PaymentSources = append(result.PaymentSources, business.PaymentSource{
				SourceType:     string(provider.Type()),
				AmountUsdCents: remaining,
				Reference:      chargeResult.ProviderReference,
			})
			result.AmountPaidCents += remaining
			result.FullyPaid = true

			s.logger.Info("invoice paid",
				zap.Int64("invoice_id", invoiceID),
				zap.String("provider", string(provider.Type())),
				zap.Int64("amount_usd_cents", remaining))
			return result, nil
		}

		errorsSeen = append(errorsSeen, fmt.Sprintf("%s: %s", provider.Type(), chargeResult.Error))
		if !chargeResult.Retryable && firstNonRetryable == "" {
			firstNonRetryable = fmt.Sprintf("%s: %s", provider.Type(), chargeResult.Error)
		}
	}

	reason := firstNonRetryable
	if reason == "" {
		reason = strings.Join(errorsSeen, "; ")
	}
	if reason == "" {
		reason = "no payment provider available"
	}
	if err := s.failInvoice(ctx, queries, clk, invoiceID, reason); err != nil {
		return nil, err
	}

	result.Error = reason
	return result, nil
}

func (s *PaymentService) failInvoice(ctx context.Context, queries db.Querier, clk clock.Clock, invoiceID int64, reason string) error {
	if err := queries.MarkInvoiceFailed(ctx, db.MarkInvoiceFailedParams{
		ID:            invoiceID,
		FailureReason: textToPgtype(reason),
		LastRetryAt:   timestampToPgtype(clk.Now()),
	}); err != nil {
		return business.NewSystemError("failed to mark invoice failed", err)
	}
	s.logger.Warn("invoice payment failed",
		zap.Int64("invoice_id", invoiceID),
		zap.String("reason", reason))
	return nil
}

// enforceSpendingLimit rolls the customer's 28-day window forward when stale
// and reports whether charging remaining would exceed the limit. A limit of
// zero means unlimited.
func (s *PaymentService) enforceSpendingLimit(ctx context.Context, queries db.Querier, clk clock.Clock, customer db.Customer, invoice db.BillingRecord, remaining int64) (bool, error) {
	if customer.SpendingLimitUsdCents <= 0 {
		return false, nil
	}

	charged := customer.CurrentPeriodChargedUsdCents
	if !customer.CurrentPeriodStart.Valid || clk.Now().Sub(customer.CurrentPeriodStart.Time) >= spendingLimitWindow {
		if err := queries.ResetCustomerSpendingPeriod(ctx, db.ResetCustomerSpendingPeriodParams{
			ID:                 customer.ID,
			CurrentPeriodStart: dateToPgtype(clk.Today()),
		}); err != nil {
			return false, business.NewSystemError("failed to roll spending period", err)
		}
		charged = 0
	}

	if charged+remaining <= customer.SpendingLimitUsdCents {
		return false, nil
	}

	ve := &business.ValidationError{
		Code:    "SPENDING_LIMIT_EXCEEDED",
		Message: fmt.Sprintf("charge of %d would exceed the rolling spending limit of %d", remaining, customer.SpendingLimitUsdCents),
		Details: map[string]interface{}{
			"charged_usd_cents":   charged,
			"requested_usd_cents": remaining,
			"limit_usd_cents":     customer.SpendingLimitUsdCents,
		},
	}
	s.notifications.RecordValidationIssue(ctx, queries, db.NotificationSeverityWarning, ve, customer.ID, invoice.ID)
	return true, nil
}
