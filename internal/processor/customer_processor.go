// Package processor drives all scheduled billing work: the per-customer
// sequential processor and the top-level periodic job.
package processor

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// Failed payments retry at most this many times, at least a day apart.
const (
	maxPaymentRetries   = 3
	paymentRetryBackoff = 24 * time.Hour
)

// CustomerProcessor advances one customer's complete billing state inside a
// single customer lock: scheduled tier changes and cancellations, the monthly
// DRAFT transition and charge, failed payment retries, grace expiry and the
// hourly usage sync.
type CustomerProcessor struct {
	pool       *pgxpool.Pool
	logger     *zap.Logger
	clk        clock.Clock
	factory    *providers.Factory
	invoices   *services.InvoiceService
	payments   *services.PaymentService
	billing    *services.SubscriptionBillingService
	tiers      *services.TierService
	grace      *services.GraceService
	usage      *services.UsageService
	validation *services.ValidationService
}

// NewCustomerProcessor wires the per-customer processor.
func NewCustomerProcessor(
	pool *pgxpool.Pool,
	logger *zap.Logger,
	clk clock.Clock,
	factory *providers.Factory,
	invoices *services.InvoiceService,
	payments *services.PaymentService,
	billing *services.SubscriptionBillingService,
	tiers *services.TierService,
	grace *services.GraceService,
	usage *services.UsageService,
	validation *services.ValidationService,
) *CustomerProcessor {
	return &CustomerProcessor{
		pool:       pool,
		logger:     logger,
		clk:        clk,
		factory:    factory,
		invoices:   invoices,
		payments:   payments,
		billing:    billing,
		tiers:      tiers,
		grace:      grace,
		usage:      usage,
		validation: validation,
	}
}

// ProcessCustomer runs every due phase for the customer under one lock.
// Transient errors abort the customer (and are retried next tick); cached
// validation failures are reported without blocking the remaining phases.
func (p *CustomerProcessor) ProcessCustomer(ctx context.Context, customerID int32) *business.CustomerProcessingResult {
	result := &business.CustomerProcessingResult{CustomerID: customerID}

	err := helpers.WithCustomerLock(ctx, p.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		customer, err := q.GetCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return business.ErrCustomerNotFound
			}
			return business.NewSystemError("failed to load customer", err)
		}

		today := p.clk.Today()

		if today.Day() == 1 {
			key := services.MonthlyIdempotencyKey(customerID, today)
			_, cached, err := services.WithIdempotency(ctx, q, key, 0, func() (interface{}, error) {
				return p.runMonthly(ctx, q, customer)
			})
			result.Cached = cached
			if err != nil {
				if !business.IsValidationError(err) {
					// Transient: bubble so the monthly key stays unwritten
					// and the whole block retries on the next tick.
					return err
				}
				result.Error = err.Error()
			}
		}

		if err := p.retryFailedPayments(ctx, q, customerID); err != nil {
			return err
		}

		// Re-read: the monthly block and retries may have moved grace or
		// status.
		customer, err = q.GetCustomer(ctx, customerID)
		if err != nil {
			return business.NewSystemError("failed to reload customer", err)
		}
		if customer.Status == db.CustomerStatusActive && p.grace.IsExpired(customer, p.clk) {
			if _, err := p.grace.SuspendCustomerForNonPayment(ctx, q, customer); err != nil {
				return err
			}
		}

		if today.Day() != 1 {
			if err := p.usage.SyncUsageToDraft(ctx, q, p.clk, customerID, false); err != nil {
				if !business.IsValidationError(err) {
					return err
				}
				p.logger.Warn("usage sync skipped",
					zap.Int32("customer_id", customerID),
					zap.Error(err))
			}
		}

		return nil
	})
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

// runMonthly is the idempotently cached first-of-month block.
func (p *CustomerProcessor) runMonthly(ctx context.Context, q db.Querier, customer db.Customer) (*business.MonthlyProcessingResult, error) {
	result := &business.MonthlyProcessingResult{CustomerID: customer.ID}

	applied, err := p.tiers.ApplyScheduledTierChanges(ctx, q, customer.ID)
	if err != nil {
		return nil, err
	}
	result.TierChangesApplied = applied
	if applied > 0 {
		if err := p.billing.RecalculateDraftInvoice(ctx, q, p.clk, customer.ID); err != nil {
			return nil, err
		}
	}

	cancelled, err := p.tiers.ProcessScheduledCancellations(ctx, q, customer.ID)
	if err != nil {
		return nil, err
	}
	result.CancellationsMoved = cancelled
	if cancelled > 0 {
		if err := p.billing.RecalculateDraftInvoice(ctx, q, p.clk, customer.ID); err != nil {
			return nil, err
		}
	}

	drafts, err := q.ListDraftInvoices(ctx, customer.ID)
	if err != nil {
		return nil, business.NewSystemError("failed to list draft invoices", err)
	}

	for _, draft := range drafts {
		if err := p.usage.AddUsageChargesToDraft(ctx, q, customer.ID, draft); err != nil {
			if !business.IsValidationError(err) {
				return nil, err
			}
			result.InvoicesSkipped = append(result.InvoicesSkipped, draft.ID)
			continue
		}

		if err := p.validation.EnsureInvoiceValid(ctx, q, draft.ID); err != nil {
			if !business.IsValidationError(err) {
				return nil, err
			}
			// Broken data: skip this invoice, keep processing the rest.
			p.logger.Error("draft failed validation, skipping",
				zap.Int32("customer_id", customer.ID),
				zap.Int64("invoice_id", draft.ID),
				zap.Error(err))
			result.InvoicesSkipped = append(result.InvoicesSkipped, draft.ID)
			continue
		}

		if err := p.invoices.TransitionDraftToPending(ctx, q, draft.ID); err != nil {
			return nil, err
		}
		result.InvoicesTransitions = append(result.InvoicesTransitions, draft.ID)

		chain, err := p.factory.LoadChain(ctx, q, customer.ID)
		if err != nil {
			return nil, business.NewSystemError("failed to load provider chain", err)
		}
		payment, err := p.payments.ProcessInvoicePayment(ctx, q, p.clk, customer, draft.ID, chain)
		if err != nil {
			return nil, err
		}

		if payment.FullyPaid {
			result.PaidInvoices = append(result.PaidInvoices, draft.ID)
			if err := p.onPaymentSucceeded(ctx, q, customer, draft.ID); err != nil {
				return nil, err
			}
		} else {
			result.FailedInvoices = append(result.FailedInvoices, draft.ID)
			if err := p.grace.StartGracePeriod(ctx, q, customer, p.clk); err != nil {
				return nil, err
			}
			if err := p.grace.NotifyGracePeriod(ctx, q, customer, p.clk); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// retryFailedPayments reruns the provider chain for invoices that failed with
// retries remaining and a day of backoff behind them.
func (p *CustomerProcessor) retryFailedPayments(ctx context.Context, q db.Querier, customerID int32) error {
	retriedBefore := p.clk.Now().Add(-paymentRetryBackoff)
	failed, err := q.ListFailedInvoicesForRetry(ctx, db.ListFailedInvoicesForRetryParams{
		CustomerID:    customerID,
		MaxRetries:    maxPaymentRetries,
		RetriedBefore: pgTimestamp(retriedBefore),
	})
	if err != nil {
		return business.NewSystemError("failed to list retryable invoices", err)
	}

	for _, invoice := range failed {
		customer, err := q.GetCustomer(ctx, customerID)
		if err != nil {
			return business.NewSystemError("failed to load customer for retry", err)
		}

		if err := q.ResetInvoiceToPending(ctx, invoice.ID); err != nil {
			return business.NewSystemError("failed to reset invoice for retry", err)
		}

		chain, err := p.factory.LoadChain(ctx, q, customerID)
		if err != nil {
			return business.NewSystemError("failed to load provider chain", err)
		}
		payment, err := p.payments.ProcessInvoicePayment(ctx, q, p.clk, customer, invoice.ID, chain)
		if err != nil {
			return err
		}

		p.logger.Info("retried failed invoice",
			zap.Int32("customer_id", customerID),
			zap.Int64("invoice_id", invoice.ID),
			zap.Bool("fully_paid", payment.FullyPaid))

		if payment.FullyPaid {
			if err := p.onPaymentSucceeded(ctx, q, customer, invoice.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// onPaymentSucceeded applies the cross-cutting effects of a settled charge:
// grace clears, paid_once flags set everywhere, the first-month pending
// marker clears, and a suspended account resumes (services stay disabled).
func (p *CustomerProcessor) onPaymentSucceeded(ctx context.Context, q db.Querier, customer db.Customer, invoiceID int64) error {
	if err := p.grace.ClearGracePeriod(ctx, q, customer.ID); err != nil {
		return err
	}
	if err := q.SetCustomerPaidOnce(ctx, customer.ID); err != nil {
		return business.NewSystemError("failed to mark customer paid", err)
	}
	if err := q.SetAllServicesPaidOnce(ctx, customer.ID); err != nil {
		return business.NewSystemError("failed to mark services paid", err)
	}

	instances, err := q.ListServiceInstances(ctx, customer.ID)
	if err != nil {
		return business.NewSystemError("failed to list services after payment", err)
	}
	for _, instance := range instances {
		if instance.SubPendingInvoiceID.Valid && instance.SubPendingInvoiceID.Int64 == invoiceID {
			if err := q.SetSubPendingInvoice(ctx, db.SetSubPendingInvoiceParams{
				ID: instance.ID,
			}); err != nil {
				return business.NewSystemError("failed to clear pending invoice marker", err)
			}
		}
	}

	if customer.Status == db.CustomerStatusSuspended {
		if err := p.grace.ResumeCustomerAccount(ctx, q, customer.ID); err != nil {
			return err
		}
	}
	return nil
}
