package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// reconciliationThreshold is how long an immediate invoice may sit pending
// before it is considered the residue of a crashed operation. Provider charge
// timeouts are kept far below this.
const reconciliationThreshold = 10 * time.Minute

// ReconciliationService recovers immediate invoices that were committed as
// the middle step of a two-phase operation but whose final phase never ran.
// If a payment exists the invoice is settled; otherwise it is voided.
type ReconciliationService struct {
	pool     *pgxpool.Pool
	queries  db.Querier
	logger   *zap.Logger
	invoices *InvoiceService
	clk      clock.Clock
}

// NewReconciliationService creates the reconciliation service.
func NewReconciliationService(pool *pgxpool.Pool, queries db.Querier, logger *zap.Logger, invoices *InvoiceService, clk clock.Clock) *ReconciliationService {
	return &ReconciliationService{
		pool:     pool,
		queries:  queries,
		logger:   logger,
		invoices: invoices,
		clk:      clk,
	}
}

// Run scans for stuck pending immediate invoices and resolves each under its
// customer's lock. Errors on one invoice are reported but do not stop the
// sweep.
func (s *ReconciliationService) Run(ctx context.Context) (business.PhaseReport, error) {
	report := business.PhaseReport{}

	cutoff := s.clk.Now().Add(-reconciliationThreshold)
	stuck, err := s.queries.ListStuckPendingImmediate(ctx, timestampToPgtype(cutoff))
	if err != nil {
		return report, business.NewSystemError("failed to list stuck pending invoices", err)
	}

	for _, invoice := range stuck {
		if err := s.reconcileInvoice(ctx, invoice); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("invoice %d: %v", invoice.ID, err))
			s.logger.Error("failed to reconcile invoice",
				zap.Int64("invoice_id", invoice.ID),
				zap.Error(err))
			continue
		}
		report.Processed++
	}
	return report, nil
}

func (s *ReconciliationService) reconcileInvoice(ctx context.Context, invoice db.BillingRecord) error {
	return helpers.WithCustomerLock(ctx, s.pool, invoice.CustomerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		// Re-read under the lock; the owning flow may have completed since.
		current, err := q.GetBillingRecord(ctx, invoice.ID)
		if err != nil {
			return business.NewSystemError("failed to reload invoice", err)
		}
		if current.Status != db.InvoiceStatusPending || current.BillingType != db.BillingTypeImmediate {
			return nil
		}

		payments, err := q.ListInvoicePayments(ctx, invoice.ID)
		if err != nil {
			return business.NewSystemError("failed to list invoice payments", err)
		}

		if len(payments) > 0 {
			// The charge landed but the final phase died before recording it.
			txDigest := ""
			for _, payment := range payments {
				if payment.ProviderTransactionID.Valid {
					txDigest = payment.ProviderTransactionID.String
				}
			}
			if err := s.invoices.MarkInvoicePaid(ctx, q, invoice.ID, current.AmountUsdCents, txDigest); err != nil {
				return err
			}
			s.logger.Warn("reconciliation settled orphaned invoice",
				zap.Int64("invoice_id", invoice.ID),
				zap.String("tx_digest", txDigest))
			return nil
		}

		return s.invoices.VoidInvoice(ctx, q, invoice.ID,
			"reconciliation: no payment found after timeout, operation incomplete")
	})
}
