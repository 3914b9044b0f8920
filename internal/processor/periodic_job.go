package processor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// PeriodicJob orders the engine's background phases deterministically:
// billing per customer, reconciliation, cancellation cleanup, housekeeping.
type PeriodicJob struct {
	queries        db.Querier
	logger         *zap.Logger
	clk            clock.Clock
	customers      *CustomerProcessor
	reconciliation *services.ReconciliationService
	cleanup        *services.CleanupService
}

// NewPeriodicJob wires the periodic job.
func NewPeriodicJob(
	queries db.Querier,
	logger *zap.Logger,
	clk clock.Clock,
	customers *CustomerProcessor,
	reconciliation *services.ReconciliationService,
	cleanup *services.CleanupService,
) *PeriodicJob {
	return &PeriodicJob{
		queries:        queries,
		logger:         logger,
		clk:            clk,
		customers:      customers,
		reconciliation: reconciliation,
		cleanup:        cleanup,
	}
}

// Run executes one full pass. One customer's failure is recorded and does not
// stop the others; phase errors are aggregated into the report.
func (j *PeriodicJob) Run(ctx context.Context) (*business.PeriodicJobReport, error) {
	startedAt := j.clk.Now()
	report := &business.PeriodicJobReport{StartedAt: startedAt}

	// Phase 1: billing.
	customerIDs, err := j.queries.ListCustomerIDs(ctx)
	if err != nil {
		return nil, business.NewSystemError("failed to list customers", err)
	}
	for _, customerID := range customerIDs {
		result := j.customers.ProcessCustomer(ctx, customerID)
		report.CustomersProcessed++
		report.Billing.Processed++
		if result.Error != "" {
			report.Billing.Errors = append(report.Billing.Errors,
				fmt.Sprintf("customer %d: %s", customerID, result.Error))
		}
	}

	// Phase 2: reconciliation of stuck immediate invoices.
	reconReport, err := j.reconciliation.Run(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("reconciliation: %v", err))
	}
	report.Reconciliation = reconReport

	// Phase 3: cancellation cleanup.
	cleanupReport, err := j.cleanup.Run(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("cleanup: %v", err))
	}
	report.Cleanup = cleanupReport

	// Phase 4: housekeeping sweeps.
	now := j.clk.Now()
	if deleted, err := services.SweepIdempotencyRecords(ctx, j.queries, now); err != nil {
		report.Housekeeping.Errors = append(report.Housekeeping.Errors, err.Error())
	} else {
		report.Housekeeping.Processed += int(deleted)
	}
	if deleted, err := j.cleanup.SweepCancellationHistory(ctx, j.queries, now); err != nil {
		report.Housekeeping.Errors = append(report.Housekeeping.Errors, err.Error())
	} else {
		report.Housekeeping.Processed += int(deleted)
	}

	report.Duration = j.clk.Now().Sub(startedAt).String()
	j.logger.Info("periodic job completed",
		zap.Int("customers_processed", report.CustomersProcessed),
		zap.Int("reconciled", report.Reconciliation.Processed),
		zap.Int("cleaned_up", report.Cleanup.Processed),
		zap.String("duration", report.Duration))
	return report, nil
}

// RunForCustomer processes a single customer, then the global reconciliation
// and cleanup phases. Used by the admin surface and tests.
func (j *PeriodicJob) RunForCustomer(ctx context.Context, customerID int32) (*business.CustomerProcessingResult, error) {
	result := j.customers.ProcessCustomer(ctx, customerID)

	if _, err := j.reconciliation.Run(ctx); err != nil {
		j.logger.Error("reconciliation failed", zap.Error(err))
	}
	if _, err := j.cleanup.Run(ctx); err != nil {
		j.logger.Error("cleanup failed", zap.Error(err))
	}
	return result, nil
}
