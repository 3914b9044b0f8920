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

// CooldownWindow blocks re-provisioning a service type after its artifacts
// were deleted.
const CooldownWindow = 7 * 24 * time.Hour

// cancellationHistorySweepAge bounds how long cancellation history rows are
// kept after the deletion they record (measured from deleted_at).
const cancellationHistorySweepAge = 30 * 24 * time.Hour

// CleanupService finishes cancellations whose pending window has elapsed: it
// records the anti-abuse history row, deletes the customer's keys and
// packages for the service, and resets the instance to not_provisioned.
type CleanupService struct {
	pool          *pgxpool.Pool
	queries       db.Querier
	logger        *zap.Logger
	notifications *NotificationService
	clk           clock.Clock
}

// NewCleanupService creates the cancellation cleanup service.
func NewCleanupService(pool *pgxpool.Pool, queries db.Querier, logger *zap.Logger, notifications *NotificationService, clk clock.Clock) *CleanupService {
	return &CleanupService{
		pool:          pool,
		queries:       queries,
		logger:        logger,
		notifications: notifications,
		clk:           clk,
	}
}

// Run processes every service whose cancellation_effective_at has passed,
// each under its customer's lock.
func (s *CleanupService) Run(ctx context.Context) (business.PhaseReport, error) {
	report := business.PhaseReport{}

	due, err := s.queries.ListCancellationPendingDue(ctx, timestampToPgtype(s.clk.Now()))
	if err != nil {
		return report, business.NewSystemError("failed to list due cancellations", err)
	}

	for _, service := range due {
		if err := s.cleanupService(ctx, service); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("customer %d %s: %v", service.CustomerID, service.ServiceType, err))
			s.logger.Error("failed to clean up cancelled service",
				zap.Int32("customer_id", service.CustomerID),
				zap.String("service_type", string(service.ServiceType)),
				zap.Error(err))
			continue
		}
		report.Processed++
	}
	return report, nil
}

func (s *CleanupService) cleanupService(ctx context.Context, service db.ServiceInstance) error {
	return helpers.WithCustomerLock(ctx, s.pool, service.CustomerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		// Re-read under the lock; an admin intervention may have revived it.
		current, err := q.GetServiceInstance(ctx, db.GetServiceInstanceParams{
			CustomerID:  service.CustomerID,
			ServiceType: service.ServiceType,
		})
		if err != nil {
			return business.NewSystemError("failed to reload service instance", err)
		}
		if current.State != db.ServiceStateCancellationPending ||
			!current.CancellationEffectiveAt.Valid ||
			current.CancellationEffectiveAt.Time.After(s.clk.Now()) {
			return nil
		}

		now := s.clk.Now()
		if _, err := q.CreateCancellationHistory(ctx, db.CreateCancellationHistoryParams{
			CustomerID:           current.CustomerID,
			ServiceType:          current.ServiceType,
			PreviousTier:         current.Tier,
			BillingPeriodEndedAt: dateToPgtype(clock.ToDate(current.CancellationEffectiveAt.Time)),
			DeletedAt:            timestampToPgtype(now),
			CooldownExpiresAt:    timestampToPgtype(now.Add(CooldownWindow)),
		}); err != nil {
			return business.NewSystemError("failed to record cancellation history", err)
		}

		apiKeys, err := q.DeleteCustomerApiKeys(ctx, current.CustomerID)
		if err != nil {
			return business.NewSystemError("failed to delete api keys", err)
		}
		sealKeys, err := q.DeleteCustomerSealKeys(ctx, current.CustomerID)
		if err != nil {
			return business.NewSystemError("failed to delete seal keys", err)
		}
		packages, err := q.DeleteCustomerPackages(ctx, current.CustomerID)
		if err != nil {
			return business.NewSystemError("failed to delete packages", err)
		}

		if err := q.ResetServiceInstance(ctx, current.ID); err != nil {
			return business.NewSystemError("failed to reset service instance", err)
		}

		s.logger.Info("cancelled service cleaned up",
			zap.Int32("customer_id", current.CustomerID),
			zap.String("service_type", string(current.ServiceType)),
			zap.Int64("api_keys_deleted", apiKeys),
			zap.Int64("seal_keys_deleted", sealKeys),
			zap.Int64("packages_deleted", packages))

		return s.notifications.Record(ctx, q, NotifyParams{
			Severity:   db.NotificationSeverityInfo,
			Category:   "billing",
			Code:       "SERVICE_CANCELLED",
			Message:    fmt.Sprintf("%s subscription removed after cancellation window", service.ServiceType),
			CustomerID: current.CustomerID,
			Details: map[string]interface{}{
				"previous_tier":     string(current.Tier),
				"api_keys_deleted":  apiKeys,
				"seal_keys_deleted": sealKeys,
				"packages_deleted":  packages,
			},
		})
	})
}

// SweepCancellationHistory removes history rows long past their cooldown.
func (s *CleanupService) SweepCancellationHistory(ctx context.Context, queries db.Querier, now time.Time) (int64, error) {
	deleted, err := queries.DeleteCancellationHistoryBefore(ctx, timestampToPgtype(now.Add(-cancellationHistorySweepAge)))
	if err != nil {
		return 0, business.NewSystemError("failed to sweep cancellation history", err)
	}
	return deleted, nil
}
