package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// GracePeriodDays is how long a paying customer keeps service after the first
// failed charge.
const GracePeriodDays = 14

// graceNotifyInterval spaces repeated grace-period warnings.
const graceNotifyInterval = 3 * 24 * time.Hour

// GraceService starts and clears grace periods and suspends customers whose
// grace has run out.
type GraceService struct {
	logger        *zap.Logger
	notifications *NotificationService
}

// NewGraceService creates the grace period service.
func NewGraceService(logger *zap.Logger, notifications *NotificationService) *GraceService {
	return &GraceService{
		logger:        logger,
		notifications: notifications,
	}
}

// StartGracePeriod opens the grace window. Only customers who have paid at
// least once get grace; a customer already in grace keeps the original start.
// Must run under the customer lock.
func (s *GraceService) StartGracePeriod(ctx context.Context, queries db.Querier, customer db.Customer, clk clock.Clock) error {
	if !customer.PaidOnce || customer.GracePeriodStart.Valid {
		return nil
	}

	if err := queries.StartCustomerGracePeriod(ctx, db.StartCustomerGracePeriodParams{
		ID:               customer.ID,
		GracePeriodStart: dateToPgtype(clk.Today()),
	}); err != nil {
		return business.NewSystemError("failed to start grace period", err)
	}

	s.logger.Warn("grace period started",
		zap.Int32("customer_id", customer.ID),
		zap.Time("start", clk.Today()))
	return nil
}

// NotifyGracePeriod appends a grace warning at most once per notify interval
// and records an admin notification.
func (s *GraceService) NotifyGracePeriod(ctx context.Context, queries db.Querier, customer db.Customer, clk clock.Clock) error {
	now := clk.Now()
	if n := len(customer.GracePeriodNotifiedAt); n > 0 {
		if now.Sub(customer.GracePeriodNotifiedAt[n-1]) < graceNotifyInterval {
			return nil
		}
	}

	if err := queries.AppendGracePeriodNotifiedAt(ctx, db.AppendGracePeriodNotifiedAtParams{
		ID:         customer.ID,
		NotifiedAt: now,
	}); err != nil {
		return business.NewSystemError("failed to record grace notification", err)
	}

	return s.notifications.Record(ctx, queries, NotifyParams{
		Severity:   db.NotificationSeverityWarning,
		Category:   "billing",
		Code:       "GRACE_PERIOD_ACTIVE",
		Message:    "customer has unpaid invoices and is in the grace period",
		CustomerID: customer.ID,
	})
}

// ClearGracePeriod resets the grace window after a successful payment.
func (s *GraceService) ClearGracePeriod(ctx context.Context, queries db.Querier, customerID int32) error {
	if err := queries.ClearCustomerGracePeriod(ctx, customerID); err != nil {
		return business.NewSystemError("failed to clear grace period", err)
	}
	return nil
}

// IsExpired reports whether the customer's grace window has run out.
func (s *GraceService) IsExpired(customer db.Customer, clk clock.Clock) bool {
	if !customer.GracePeriodStart.Valid {
		return false
	}
	expiry := customer.GracePeriodStart.Time.AddDate(0, 0, GracePeriodDays)
	return !clk.Today().Before(expiry)
}

// SuspendCustomerForNonPayment suspends the customer and disables every
// currently enabled service. Returns the number of services disabled. Must
// run under the customer lock.
func (s *GraceService) SuspendCustomerForNonPayment(ctx context.Context, queries db.Querier, customer db.Customer) (int64, error) {
	if err := queries.UpdateCustomerStatus(ctx, db.UpdateCustomerStatusParams{
		ID:     customer.ID,
		Status: db.CustomerStatusSuspended,
	}); err != nil {
		return 0, business.NewSystemError("failed to suspend customer", err)
	}

	disabled, err := queries.DisableEnabledServices(ctx, customer.ID)
	if err != nil {
		return 0, business.NewSystemError("failed to disable services", err)
	}

	s.logger.Warn("customer suspended for non-payment",
		zap.Int32("customer_id", customer.ID),
		zap.Int64("services_disabled", disabled))

	if err := s.notifications.Record(ctx, queries, NotifyParams{
		Severity:   db.NotificationSeverityError,
		Category:   "billing",
		Code:       "CUSTOMER_SUSPENDED",
		Message:    "customer suspended after grace period expiry",
		CustomerID: customer.ID,
		Details: map[string]interface{}{
			"services_disabled": disabled,
		},
	}); err != nil {
		return disabled, err
	}
	return disabled, nil
}

// ResumeCustomerAccount reactivates a suspended customer after payment
// settles. Services stay disabled; the customer re-enables them manually.
func (s *GraceService) ResumeCustomerAccount(ctx context.Context, queries db.Querier, customerID int32) error {
	if err := queries.UpdateCustomerStatus(ctx, db.UpdateCustomerStatusParams{
		ID:     customerID,
		Status: db.CustomerStatusActive,
	}); err != nil {
		return business.NewSystemError("failed to resume customer", err)
	}
	if err := queries.ClearCustomerGracePeriod(ctx, customerID); err != nil {
		return business.NewSystemError("failed to clear grace on resume", err)
	}

	s.logger.Info("customer account resumed", zap.Int32("customer_id", customerID))
	return nil
}

// ListExpiredGraceCustomers returns customers whose grace window has expired
// as of today.
func (s *GraceService) ListExpiredGraceCustomers(ctx context.Context, queries db.Querier, clk clock.Clock) ([]db.Customer, error) {
	cutoff := clk.Today().AddDate(0, 0, -GracePeriodDays)
	customers, err := queries.ListCustomersWithExpiredGrace(ctx, dateToPgtype(cutoff))
	if err != nil {
		return nil, business.NewSystemError("failed to list expired grace customers", err)
	}
	return customers, nil
}
