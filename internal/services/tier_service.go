package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/pricing"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// cancellationPendingWindow is how long a cancelled service lingers before
// cleanup deletes its artifacts.
const cancellationPendingWindow = 7 * 24 * time.Hour

// TierService drives the subscription state machine: subscribe, two-phase
// upgrade, scheduled downgrade, cancellation and its undo, plus the periodic
// first-of-month transitions.
type TierService struct {
	pool     *pgxpool.Pool
	queries  db.Querier
	logger   *zap.Logger
	billing  *SubscriptionBillingService
	payments *PaymentService
	invoices *InvoiceService
	factory  *providers.Factory
	clk      clock.Clock
}

// NewTierService creates the tier service. queries must be pool-bound; it is
// used for the read-only checks that take no lock.
func NewTierService(
	pool *pgxpool.Pool,
	queries db.Querier,
	logger *zap.Logger,
	billing *SubscriptionBillingService,
	payments *PaymentService,
	invoices *InvoiceService,
	factory *providers.Factory,
	clk clock.Clock,
) *TierService {
	return &TierService{
		pool:     pool,
		queries:  queries,
		logger:   logger,
		billing:  billing,
		payments: payments,
		invoices: invoices,
		factory:  factory,
		clk:      clk,
	}
}

// SubscribeParams describes a new subscription request.
type SubscribeParams struct {
	CustomerID  int32
	ServiceType db.ServiceType
	Tier        db.ServiceTier
	Config      business.ServiceConfig
}

// Subscribe provisions the service instance and charges the first month
// immediately. An unpaid first month leaves the service enabled with
// sub_pending_invoice_id set; a later deposit settles it through the retry
// path.
func (s *TierService) Subscribe(ctx context.Context, params SubscribeParams) (*business.SubscribeResult, error) {
	if pricing.TierRank(params.Tier) == 0 {
		return nil, &business.ValidationError{
			Code:    "INVALID_TIER",
			Message: fmt.Sprintf("unknown tier %q", params.Tier),
		}
	}
	if params.ServiceType != db.ServiceTypeCdn && params.ServiceType != db.ServiceTypeSeal {
		return nil, &business.ValidationError{
			Code:    "INVALID_SERVICE_TYPE",
			Message: fmt.Sprintf("unknown service type %q", params.ServiceType),
		}
	}

	var result *business.SubscribeResult

	err := helpers.WithCustomerLock(ctx, s.pool, params.CustomerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		customer, err := q.GetCustomer(ctx, params.CustomerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return business.ErrCustomerNotFound
			}
			return business.NewSystemError("failed to load customer", err)
		}

		check, existing, err := s.canProvisionLocked(ctx, q, params.CustomerID, params.ServiceType)
		if err != nil {
			return err
		}
		if !check.Allowed {
			if check.AvailableAt != nil {
				return business.ErrCooldownActive
			}
			return &business.ValidationError{
				Code:    "ALREADY_SUBSCRIBED",
				Message: fmt.Sprintf("customer %d already subscribes to %s", params.CustomerID, params.ServiceType),
			}
		}

		configJSON, err := json.Marshal(params.Config)
		if err != nil {
			return business.NewSystemError("failed to encode service config", err)
		}

		var service db.ServiceInstance
		if existing != nil {
			service, err = q.ReprovisionServiceInstance(ctx, db.ReprovisionServiceInstanceParams{
				ID:     existing.ID,
				Tier:   params.Tier,
				Config: configJSON,
			})
		} else {
			service, err = q.CreateServiceInstance(ctx, db.CreateServiceInstanceParams{
				CustomerID:  params.CustomerID,
				ServiceType: params.ServiceType,
				Tier:        params.Tier,
				Config:      configJSON,
			})
		}
		if err != nil {
			return business.NewSystemError("failed to provision service instance", err)
		}

		result, err = s.billing.HandleSubscriptionBilling(ctx, q, s.clk, customer, service, params.Tier)
		if err != nil {
			return err
		}

		if result.SubPendingInvoiceID != nil {
			if err := q.SetSubPendingInvoice(ctx, db.SetSubPendingInvoiceParams{
				ID:                  service.ID,
				SubPendingInvoiceID: int8ToPgtype(*result.SubPendingInvoiceID),
			}); err != nil {
				return business.NewSystemError("failed to record pending invoice on service", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpgradeTier moves a service to a higher tier. For paid services with a
// non-zero pro-rated charge it runs as a two-phase commit: a locked quote, an
// independently committed pending invoice as the durable audit trail, then a
// locked charge-and-advance. A crash between the phases is recovered by the
// reconciliation job, which voids the orphaned invoice.
func (s *TierService) UpgradeTier(ctx context.Context, customerID int32, serviceType db.ServiceType, newTier db.ServiceTier) (*business.TierChangeResult, error) {
	if pricing.TierRank(newTier) == 0 {
		return nil, &business.ValidationError{
			Code:    "INVALID_TIER",
			Message: fmt.Sprintf("unknown tier %q", newTier),
		}
	}

	var phase1 business.Phase1Result
	var result *business.TierChangeResult

	// Phase one: locked validation and quote. The simple path (no charge or
	// never paid) completes inside this same transaction.
	err := helpers.WithCustomerLock(ctx, s.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		customer, service, err := s.loadActiveService(ctx, q, customerID, serviceType)
		if err != nil {
			return err
		}
		if service.CancellationScheduledFor.Valid {
			return business.ErrTierChangeWhileCancellationScheduled
		}
		if pricing.TierRank(newTier) <= pricing.TierRank(service.Tier) {
			return business.ErrTierUnchanged
		}

		var charge int64
		if service.PaidOnce {
			charge = s.billing.CalculateProRatedUpgradeCharge(
				pricing.TierMonthlyPriceCents(service.Tier),
				pricing.TierMonthlyPriceCents(newTier),
				s.clk,
			)
		}

		phase1 = business.Phase1Result{
			CanProceed:    true,
			CurrentTier:   string(service.Tier),
			NewTier:       string(newTier),
			ChargeCents:   charge,
			Description:   fmt.Sprintf("Upgrade %s to %s", pricing.ServiceDisplayName(serviceType), pricing.TierDisplayName(newTier)),
			ServiceType:   string(serviceType),
			UseSimplePath: charge == 0 || !service.PaidOnce,
		}

		if phase1.UseSimplePath {
			result, err = s.applySimpleTierChange(ctx, q, customer, service, newTier)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	// Middle: commit the pending invoice outside any lock so an audit trail
	// survives a crash between validation and charging.
	today := s.clk.Today()
	invoice, err := s.invoices.CreatePendingInvoiceCommitted(ctx, s.pool, s.clk, CreateInvoiceParams{
		CustomerID:         customerID,
		AmountUsdCents:     phase1.ChargeCents,
		BillingPeriodStart: today,
		BillingPeriodEnd:   clock.LastDayOfMonth(today),
		DueDate:            today,
		LineItems: []LineItemParams{{
			ItemType:          db.LineItemTypeTierUpgrade,
			ServiceType:       serviceType,
			Quantity:          1,
			UnitPriceUsdCents: phase1.ChargeCents,
			AmountUsdCents:    phase1.ChargeCents,
			Description:       phase1.Description,
		}},
	})
	if err != nil {
		return nil, err
	}

	// Phase two: locked charge and tier advance in a fresh transaction.
	// Business failures (drift, declined payment) must still commit: the
	// abandoned invoice and any consumed credits are durable outcomes, not
	// things to roll back. opErr carries them out past the commit.
	var opErr error
	err = helpers.WithCustomerLock(ctx, s.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		customer, service, err := s.loadActiveService(ctx, q, customerID, serviceType)
		if err != nil {
			return err
		}
		if string(service.Tier) != phase1.CurrentTier || service.CancellationScheduledFor.Valid {
			if abandonErr := s.abandonImmediateInvoice(ctx, q, invoice.ID, "upgrade aborted: service changed between phases"); abandonErr != nil {
				return abandonErr
			}
			opErr = business.ErrTierChangedRetry
			return nil
		}

		chain, err := s.factory.LoadChain(ctx, q, customerID)
		if err != nil {
			return business.NewSystemError("failed to load provider chain", err)
		}

		payment, err := s.payments.ProcessInvoicePayment(ctx, q, s.clk, customer, invoice.ID, chain)
		if err != nil {
			return err
		}
		if !payment.FullyPaid {
			// Immediate operations never retry automatically.
			if abandonErr := s.abandonImmediateInvoice(ctx, q, invoice.ID, "upgrade payment failed"); abandonErr != nil {
				return abandonErr
			}
			opErr = &business.PaymentFailedError{ProviderError: payment.Error, Retryable: false}
			return nil
		}

		if err := q.UpdateServiceInstanceTier(ctx, db.UpdateServiceInstanceTierParams{
			ID:   service.ID,
			Tier: newTier,
		}); err != nil {
			return business.NewSystemError("failed to advance tier", err)
		}
		if err := s.billing.RecalculateDraftInvoice(ctx, q, s.clk, customerID); err != nil {
			return err
		}

		invoiceID := invoice.ID
		result = &business.TierChangeResult{
			Success:      true,
			ChargedCents: phase1.ChargeCents,
			InvoiceID:    &invoiceID,
			Message:      phase1.Description,
		}

		s.logger.Info("tier upgraded",
			zap.Int32("customer_id", customerID),
			zap.String("service_type", string(serviceType)),
			zap.String("new_tier", string(newTier)),
			zap.Int64("charge_usd_cents", phase1.ChargeCents))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return result, nil
}

// DowngradeTier schedules a move to a lower tier for the first of next month.
// Services that never completed a payment change immediately instead.
func (s *TierService) DowngradeTier(ctx context.Context, customerID int32, serviceType db.ServiceType, newTier db.ServiceTier) (*business.TierChangeResult, error) {
	if pricing.TierRank(newTier) == 0 {
		return nil, &business.ValidationError{
			Code:    "INVALID_TIER",
			Message: fmt.Sprintf("unknown tier %q", newTier),
		}
	}

	var result *business.TierChangeResult

	err := helpers.WithCustomerLock(ctx, s.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		customer, service, err := s.loadActiveService(ctx, q, customerID, serviceType)
		if err != nil {
			return err
		}
		if service.CancellationScheduledFor.Valid {
			return business.ErrTierChangeWhileCancellationScheduled
		}
		if pricing.TierRank(newTier) >= pricing.TierRank(service.Tier) {
			return business.ErrTierUnchanged
		}

		if !service.PaidOnce {
			result, err = s.applySimpleTierChange(ctx, q, customer, service, newTier)
			return err
		}

		effective := clock.FirstOfNextMonth(s.clk.Today())
		if err := q.ScheduleServiceTierChange(ctx, db.ScheduleServiceTierChangeParams{
			ID:                         service.ID,
			ScheduledTier:              db.NullServiceTier{ServiceTier: newTier, Valid: true},
			ScheduledTierEffectiveDate: dateToPgtype(effective),
		}); err != nil {
			return business.NewSystemError("failed to schedule tier change", err)
		}
		if err := s.billing.RecalculateDraftInvoice(ctx, q, s.clk, customerID); err != nil {
			return err
		}

		result = &business.TierChangeResult{
			Success:     true,
			Scheduled:   true,
			EffectiveAt: effective.Format("2006-01-02"),
			Message:     fmt.Sprintf("Downgrade to %s takes effect on %s", pricing.TierDisplayName(newTier), effective.Format("2006-01-02")),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelSubscription schedules cancellation for the end of the current month.
// A never-paid subscription is deleted outright together with its pending
// first-month invoice, leaving no cooldown and no history.
func (s *TierService) CancelSubscription(ctx context.Context, customerID int32, serviceType db.ServiceType) (*business.TierChangeResult, error) {
	var result *business.TierChangeResult

	err := helpers.WithCustomerLock(ctx, s.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		_, service, err := s.loadActiveService(ctx, q, customerID, serviceType)
		if err != nil {
			return err
		}

		if !service.PaidOnce {
			// Delete the service first: its sub_pending_invoice_id references
			// the invoice row.
			pendingInvoice := service.SubPendingInvoiceID
			if err := q.DeleteServiceInstance(ctx, service.ID); err != nil {
				return business.NewSystemError("failed to delete service instance", err)
			}
			if pendingInvoice.Valid {
				if err := s.abandonImmediateInvoice(ctx, q, pendingInvoice.Int64, "subscription cancelled before first payment"); err != nil {
					return err
				}
			}
			if err := s.billing.RecalculateDraftInvoice(ctx, q, s.clk, customerID); err != nil {
				return err
			}
			result = &business.TierChangeResult{
				Success: true,
				Message: "Subscription cancelled",
			}
			return nil
		}

		if service.CancellationScheduledFor.Valid {
			result = &business.TierChangeResult{
				Success:     true,
				Scheduled:   true,
				EffectiveAt: service.CancellationScheduledFor.Time.Format("2006-01-02"),
				Message:     "Cancellation already scheduled",
			}
			return nil
		}

		endOfMonth := clock.LastDayOfMonth(s.clk.Today())
		if err := q.ScheduleServiceCancellation(ctx, db.ScheduleServiceCancellationParams{
			ID:                       service.ID,
			CancellationScheduledFor: dateToPgtype(endOfMonth),
		}); err != nil {
			return business.NewSystemError("failed to schedule cancellation", err)
		}
		if err := s.billing.RecalculateDraftInvoice(ctx, q, s.clk, customerID); err != nil {
			return err
		}

		result = &business.TierChangeResult{
			Success:     true,
			Scheduled:   true,
			EffectiveAt: endOfMonth.Format("2006-01-02"),
			Message:     fmt.Sprintf("Service remains available until %s", endOfMonth.Format("2006-01-02")),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UndoCancellation clears a scheduled cancellation before it takes effect.
func (s *TierService) UndoCancellation(ctx context.Context, customerID int32, serviceType db.ServiceType) (*business.TierChangeResult, error) {
	var result *business.TierChangeResult

	err := helpers.WithCustomerLock(ctx, s.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)

		service, err := q.GetServiceInstance(ctx, db.GetServiceInstanceParams{
			CustomerID:  customerID,
			ServiceType: serviceType,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return business.ErrServiceNotFound
			}
			return business.NewSystemError("failed to load service instance", err)
		}

		if service.State == db.ServiceStateCancellationPending {
			return business.ErrGracePeriodAlreadyStarted
		}
		if !service.CancellationScheduledFor.Valid {
			return business.ErrNoCancellationScheduled
		}

		if err := q.ClearScheduledCancellation(ctx, service.ID); err != nil {
			return business.NewSystemError("failed to clear scheduled cancellation", err)
		}
		if err := s.billing.RecalculateDraftInvoice(ctx, q, s.clk, customerID); err != nil {
			return err
		}

		result = &business.TierChangeResult{
			Success: true,
			Message: "Cancellation withdrawn",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CanProvision answers, without locking, whether the customer may provision
// this service type right now.
func (s *TierService) CanProvision(ctx context.Context, customerID int32, serviceType db.ServiceType) (*business.CanProvisionResult, error) {
	check, _, err := s.canProvisionLocked(ctx, s.queries, customerID, serviceType)
	if err != nil {
		return nil, err
	}
	return check, nil
}

// canProvisionLocked is the shared check; it also returns an existing
// not_provisioned instance row so subscribe can reuse it.
func (s *TierService) canProvisionLocked(ctx context.Context, queries db.Querier, customerID int32, serviceType db.ServiceType) (*business.CanProvisionResult, *db.ServiceInstance, error) {
	instance, err := queries.GetServiceInstance(ctx, db.GetServiceInstanceParams{
		CustomerID:  customerID,
		ServiceType: serviceType,
	})
	haveInstance := err == nil
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, business.NewSystemError("failed to load service instance", err)
	}

	if haveInstance && instance.State == db.ServiceStateCancellationPending {
		availableAt := instance.CancellationEffectiveAt.Time
		return &business.CanProvisionResult{
			Allowed:     false,
			Reason:      "cancellation in progress",
			AvailableAt: &availableAt,
		}, nil, nil
	}

	cooldown, err := queries.GetActiveCooldown(ctx, db.GetActiveCooldownParams{
		CustomerID:  customerID,
		ServiceType: serviceType,
		Now:         timestampToPgtype(s.clk.Now()),
	})
	if err == nil {
		availableAt := cooldown.CooldownExpiresAt.Time
		return &business.CanProvisionResult{
			Allowed:     false,
			Reason:      "recently cancelled, cooldown active",
			AvailableAt: &availableAt,
		}, nil, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, business.NewSystemError("failed to check cancellation cooldown", err)
	}

	if haveInstance && instance.State != db.ServiceStateNotProvisioned {
		return &business.CanProvisionResult{
			Allowed:           false,
			AlreadySubscribed: true,
			Reason:            "already_subscribed",
		}, nil, nil
	}

	if haveInstance {
		return &business.CanProvisionResult{Allowed: true}, &instance, nil
	}
	return &business.CanProvisionResult{Allowed: true}, nil, nil
}

// CanPerformKeyOperation gates key-management operations: the service must
// exist, be enabled or disabled, and have completed at least one payment.
func (s *TierService) CanPerformKeyOperation(ctx context.Context, customerID int32, serviceType db.ServiceType) error {
	service, err := s.queries.GetServiceInstance(ctx, db.GetServiceInstanceParams{
		CustomerID:  customerID,
		ServiceType: serviceType,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.ErrServiceNotFound
		}
		return business.NewSystemError("failed to load service instance", err)
	}

	if service.State != db.ServiceStateEnabled && service.State != db.ServiceStateDisabled {
		return business.ErrServiceNotFound
	}
	if !service.PaidOnce {
		return business.ErrNoPaymentYet
	}
	return nil
}

// ApplyScheduledTierChanges applies every due scheduled tier change for the
// customer. Called by the per-customer processor on the first of the month,
// under the customer lock.
func (s *TierService) ApplyScheduledTierChanges(ctx context.Context, queries db.Querier, customerID int32) (int, error) {
	due, err := queries.ListServicesWithDueTierChanges(ctx, db.ListServicesWithDueTierChangesParams{
		CustomerID: customerID,
		Today:      dateToPgtype(s.clk.Today()),
	})
	if err != nil {
		return 0, business.NewSystemError("failed to list due tier changes", err)
	}

	for _, service := range due {
		if err := queries.ApplyScheduledTierChange(ctx, service.ID); err != nil {
			return 0, business.NewSystemError("failed to apply scheduled tier change", err)
		}
		s.logger.Info("applied scheduled tier change",
			zap.Int32("customer_id", customerID),
			zap.String("service_type", string(service.ServiceType)),
			zap.String("new_tier", string(service.ScheduledTier.ServiceTier)))
	}
	return len(due), nil
}

// ProcessScheduledCancellations moves every due scheduled cancellation into
// cancellation_pending with a seven-day effective window. Called by the
// per-customer processor under the customer lock.
func (s *TierService) ProcessScheduledCancellations(ctx context.Context, queries db.Querier, customerID int32) (int, error) {
	due, err := queries.ListServicesWithDueCancellations(ctx, db.ListServicesWithDueCancellationsParams{
		CustomerID: customerID,
		Today:      dateToPgtype(s.clk.Today()),
	})
	if err != nil {
		return 0, business.NewSystemError("failed to list due cancellations", err)
	}

	effectiveAt := s.clk.Now().Add(cancellationPendingWindow)
	for _, service := range due {
		if err := queries.MarkServiceCancellationPending(ctx, db.MarkServiceCancellationPendingParams{
			ID:                      service.ID,
			CancellationEffectiveAt: timestampToPgtype(effectiveAt),
		}); err != nil {
			return 0, business.NewSystemError("failed to mark cancellation pending", err)
		}
		s.logger.Info("service entered cancellation_pending",
			zap.Int32("customer_id", customerID),
			zap.String("service_type", string(service.ServiceType)),
			zap.Time("effective_at", effectiveAt))
	}
	return len(due), nil
}

// loadActiveService loads the customer and a service instance that is in an
// operable state.
func (s *TierService) loadActiveService(ctx context.Context, queries db.Querier, customerID int32, serviceType db.ServiceType) (db.Customer, db.ServiceInstance, error) {
	customer, err := queries.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Customer{}, db.ServiceInstance{}, business.ErrCustomerNotFound
		}
		return db.Customer{}, db.ServiceInstance{}, business.NewSystemError("failed to load customer", err)
	}

	service, err := queries.GetServiceInstance(ctx, db.GetServiceInstanceParams{
		CustomerID:  customerID,
		ServiceType: serviceType,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Customer{}, db.ServiceInstance{}, business.ErrServiceNotFound
		}
		return db.Customer{}, db.ServiceInstance{}, business.NewSystemError("failed to load service instance", err)
	}

	if service.State != db.ServiceStateEnabled && service.State != db.ServiceStateDisabled {
		return db.Customer{}, db.ServiceInstance{}, business.ErrServiceNotFound
	}
	return customer, service, nil
}

// applySimpleTierChange performs an in-place tier change with no charge: the
// zero-charge upgrade, the never-paid upgrade and the never-paid downgrade.
// For an unpaid subscription the pending first-month invoice is rewritten so
// the eventual charge and the billing history reflect the new tier.
func (s *TierService) applySimpleTierChange(ctx context.Context, queries db.Querier, customer db.Customer, service db.ServiceInstance, newTier db.ServiceTier) (*business.TierChangeResult, error) {
	if err := queries.UpdateServiceInstanceTier(ctx, db.UpdateServiceInstanceTierParams{
		ID:   service.ID,
		Tier: newTier,
	}); err != nil {
		return nil, business.NewSystemError("failed to update tier", err)
	}

	if !service.PaidOnce && service.SubPendingInvoiceID.Valid {
		if err := s.billing.RewritePendingSubscriptionInvoice(ctx, queries, service.SubPendingInvoiceID.Int64, service.ServiceType, newTier); err != nil {
			return nil, err
		}
	}

	if err := s.billing.RecalculateDraftInvoice(ctx, queries, s.clk, customer.ID); err != nil {
		return nil, err
	}

	s.logger.Info("applied tier change",
		zap.Int32("customer_id", customer.ID),
		zap.String("service_type", string(service.ServiceType)),
		zap.String("new_tier", string(newTier)))

	return &business.TierChangeResult{
		Success: true,
		Message: fmt.Sprintf("Now on %s", pricing.TierDisplayName(newTier)),
	}, nil
}

// abandonImmediateInvoice disposes of an immediate invoice whose operation is
// being abandoned. Invoices with no recorded payments are deleted outright;
// if credits were already consumed they stay consumed, so the invoice is
// voided instead to preserve the payment records.
func (s *TierService) abandonImmediateInvoice(ctx context.Context, queries db.Querier, invoiceID int64, reason string) error {
	payments, err := queries.ListInvoicePayments(ctx, invoiceID)
	if err != nil {
		return business.NewSystemError("failed to list invoice payments", err)
	}
	if len(payments) == 0 {
		return s.invoices.DeleteUnpaidInvoice(ctx, queries, invoiceID)
	}
	return s.invoices.VoidInvoice(ctx, queries, invoiceID, reason)
}
