package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func newTierService(mockDB *testutil.MockDatabase, clk clock.Clock) *services.TierService {
	log := zap.NewNop()
	return services.NewTierService(nil, mockDB.Querier, log, newBillingService(), nil, services.NewInvoiceService(log), nil, clk)
}

func TestCanProvision_CancellationPendingBlocks(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	tiers := newTierService(mockDB, clk)

	pending := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
	pending.State = db.ServiceStateCancellationPending
	pending.CancellationEffectiveAt = testutil.Timestamp(testNow.AddDate(0, 0, 5))

	mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(pending, nil)

	result, err := tiers.CanProvision(context.Background(), 7, db.ServiceTypeSeal)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	require.NotNil(t, result.AvailableAt)
	assert.Equal(t, pending.CancellationEffectiveAt.Time, *result.AvailableAt)
}

func TestCanProvision_CooldownBlocks(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	tiers := newTierService(mockDB, clk)

	cooldownEnd := testNow.AddDate(0, 0, 3)
	mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(db.ServiceInstance{}, pgx.ErrNoRows)
	mockDB.Querier.EXPECT().GetActiveCooldown(gomock.Any(), gomock.Any()).Return(db.ServiceCancellationHistory{
		CustomerID:        7,
		ServiceType:       db.ServiceTypeSeal,
		CooldownExpiresAt: testutil.Timestamp(cooldownEnd),
	}, nil)

	result, err := tiers.CanProvision(context.Background(), 7, db.ServiceTypeSeal)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	require.NotNil(t, result.AvailableAt)
	assert.Equal(t, cooldownEnd, *result.AvailableAt)
}

func TestCanProvision_ExistingSubscriptionBlocks(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	tiers := newTierService(mockDB, clk)

	existing := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
	mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(existing, nil)
	mockDB.Querier.EXPECT().GetActiveCooldown(gomock.Any(), gomock.Any()).Return(db.ServiceCancellationHistory{}, pgx.ErrNoRows)

	result, err := tiers.CanProvision(context.Background(), 7, db.ServiceTypeSeal)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.True(t, result.AlreadySubscribed)
}

func TestCanProvision_Allowed(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	tiers := newTierService(mockDB, clk)

	mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(db.ServiceInstance{}, pgx.ErrNoRows)
	mockDB.Querier.EXPECT().GetActiveCooldown(gomock.Any(), gomock.Any()).Return(db.ServiceCancellationHistory{}, pgx.ErrNoRows)

	result, err := tiers.CanProvision(context.Background(), 7, db.ServiceTypeSeal)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestCanPerformKeyOperation(t *testing.T) {
	tests := []struct {
		name     string
		service  *db.ServiceInstance
		expected error
	}{
		{
			name:     "missing service",
			service:  nil,
			expected: business.ErrServiceNotFound,
		},
		{
			name: "never paid",
			service: func() *db.ServiceInstance {
				s := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
				return &s
			}(),
			expected: business.ErrNoPaymentYet,
		},
		{
			name: "cancellation pending",
			service: func() *db.ServiceInstance {
				s := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
				s.State = db.ServiceStateCancellationPending
				s.PaidOnce = true
				return &s
			}(),
			expected: business.ErrServiceNotFound,
		},
		{
			name: "paid and disabled is fine",
			service: func() *db.ServiceInstance {
				s := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
				s.State = db.ServiceStateDisabled
				s.PaidOnce = true
				return &s
			}(),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := testutil.NewMockDatabase(t)
			tiers := newTierService(mockDB, clock.NewFixedClock(testNow))

			if tt.service == nil {
				mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(db.ServiceInstance{}, pgx.ErrNoRows)
			} else {
				mockDB.Querier.EXPECT().GetServiceInstance(gomock.Any(), gomock.Any()).Return(*tt.service, nil)
			}

			err := tiers.CanPerformKeyOperation(context.Background(), 7, db.ServiceTypeSeal)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestApplyScheduledTierChanges(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(time.Date(2025, 7, 1, 0, 5, 0, 0, time.UTC))
	tiers := newTierService(mockDB, clk)

	due1 := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierEnterprise)
	due1.ScheduledTier = db.NullServiceTier{ServiceTier: db.ServiceTierPro, Valid: true}
	due2 := testutil.ServiceInstance(2, 7, db.ServiceTypeCdn, db.ServiceTierPro)
	due2.ScheduledTier = db.NullServiceTier{ServiceTier: db.ServiceTierStarter, Valid: true}

	mockDB.Querier.EXPECT().
		ListServicesWithDueTierChanges(gomock.Any(), db.ListServicesWithDueTierChangesParams{
			CustomerID: 7,
			Today:      testutil.Date(2025, 7, 1),
		}).
		Return([]db.ServiceInstance{due1, due2}, nil)
	mockDB.Querier.EXPECT().ApplyScheduledTierChange(gomock.Any(), int64(1)).Return(nil)
	mockDB.Querier.EXPECT().ApplyScheduledTierChange(gomock.Any(), int64(2)).Return(nil)

	count, err := tiers.ApplyScheduledTierChanges(context.Background(), mockDB.Querier, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestProcessScheduledCancellations_SetsSevenDayWindow(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	now := time.Date(2025, 7, 1, 0, 5, 0, 0, time.UTC)
	tiers := newTierService(mockDB, clock.NewFixedClock(now))

	due := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
	due.CancellationScheduledFor = testutil.Date(2025, 6, 30)

	mockDB.Querier.EXPECT().
		ListServicesWithDueCancellations(gomock.Any(), gomock.Any()).
		Return([]db.ServiceInstance{due}, nil)
	mockDB.Querier.EXPECT().
		MarkServiceCancellationPending(gomock.Any(), db.MarkServiceCancellationPendingParams{
			ID:                      1,
			CancellationEffectiveAt: testutil.Timestamp(now.AddDate(0, 0, 7)),
		}).
		Return(nil)

	count, err := tiers.ProcessScheduledCancellations(context.Background(), mockDB.Querier, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
