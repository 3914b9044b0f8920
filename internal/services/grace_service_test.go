package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
)

func newGraceService() *services.GraceService {
	log := zap.NewNop()
	return services.NewGraceService(log, services.NewNotificationService(log, "", ""))
}

func TestStartGracePeriod_OnlyForPayingCustomers(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	grace := newGraceService()
	clk := clock.NewFixedClock(testNow)

	// Never paid: no grace, the service stays pending payment instead.
	customer := testutil.Customer(7, 0)
	customer.PaidOnce = false
	require.NoError(t, grace.StartGracePeriod(context.Background(), mockDB.Querier, customer, clk))

	// Already in grace: the original start is kept.
	customer.PaidOnce = true
	customer.GracePeriodStart = testutil.Date(2025, 6, 1)
	require.NoError(t, grace.StartGracePeriod(context.Background(), mockDB.Querier, customer, clk))
}

func TestStartGracePeriod_SetsToday(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	grace := newGraceService()
	clk := clock.NewFixedClock(testNow)

	customer := testutil.Customer(7, 0)
	customer.PaidOnce = true

	mockDB.Querier.EXPECT().
		StartCustomerGracePeriod(gomock.Any(), db.StartCustomerGracePeriodParams{
			ID:               7,
			GracePeriodStart: testutil.Date(2025, 6, 15),
		}).
		Return(nil)

	require.NoError(t, grace.StartGracePeriod(context.Background(), mockDB.Querier, customer, clk))
}

func TestIsExpired_FourteenDayBoundary(t *testing.T) {
	grace := newGraceService()

	customer := testutil.Customer(7, 0)
	customer.GracePeriodStart = testutil.Date(2025, 6, 1)

	tests := []struct {
		name    string
		today   time.Time
		expired bool
	}{
		{"day 13", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), false},
		{"day 14 exactly", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"day 15", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, grace.IsExpired(customer, clock.NewFixedClock(tt.today)))
		})
	}

	customer.GracePeriodStart = pgtype.Date{}
	assert.False(t, grace.IsExpired(customer, clock.NewFixedClock(testNow)))
}

func TestSuspendCustomerForNonPayment(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	grace := newGraceService()
	customer := testutil.Customer(7, 0)

	gomock.InOrder(
		mockDB.Querier.EXPECT().
			UpdateCustomerStatus(gomock.Any(), db.UpdateCustomerStatusParams{
				ID:     7,
				Status: db.CustomerStatusSuspended,
			}).
			Return(nil),
		mockDB.Querier.EXPECT().DisableEnabledServices(gomock.Any(), int32(7)).Return(int64(2), nil),
		mockDB.Querier.EXPECT().CreateAdminNotification(gomock.Any(), gomock.Any()).Return(db.AdminNotification{}, nil),
	)

	disabled, err := grace.SuspendCustomerForNonPayment(context.Background(), mockDB.Querier, customer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), disabled)
}

func TestResumeCustomerAccount_ClearsGraceButNotServices(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	grace := newGraceService()

	mockDB.Querier.EXPECT().
		UpdateCustomerStatus(gomock.Any(), db.UpdateCustomerStatusParams{
			ID:     7,
			Status: db.CustomerStatusActive,
		}).
		Return(nil)
	mockDB.Querier.EXPECT().ClearCustomerGracePeriod(gomock.Any(), int32(7)).Return(nil)
	// No service re-enable call: services stay disabled for manual re-enable.

	require.NoError(t, grace.ResumeCustomerAccount(context.Background(), mockDB.Querier, 7))
}

func TestNotifyGracePeriod_Debounced(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	grace := newGraceService()
	clk := clock.NewFixedClock(testNow)

	customer := testutil.Customer(7, 0)
	customer.GracePeriodNotifiedAt = []time.Time{testNow.Add(-time.Hour)}

	// Notified an hour ago: nothing happens.
	require.NoError(t, grace.NotifyGracePeriod(context.Background(), mockDB.Querier, customer, clk))

	// Last notice four days ago: a new one goes out.
	customer.GracePeriodNotifiedAt = []time.Time{testNow.AddDate(0, 0, -4)}
	mockDB.Querier.EXPECT().AppendGracePeriodNotifiedAt(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.Querier.EXPECT().CreateAdminNotification(gomock.Any(), gomock.Any()).Return(db.AdminNotification{}, nil)
	require.NoError(t, grace.NotifyGracePeriod(context.Background(), mockDB.Querier, customer, clk))
}
