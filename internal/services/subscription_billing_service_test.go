package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
)

func newBillingService() *services.SubscriptionBillingService {
	log := zap.NewNop()
	notifications := services.NewNotificationService(log, "", "")
	validation := services.NewValidationService(log, notifications)
	invoices := services.NewInvoiceService(log)
	credits := services.NewCreditService(log)
	payments := services.NewPaymentService(log, credits, invoices, notifications)
	factory := providers.NewFactory(testutil.NewFakeEscrowClient(nil), "")
	return services.NewSubscriptionBillingService(log, invoices, credits, payments, validation, factory)
}

func TestCalculateProRatedUpgradeCharge(t *testing.T) {
	billing := newBillingService()

	tests := []struct {
		name     string
		today    time.Time
		oldPrice int64
		newPrice int64
		expected int64
	}{
		{
			name:     "mid month pro to enterprise in a 31 day month",
			today:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			oldPrice: 2900,
			newPrice: 18500,
			// 17 days remain of 31: floor(15600 * 17 / 31)
			expected: 8554,
		},
		{
			name:     "first of month charges the full difference",
			today:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			oldPrice: 900,
			newPrice: 2900,
			expected: 2000,
		},
		{
			name:     "day 30 of a 31 day month is within the boundary grace",
			today:    time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
			oldPrice: 2900,
			newPrice: 18500,
			expected: 0,
		},
		{
			name:     "last day of month is free",
			today:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			oldPrice: 900,
			newPrice: 2900,
			expected: 0,
		},
		{
			name:     "equal prices charge nothing",
			today:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			oldPrice: 2900,
			newPrice: 2900,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewFixedClock(tt.today)
			assert.Equal(t, tt.expected, billing.CalculateProRatedUpgradeCharge(tt.oldPrice, tt.newPrice, clk))
		})
	}
}

func TestRewritePendingSubscriptionInvoice(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	billing := newBillingService()

	gomock.InOrder(
		mockDB.Querier.EXPECT().
			RewriteSubscriptionLineItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.RewriteSubscriptionLineItemParams) error {
				assert.Equal(t, int64(42), arg.InvoiceID)
				assert.Equal(t, db.LineItemTypeSubscriptionEnterprise, arg.ItemType)
				assert.Equal(t, int64(18500), arg.UnitPriceUsdCents)
				assert.Equal(t, "Seal Enterprise tier subscription", arg.Description.String)
				return nil
			}),
		mockDB.Querier.EXPECT().SumInvoiceLineItems(gomock.Any(), int64(42)).Return(int64(18500), nil),
		mockDB.Querier.EXPECT().
			UpdateInvoiceAmount(gomock.Any(), db.UpdateInvoiceAmountParams{ID: 42, AmountUsdCents: 18500}).
			Return(nil),
	)

	require.NoError(t, billing.RewritePendingSubscriptionInvoice(
		context.Background(), mockDB.Querier, 42, db.ServiceTypeSeal, db.ServiceTierEnterprise))
}

func TestRecalculateDraftInvoice_RebuildsSubscriptionItems(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	billing := newBillingService()
	clk := clock.NewFixedClock(testNow)

	draft := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 0)

	active := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)
	scheduledDown := testutil.ServiceInstance(2, 7, db.ServiceTypeCdn, db.ServiceTierEnterprise)
	scheduledDown.ScheduledTier = db.NullServiceTier{ServiceTier: db.ServiceTierStarter, Valid: true}
	scheduledDown.ScheduledTierEffectiveDate = testutil.Date(2025, 7, 1)
	cancelling := testutil.ServiceInstance(3, 7, db.ServiceTypeSeal, db.ServiceTierStarter)
	cancelling.ServiceType = db.ServiceTypeCdn
	cancelling.CancellationScheduledFor = testutil.Date(2025, 6, 30)

	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(draft, nil)
	mockDB.Querier.EXPECT().DeleteSubscriptionLineItems(gomock.Any(), int64(42)).Return(nil)
	mockDB.Querier.EXPECT().ListServiceInstances(gomock.Any(), int32(7)).
		Return([]db.ServiceInstance{active, scheduledDown, cancelling}, nil)

	var inserted []db.CreateInvoiceLineItemParams
	mockDB.Querier.EXPECT().
		CreateInvoiceLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoiceLineItemParams) (db.InvoiceLineItem, error) {
			inserted = append(inserted, arg)
			return db.InvoiceLineItem{}, nil
		}).
		Times(2)

	mockDB.Querier.EXPECT().SumInvoiceLineItems(gomock.Any(), int64(42)).Return(int64(2900+900), nil)
	mockDB.Querier.EXPECT().
		UpdateDraftAmount(gomock.Any(), db.UpdateDraftAmountParams{ID: 42, AmountUsdCents: 3800}).
		Return(nil)

	recalculated := draft
	recalculated.AmountUsdCents = 3800
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(recalculated, nil)

	// Validation pass on the rebuilt draft.
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(recalculated, nil)
	mockDB.Querier.EXPECT().CountDraftInvoices(gomock.Any(), int32(7)).Return(int64(1), nil)
	mockDB.Querier.EXPECT().ListReconciliationCreditsWithRemaining(gomock.Any(), int32(7)).Return(nil, nil)

	require.NoError(t, billing.RecalculateDraftInvoice(context.Background(), mockDB.Querier, clk, 7))

	// The cancelling service is excluded; the scheduled downgrade bills at
	// its effective (scheduled) tier.
	require.Len(t, inserted, 2)
	assert.Equal(t, db.LineItemTypeSubscriptionPro, inserted[0].ItemType)
	assert.Equal(t, db.LineItemTypeSubscriptionStarter, inserted[1].ItemType)
	assert.Equal(t, int64(900), inserted[1].AmountUsdCents)
}
