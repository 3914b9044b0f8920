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
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func newUsageService() *services.UsageService {
	log := zap.NewNop()
	return services.NewUsageService(log, services.NewInvoiceService(log))
}

func draftWithPeriod() db.BillingRecord {
	draft := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 2900)
	draft.BillingPeriodStart = testutil.Date(2025, 7, 1)
	draft.BillingPeriodEnd = testutil.Date(2025, 7, 31)
	return draft
}

func TestSyncUsageToDraft_Debounced(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	usage := newUsageService()
	clk := clock.NewFixedClock(testNow)

	draft := draftWithPeriod()
	draft.LastUpdatedAt = testutil.Timestamp(testNow.Add(-30 * time.Minute))

	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(draft, nil)
	// No further calls: the draft was refreshed within the hour.

	require.NoError(t, usage.SyncUsageToDraft(context.Background(), mockDB.Querier, clk, 7, false))
}

func TestSyncUsageToDraft_ForceBypassesDebounce(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	usage := newUsageService()
	clk := clock.NewFixedClock(testNow)

	draft := draftWithPeriod()
	draft.LastUpdatedAt = testutil.Timestamp(testNow)

	instance := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)

	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(draft, nil)
	mockDB.Querier.EXPECT().DeleteUsageLineItems(gomock.Any(), int64(42)).Return(nil)
	mockDB.Querier.EXPECT().ListServiceInstances(gomock.Any(), int32(7)).Return([]db.ServiceInstance{instance}, nil)
	mockDB.Querier.EXPECT().
		SumBillableRequests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.SumBillableRequestsParams) (int64, error) {
			// The window is the draft's own billing period, upper bound
			// exclusive.
			assert.Equal(t, testutil.Date(2025, 7, 1).Time, arg.PeriodStart.Time)
			assert.Equal(t, testutil.Date(2025, 8, 1).Time, arg.PeriodEnd.Time)
			return 2_500_000, nil
		})
	mockDB.Querier.EXPECT().
		CreateInvoiceLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoiceLineItemParams) (db.InvoiceLineItem, error) {
			assert.Equal(t, db.LineItemTypeRequests, arg.ItemType)
			assert.Equal(t, int64(2_500_000), arg.Quantity)
			assert.Equal(t, int64(1250), arg.AmountUsdCents)
			return db.InvoiceLineItem{}, nil
		})
	mockDB.Querier.EXPECT().SumInvoiceLineItems(gomock.Any(), int64(42)).Return(int64(4150), nil)
	mockDB.Querier.EXPECT().
		UpdateDraftAmount(gomock.Any(), db.UpdateDraftAmountParams{ID: 42, AmountUsdCents: 4150}).
		Return(nil)

	require.NoError(t, usage.SyncUsageToDraft(context.Background(), mockDB.Querier, clk, 7, true))
}

func TestAddUsageChargesToDraft_RefusesNonDraft(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	usage := newUsageService()

	pending := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 2900)
	err := usage.AddUsageChargesToDraft(context.Background(), mockDB.Querier, 7, pending)
	assert.True(t, business.IsValidationError(err))
}

func TestAddUsageChargesToDraft_SkipsZeroUsage(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	usage := newUsageService()

	draft := draftWithPeriod()
	instance := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)

	mockDB.Querier.EXPECT().DeleteUsageLineItems(gomock.Any(), int64(42)).Return(nil)
	mockDB.Querier.EXPECT().ListServiceInstances(gomock.Any(), int32(7)).Return([]db.ServiceInstance{instance}, nil)
	mockDB.Querier.EXPECT().SumBillableRequests(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockDB.Querier.EXPECT().SumInvoiceLineItems(gomock.Any(), int64(42)).Return(int64(2900), nil)
	mockDB.Querier.EXPECT().UpdateDraftAmount(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, usage.AddUsageChargesToDraft(context.Background(), mockDB.Querier, 7, draft))
}
