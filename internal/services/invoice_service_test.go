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

func TestGetOrCreateDraft_ReturnsExistingDraft(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	invoices := services.NewInvoiceService(zap.NewNop())
	clk := clock.NewFixedClock(testNow)

	existing := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 2900)
	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(existing, nil)

	draft, err := invoices.GetOrCreateDraft(context.Background(), mockDB.Querier, 7, clk)
	require.NoError(t, err)
	assert.Equal(t, int64(42), draft.ID)
}

func TestGetOrCreateDraft_CreatesNextMonthDraft(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	invoices := services.NewInvoiceService(zap.NewNop())
	// June 15th: the new draft must cover July.
	clk := clock.NewFixedClock(testNow)

	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(db.BillingRecord{}, pgx.ErrNoRows)
	mockDB.Querier.EXPECT().CountInvoicesWithPrefix(gomock.Any(), "INV-2025-07").Return(int64(41), nil)
	mockDB.Querier.EXPECT().
		CreateBillingRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateBillingRecordParams) (db.BillingRecord, error) {
			assert.Equal(t, db.BillingTypePeriodic, arg.BillingType)
			assert.Equal(t, db.InvoiceStatusDraft, arg.Status)
			assert.Equal(t, "INV-2025-07-0042", arg.InvoiceNumber)
			assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), arg.BillingPeriodStart.Time)
			assert.Equal(t, time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), arg.BillingPeriodEnd.Time)
			assert.Equal(t, arg.BillingPeriodStart, arg.DueDate)
			return testutil.BillingRecord(43, 7, db.InvoiceStatusDraft, 0), nil
		})

	draft, err := invoices.GetOrCreateDraft(context.Background(), mockDB.Querier, 7, clk)
	require.NoError(t, err)
	assert.Equal(t, int64(43), draft.ID)
}

func TestGetOrCreateDraft_MonthBoundaryPointsToNextMonth(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	invoices := services.NewInvoiceService(zap.NewNop())
	// Last instant of June: the draft still belongs to July, not June.
	clk := clock.NewFixedClock(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC))

	mockDB.Querier.EXPECT().GetDraftInvoice(gomock.Any(), int32(7)).Return(db.BillingRecord{}, pgx.ErrNoRows)
	mockDB.Querier.EXPECT().CountInvoicesWithPrefix(gomock.Any(), "INV-2025-07").Return(int64(0), nil)
	mockDB.Querier.EXPECT().
		CreateBillingRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateBillingRecordParams) (db.BillingRecord, error) {
			assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), arg.BillingPeriodStart.Time)
			return testutil.BillingRecord(44, 7, db.InvoiceStatusDraft, 0), nil
		})

	_, err := invoices.GetOrCreateDraft(context.Background(), mockDB.Querier, 7, clk)
	require.NoError(t, err)
}

func TestDeleteUnpaidInvoice_RefusesPaidAndPeriodic(t *testing.T) {
	tests := []struct {
		name    string
		invoice db.BillingRecord
	}{
		{
			name: "paid invoice",
			invoice: db.BillingRecord{
				ID:                 42,
				BillingType:        db.BillingTypeImmediate,
				Status:             db.InvoiceStatusPaid,
				AmountPaidUsdCents: 900,
			},
		},
		{
			name: "partially paid invoice",
			invoice: db.BillingRecord{
				ID:                 42,
				BillingType:        db.BillingTypeImmediate,
				Status:             db.InvoiceStatusFailed,
				AmountPaidUsdCents: 100,
			},
		},
		{
			name: "periodic invoice",
			invoice: db.BillingRecord{
				ID:          42,
				BillingType: db.BillingTypePeriodic,
				Status:      db.InvoiceStatusPending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := testutil.NewMockDatabase(t)
			invoices := services.NewInvoiceService(zap.NewNop())
			mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(tt.invoice, nil)

			err := invoices.DeleteUnpaidInvoice(context.Background(), mockDB.Querier, 42)
			assert.True(t, business.IsValidationError(err))
		})
	}
}

func TestDeleteUnpaidInvoice_RemovesLineItemsFirst(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	invoices := services.NewInvoiceService(zap.NewNop())

	invoice := db.BillingRecord{
		ID:          42,
		BillingType: db.BillingTypeImmediate,
		Status:      db.InvoiceStatusPending,
	}
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	gomock.InOrder(
		mockDB.Querier.EXPECT().DeleteInvoiceLineItems(gomock.Any(), int64(42)).Return(nil),
		mockDB.Querier.EXPECT().DeleteBillingRecord(gomock.Any(), int64(42)).Return(nil),
	)

	require.NoError(t, invoices.DeleteUnpaidInvoice(context.Background(), mockDB.Querier, 42))
}

func TestDeleteUnpaidInvoice_MissingInvoiceIsNoop(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	invoices := services.NewInvoiceService(zap.NewNop())
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(db.BillingRecord{}, pgx.ErrNoRows)

	require.NoError(t, invoices.DeleteUnpaidInvoice(context.Background(), mockDB.Querier, 42))
}
