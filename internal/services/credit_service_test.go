package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func init() {
	logger.InitLogger("test")
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestApplyCreditsToInvoice_SoonestExpiryFirst(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	credits := services.NewCreditService(zap.NewNop())

	expiring := testutil.Credit(7, 500, ptrTime(testNow.AddDate(0, 1, 0)))
	expiring.ID = uuid.New()
	forever := testutil.Credit(7, 1000, nil)
	forever.ID = uuid.New()

	// The query layer orders soonest expiry first, never-expiring last.
	mockDB.Querier.EXPECT().
		ListAvailableCredits(gomock.Any(), gomock.Any()).
		Return([]db.CustomerCredit{expiring, forever}, nil)

	mockDB.Querier.EXPECT().
		UpdateCreditRemaining(gomock.Any(), db.UpdateCreditRemainingParams{
			ID:                      expiring.ID,
			RemainingAmountUsdCents: 0,
		}).
		Return(nil)
	mockDB.Querier.EXPECT().
		CreateInvoicePayment(gomock.Any(), gomock.AssignableToTypeOf(db.CreateInvoicePaymentParams{})).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoicePaymentParams) (db.InvoicePayment, error) {
			assert.Equal(t, db.PaymentSourceTypeCredit, arg.SourceType)
			assert.Equal(t, int64(500), arg.AmountUsdCents)
			return db.InvoicePayment{}, nil
		})

	mockDB.Querier.EXPECT().
		UpdateCreditRemaining(gomock.Any(), db.UpdateCreditRemainingParams{
			ID:                      forever.ID,
			RemainingAmountUsdCents: 300,
		}).
		Return(nil)
	mockDB.Querier.EXPECT().
		CreateInvoicePayment(gomock.Any(), gomock.AssignableToTypeOf(db.CreateInvoicePaymentParams{})).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoicePaymentParams) (db.InvoicePayment, error) {
			assert.Equal(t, int64(700), arg.AmountUsdCents)
			return db.InvoicePayment{}, nil
		})

	mockDB.Querier.EXPECT().
		RecordInvoicePartialPayment(gomock.Any(), db.RecordInvoicePartialPaymentParams{
			ID:             42,
			AmountUsdCents: 1200,
		}).
		Return(nil)

	applied, sources, err := credits.ApplyCreditsToInvoice(context.Background(), mockDB.Querier, clk, 7, 42, 1200)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), applied)
	require.Len(t, sources, 2)
	assert.Equal(t, expiring.ID.String(), sources[0].CreditID)
	assert.Equal(t, forever.ID.String(), sources[1].CreditID)
}

func TestApplyCreditsToInvoice_StopsAtInvoiceTotal(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	credits := services.NewCreditService(zap.NewNop())

	big := testutil.Credit(7, 5000, nil)
	big.ID = uuid.New()

	mockDB.Querier.EXPECT().
		ListAvailableCredits(gomock.Any(), gomock.Any()).
		Return([]db.CustomerCredit{big}, nil)
	mockDB.Querier.EXPECT().
		UpdateCreditRemaining(gomock.Any(), db.UpdateCreditRemainingParams{
			ID:                      big.ID,
			RemainingAmountUsdCents: 4100,
		}).
		Return(nil)
	mockDB.Querier.EXPECT().
		CreateInvoicePayment(gomock.Any(), gomock.Any()).
		Return(db.InvoicePayment{}, nil)
	mockDB.Querier.EXPECT().
		RecordInvoicePartialPayment(gomock.Any(), gomock.Any()).
		Return(nil)

	applied, _, err := credits.ApplyCreditsToInvoice(context.Background(), mockDB.Querier, clk, 7, 42, 900)
	require.NoError(t, err)
	assert.Equal(t, int64(900), applied)
}

func TestApplyCreditsToInvoice_NothingToApply(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	credits := services.NewCreditService(zap.NewNop())

	applied, sources, err := credits.ApplyCreditsToInvoice(context.Background(), mockDB.Querier, clk, 7, 42, 0)
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.Empty(t, sources)
}

func TestIssueCredit_RejectsNonPositiveAmounts(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	credits := services.NewCreditService(zap.NewNop())

	_, err := credits.IssueCredit(context.Background(), mockDB.Querier, services.IssueCreditParams{
		CustomerID:     7,
		AmountUsdCents: 0,
		Reason:         db.CreditReasonPromo,
	})
	assert.True(t, business.IsValidationError(err))
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
