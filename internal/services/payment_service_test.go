package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func newPaymentService() *services.PaymentService {
	log := zap.NewNop()
	notifications := services.NewNotificationService(log, "", "")
	credits := services.NewCreditService(log)
	invoices := services.NewInvoiceService(log)
	return services.NewPaymentService(log, credits, invoices, notifications)
}

func TestProcessInvoicePayment_ProviderChainFallsThrough(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	payments := newPaymentService()
	customer := testutil.Customer(7, 10000)

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 900)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().SumInvoicePayments(gomock.Any(), int64(42)).Return(int64(0), nil)
	mockDB.Querier.EXPECT().ListAvailableCredits(gomock.Any(), gomock.Any()).Return(nil, nil)
	// No spending period on record yet: the window rolls forward first.
	mockDB.Querier.EXPECT().ResetCustomerSpendingPeriod(gomock.Any(), gomock.Any()).Return(nil)

	declining := &testutil.StubProvider{
		ProviderType: db.PaymentSourceTypeCardProvider,
		Configured:   true,
		Payable:      true,
		Result: &business.ChargeResult{
			Success:   false,
			Error:     "card declined",
			ErrorCode: "card_declined",
			Retryable: false,
		},
	}
	succeeding := &testutil.StubProvider{
		ProviderType: db.PaymentSourceTypeEscrowProvider,
		Configured:   true,
		Payable:      true,
		Result: &business.ChargeResult{
			Success:           true,
			ProviderReference: "0xabc",
		},
	}

	mockDB.Querier.EXPECT().
		CreateInvoicePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoicePaymentParams) (db.InvoicePayment, error) {
			assert.Equal(t, db.PaymentSourceTypeEscrowProvider, arg.SourceType)
			assert.Equal(t, int64(900), arg.AmountUsdCents)
			assert.Equal(t, "0xabc", arg.ProviderTransactionID.String)
			return db.InvoicePayment{}, nil
		})
	mockDB.Querier.EXPECT().
		MarkInvoicePaid(gomock.Any(), db.MarkInvoicePaidParams{
			ID:                 42,
			AmountPaidUsdCents: 900,
			TxDigest:           testutil.Text("0xabc"),
		}).
		Return(nil)
	mockDB.Querier.EXPECT().
		AddCustomerPeriodCharge(gomock.Any(), db.AddCustomerPeriodChargeParams{ID: 7, AmountUsdCents: 900}).
		Return(nil)

	result, err := payments.ProcessInvoicePayment(context.Background(), mockDB.Querier, clk, customer, 42,
		[]providers.PaymentProvider{declining, succeeding})
	require.NoError(t, err)
	assert.True(t, result.FullyPaid)
	assert.Equal(t, int64(900), result.AmountPaidCents)
	require.Len(t, result.PaymentSources, 1)
	assert.Equal(t, "escrow_provider", result.PaymentSources[0].SourceType)
	assert.Len(t, declining.Charges, 1)
	assert.Len(t, succeeding.Charges, 1)
}

func TestProcessInvoicePayment_AllProvidersFail(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	payments := newPaymentService()
	customer := testutil.Customer(7, 0)

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 900)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().SumInvoicePayments(gomock.Any(), int64(42)).Return(int64(0), nil)
	mockDB.Querier.EXPECT().ListAvailableCredits(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockDB.Querier.EXPECT().ResetCustomerSpendingPeriod(gomock.Any(), gomock.Any()).Return(nil)

	hardDecline := &testutil.StubProvider{
		ProviderType: db.PaymentSourceTypeCardProvider,
		Configured:   true,
		Payable:      true,
		Result: &business.ChargeResult{
			Success:   false,
			Error:     "stolen card",
			Retryable: false,
		},
	}
	softDecline := &testutil.StubProvider{
		ProviderType: db.PaymentSourceTypeEscrowProvider,
		Configured:   true,
		Payable:      true,
		Result: &business.ChargeResult{
			Success:   false,
			Error:     "insufficient escrow balance",
			Retryable: true,
		},
	}

	mockDB.Querier.EXPECT().
		MarkInvoiceFailed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.MarkInvoiceFailedParams) error {
			// The first non-retryable failure becomes the recorded reason.
			assert.Contains(t, arg.FailureReason.String, "stolen card")
			return nil
		})

	result, err := payments.ProcessInvoicePayment(context.Background(), mockDB.Querier, clk, customer, 42,
		[]providers.PaymentProvider{hardDecline, softDecline})
	require.NoError(t, err)
	assert.False(t, result.FullyPaid)
	assert.NotEmpty(t, result.Error)
	// The chain did not short-circuit on the non-retryable decline.
	assert.Len(t, softDecline.Charges, 1)
}

func TestProcessInvoicePayment_CreditsCoverInvoice(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	payments := newPaymentService()
	customer := testutil.Customer(7, 0)

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 800)
	credit := testutil.Credit(7, 2000, nil)

	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().SumInvoicePayments(gomock.Any(), int64(42)).Return(int64(0), nil)
	mockDB.Querier.EXPECT().ListAvailableCredits(gomock.Any(), gomock.Any()).Return([]db.CustomerCredit{credit}, nil)
	mockDB.Querier.EXPECT().UpdateCreditRemaining(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.Querier.EXPECT().CreateInvoicePayment(gomock.Any(), gomock.Any()).Return(db.InvoicePayment{}, nil)
	mockDB.Querier.EXPECT().RecordInvoicePartialPayment(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.Querier.EXPECT().
		MarkInvoicePaid(gomock.Any(), db.MarkInvoicePaidParams{ID: 42, AmountPaidUsdCents: 800}).
		Return(nil)

	provider := &testutil.StubProvider{ProviderType: db.PaymentSourceTypeEscrowProvider, Configured: true, Payable: true}

	result, err := payments.ProcessInvoicePayment(context.Background(), mockDB.Querier, clk, customer, 42,
		[]providers.PaymentProvider{provider})
	require.NoError(t, err)
	assert.True(t, result.FullyPaid)
	// No provider was charged.
	assert.Empty(t, provider.Charges)
}

func TestProcessInvoicePayment_AlreadyPaid(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	payments := newPaymentService()
	customer := testutil.Customer(7, 0)

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 800)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().SumInvoicePayments(gomock.Any(), int64(42)).Return(int64(800), nil)
	mockDB.Querier.EXPECT().MarkInvoicePaid(gomock.Any(), gomock.Any()).Return(nil)

	result, err := payments.ProcessInvoicePayment(context.Background(), mockDB.Querier, clk, customer, 42, nil)
	require.NoError(t, err)
	assert.True(t, result.FullyPaid)
}

func TestProcessInvoicePayment_SpendingLimitExceeded(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	clk := clock.NewFixedClock(testNow)
	payments := newPaymentService()

	customer := testutil.Customer(7, 100000)
	customer.SpendingLimitUsdCents = 1000
	customer.CurrentPeriodChargedUsdCents = 500
	customer.CurrentPeriodStart = testutil.Date(2025, 6, 10)

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusPending, 900)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().SumInvoicePayments(gomock.Any(), int64(42)).Return(int64(0), nil)
	mockDB.Querier.EXPECT().ListAvailableCredits(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockDB.Querier.EXPECT().CreateAdminNotification(gomock.Any(), gomock.Any()).Return(db.AdminNotification{}, nil)
	mockDB.Querier.EXPECT().MarkInvoiceFailed(gomock.Any(), gomock.Any()).Return(nil)

	provider := &testutil.StubProvider{ProviderType: db.PaymentSourceTypeEscrowProvider, Configured: true, Payable: true}

	result, err := payments.ProcessInvoicePayment(context.Background(), mockDB.Querier, clk, customer, 42,
		[]providers.PaymentProvider{provider})
	require.NoError(t, err)
	assert.False(t, result.FullyPaid)
	assert.Contains(t, result.Error, "spending limit")
	assert.Empty(t, provider.Charges)
}
