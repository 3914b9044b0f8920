package providers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func init() {
	logger.InitLogger("test")
}

func TestIdempotencyKey(t *testing.T) {
	assert.Equal(t, "inv_42_stripe", providers.IdempotencyKey(42, db.PaymentSourceTypeCardProvider))
	assert.Equal(t, "inv_42_escrow", providers.IdempotencyKey(42, db.PaymentSourceTypeEscrowProvider))
	assert.Equal(t, "inv_42_wallet", providers.IdempotencyKey(42, db.PaymentSourceTypeWalletProvider))
}

func TestEscrowProvider_CanPayUsesCachedBalance(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	escrowClient := testutil.NewFakeEscrowClient(map[string]int64{"esc-acct-1": 5000})
	provider := providers.NewEscrowProvider(mockDB.Querier, escrowClient)

	customer := testutil.Customer(7, 1000)

	canPay, err := provider.CanPay(context.Background(), customer, 900)
	require.NoError(t, err)
	assert.True(t, canPay)

	canPay, err = provider.CanPay(context.Background(), customer, 1100)
	require.NoError(t, err)
	assert.False(t, canPay)

	unconfigured := testutil.Customer(8, 100000)
	unconfigured.EscrowAccountID.Valid = false
	canPay, err = provider.CanPay(context.Background(), unconfigured, 1)
	require.NoError(t, err)
	assert.False(t, canPay)
}

func TestEscrowProvider_ChargeDebitsAndMirrorsBalance(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	escrowClient := testutil.NewFakeEscrowClient(map[string]int64{"esc-acct-1": 5000})
	provider := providers.NewEscrowProvider(mockDB.Querier, escrowClient)
	customer := testutil.Customer(7, 5000)

	mockDB.Querier.EXPECT().
		UpdateCustomerBalance(gomock.Any(), db.UpdateCustomerBalanceParams{
			ID:                     7,
			CurrentBalanceUsdCents: 4100,
		}).
		Return(nil)

	result, err := provider.Charge(context.Background(), customer, business.ChargeParams{
		CustomerID:     7,
		InvoiceID:      42,
		AmountUsdCents: 900,
		IdempotencyKey: "inv_42_escrow",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ProviderReference)
	require.Len(t, escrowClient.Debits, 1)
	assert.Equal(t, "inv_42_escrow", escrowClient.Debits[0].IdempotencyKey)
}

func TestEscrowProvider_InsufficientFundsIsRetryable(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	escrowClient := testutil.NewFakeEscrowClient(map[string]int64{"esc-acct-1": 100})
	provider := providers.NewEscrowProvider(mockDB.Querier, escrowClient)
	customer := testutil.Customer(7, 100)

	result, err := provider.Charge(context.Background(), customer, business.ChargeParams{
		CustomerID:     7,
		InvoiceID:      42,
		AmountUsdCents: 900,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.Retryable)
	assert.Equal(t, "insufficient_funds", result.ErrorCode)
}

func TestWalletProvider_NotConfigured(t *testing.T) {
	escrowClient := testutil.NewFakeEscrowClient(nil)
	provider := providers.NewWalletProvider(escrowClient)

	customer := testutil.Customer(7, 0)
	// No wallet address set.

	canPay, err := provider.CanPay(context.Background(), customer, 900)
	require.NoError(t, err)
	assert.False(t, canPay)

	result, err := provider.Charge(context.Background(), customer, business.ChargeParams{AmountUsdCents: 900})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "not_configured", result.ErrorCode)
	assert.False(t, result.Retryable)
}

func TestLoadChain_OrdersByPriorityAndSkipsUnknown(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	factory := providers.NewFactory(testutil.NewFakeEscrowClient(nil), "")

	methods := []db.CustomerPaymentMethod{
		{CustomerID: 7, ProviderType: db.PaymentSourceTypeEscrowProvider, Priority: 0},
		{CustomerID: 7, ProviderType: db.PaymentSourceTypeWalletProvider, Priority: 1},
		// Card configured but no stripe client: skipped with a warning.
		{CustomerID: 7, ProviderType: db.PaymentSourceTypeCardProvider, Priority: 2},
	}
	mockDB.Querier.EXPECT().ListActivePaymentMethods(gomock.Any(), int32(7)).Return(methods, nil)

	chain, err := factory.LoadChain(context.Background(), mockDB.Querier, 7)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, db.PaymentSourceTypeEscrowProvider, chain[0].Type())
	assert.Equal(t, db.PaymentSourceTypeWalletProvider, chain[1].Type())
}
