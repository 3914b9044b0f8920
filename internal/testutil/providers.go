package testutil

import (
	"context"
	"fmt"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// FakeEscrowClient is an in-memory ledger for provider tests.
type FakeEscrowClient struct {
	Balances map[string]int64
	Debits   []escrow.DebitParams
	FailWith error
}

var _ escrow.Client = (*FakeEscrowClient)(nil)

// NewFakeEscrowClient creates a ledger with the given account balances.
func NewFakeEscrowClient(balances map[string]int64) *FakeEscrowClient {
	return &FakeEscrowClient{Balances: balances}
}

func (f *FakeEscrowClient) GetBalance(ctx context.Context, accountID string) (int64, error) {
	return f.Balances[accountID], nil
}

func (f *FakeEscrowClient) DebitAccount(ctx context.Context, params escrow.DebitParams) (*escrow.DebitResult, error) {
	return f.debit(params)
}

func (f *FakeEscrowClient) DebitWallet(ctx context.Context, params escrow.DebitParams) (*escrow.DebitResult, error) {
	return f.debit(params)
}

func (f *FakeEscrowClient) debit(params escrow.DebitParams) (*escrow.DebitResult, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	balance := f.Balances[params.AccountID]
	if balance < params.AmountUsdCents {
		return nil, escrow.ErrInsufficientFunds
	}
	f.Balances[params.AccountID] = balance - params.AmountUsdCents
	f.Debits = append(f.Debits, params)
	return &escrow.DebitResult{
		TransactionDigest: fmt.Sprintf("0xdigest-%d", len(f.Debits)),
		BalanceUsdCents:   f.Balances[params.AccountID],
	}, nil
}

// StubProvider is a scripted payment provider for payment loop tests.
type StubProvider struct {
	ProviderType db.PaymentSourceType
	Configured   bool
	Payable      bool
	Result       *business.ChargeResult
	ChargeErr    error
	Charges      []business.ChargeParams
}

func (p *StubProvider) Type() db.PaymentSourceType {
	return p.ProviderType
}

func (p *StubProvider) IsConfigured(ctx context.Context, customer db.Customer) bool {
	return p.Configured
}

func (p *StubProvider) CanPay(ctx context.Context, customer db.Customer, amountUsdCents int64) (bool, error) {
	return p.Payable, nil
}

func (p *StubProvider) Charge(ctx context.Context, customer db.Customer, params business.ChargeParams) (*business.ChargeResult, error) {
	p.Charges = append(p.Charges, params)
	if p.ChargeErr != nil {
		return nil, p.ChargeErr
	}
	return p.Result, nil
}

func (p *StubProvider) Info(customer db.Customer) business.ProviderInfo {
	return business.ProviderInfo{ProviderType: string(p.ProviderType)}
}
