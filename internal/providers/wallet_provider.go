package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// WalletProvider executes delegated debits against the customer's own wallet.
// The wallet balance lives on chain, so there is no cheap pre-check beyond
// configuration.
type WalletProvider struct {
	client escrow.Client
}

var _ PaymentProvider = (*WalletProvider)(nil)

// NewWalletProvider creates a wallet provider.
func NewWalletProvider(client escrow.Client) *WalletProvider {
	return &WalletProvider{client: client}
}

func (p *WalletProvider) Type() db.PaymentSourceType {
	return db.PaymentSourceTypeWalletProvider
}

func (p *WalletProvider) IsConfigured(ctx context.Context, customer db.Customer) bool {
	return customer.WalletAddress.Valid && customer.WalletAddress.String != ""
}

func (p *WalletProvider) CanPay(ctx context.Context, customer db.Customer, amountUsdCents int64) (bool, error) {
	return p.IsConfigured(ctx, customer), nil
}

func (p *WalletProvider) Charge(ctx context.Context, customer db.Customer, params business.ChargeParams) (*business.ChargeResult, error) {
	if !p.IsConfigured(ctx, customer) {
		return &business.ChargeResult{
			Success:   false,
			Error:     "wallet not configured",
			ErrorCode: "not_configured",
			Retryable: false,
		}, nil
	}

	result, err := p.client.DebitWallet(ctx, escrow.DebitParams{
		AccountID:      customer.WalletAddress.String,
		AmountUsdCents: params.AmountUsdCents,
		IdempotencyKey: params.IdempotencyKey,
		Description:    params.Description,
	})
	if err != nil {
		if errors.Is(err, escrow.ErrInsufficientFunds) {
			return &business.ChargeResult{
				Success:   false,
				Error:     business.ErrInsufficientBalance.Error(),
				ErrorCode: "insufficient_funds",
				Retryable: true,
			}, nil
		}
		return nil, fmt.Errorf("wallet charge failed: %w", err)
	}

	return &business.ChargeResult{
		Success:           true,
		ProviderReference: result.TransactionDigest,
	}, nil
}

func (p *WalletProvider) Info(customer db.Customer) business.ProviderInfo {
	return business.ProviderInfo{
		ProviderType: string(db.PaymentSourceTypeWalletProvider),
		DisplayName:  "Linked wallet",
		Detail:       customer.WalletAddress.String,
	}
}
