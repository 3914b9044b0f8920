package providers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// EscrowProvider charges the customer's escrow account through the ledger
// service and keeps the cached balance mirror up to date.
type EscrowProvider struct {
	queries db.Querier
	client  escrow.Client
}

var _ PaymentProvider = (*EscrowProvider)(nil)

// NewEscrowProvider creates an escrow provider bound to the caller's
// transaction-scoped queries.
func NewEscrowProvider(queries db.Querier, client escrow.Client) *EscrowProvider {
	return &EscrowProvider{queries: queries, client: client}
}

func (p *EscrowProvider) Type() db.PaymentSourceType {
	return db.PaymentSourceTypeEscrowProvider
}

func (p *EscrowProvider) IsConfigured(ctx context.Context, customer db.Customer) bool {
	return customer.EscrowAccountID.Valid && customer.EscrowAccountID.String != ""
}

// CanPay consults the cached balance mirror only; the authoritative check is
// the ledger debit itself.
func (p *EscrowProvider) CanPay(ctx context.Context, customer db.Customer, amountUsdCents int64) (bool, error) {
	if !p.IsConfigured(ctx, customer) {
		return false, nil
	}
	return customer.CurrentBalanceUsdCents >= amountUsdCents, nil
}

func (p *EscrowProvider) Charge(ctx context.Context, customer db.Customer, params business.ChargeParams) (*business.ChargeResult, error) {
	if !p.IsConfigured(ctx, customer) {
		return &business.ChargeResult{
			Success:   false,
			Error:     "escrow account not configured",
			ErrorCode: "not_configured",
			Retryable: false,
		}, nil
	}

	result, err := p.client.DebitAccount(ctx, escrow.DebitParams{
		AccountID:      customer.EscrowAccountID.String,
		AmountUsdCents: params.AmountUsdCents,
		IdempotencyKey: params.IdempotencyKey,
		Description:    params.Description,
	})
	if err != nil {
		if errors.Is(err, escrow.ErrInsufficientFunds) {
			// A later deposit can make the retry succeed.
			return &business.ChargeResult{
				Success:   false,
				Error:     business.ErrInsufficientBalance.Error(),
				ErrorCode: "insufficient_funds",
				Retryable: true,
			}, nil
		}
		return nil, fmt.Errorf("escrow charge failed: %w", err)
	}

	if err := p.queries.UpdateCustomerBalance(ctx, db.UpdateCustomerBalanceParams{
		ID:                     customer.ID,
		CurrentBalanceUsdCents: result.BalanceUsdCents,
	}); err != nil {
		// The debit settled; a stale mirror corrects itself on the next sync.
		logger.Log.Warn("failed to update cached escrow balance",
			zap.Int32("customer_id", customer.ID),
			zap.Error(err))
	}

	return &business.ChargeResult{
		Success:           true,
		ProviderReference: result.TransactionDigest,
	}, nil
}

func (p *EscrowProvider) Info(customer db.Customer) business.ProviderInfo {
	return business.ProviderInfo{
		ProviderType: string(db.PaymentSourceTypeEscrowProvider),
		DisplayName:  "Escrow balance",
		Detail:       fmt.Sprintf("$%.2f available", float64(customer.CurrentBalanceUsdCents)/100),
	}
}
