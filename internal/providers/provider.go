// Package providers implements the uniform payment provider interface over
// the escrow ledger, the card network and delegated customer wallets, plus
// the priority-ordered provider chain.
package providers

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// PaymentProvider is the closed interface every payment backend implements.
type PaymentProvider interface {
	// Type identifies the backend.
	Type() db.PaymentSourceType
	// IsConfigured reports whether the customer can use this backend at all.
	IsConfigured(ctx context.Context, customer db.Customer) bool
	// CanPay is a cheap pre-check; for escrow it consults the cached balance,
	// for card it only confirms configuration.
	CanPay(ctx context.Context, customer db.Customer, amountUsdCents int64) (bool, error)
	// Charge attempts to collect the amount. Infrastructure failures are
	// returned as errors; business declines come back in the result.
	Charge(ctx context.Context, customer db.Customer, params business.ChargeParams) (*business.ChargeResult, error)
	// Info returns a display-only descriptor.
	Info(customer db.Customer) business.ProviderInfo
}

// IdempotencyKey builds the provider-level idempotency key for an invoice.
func IdempotencyKey(invoiceID int64, providerType db.PaymentSourceType) string {
	switch providerType {
	case db.PaymentSourceTypeCardProvider:
		return fmt.Sprintf("inv_%d_stripe", invoiceID)
	case db.PaymentSourceTypeEscrowProvider:
		return fmt.Sprintf("inv_%d_escrow", invoiceID)
	case db.PaymentSourceTypeWalletProvider:
		return fmt.Sprintf("inv_%d_wallet", invoiceID)
	default:
		return fmt.Sprintf("inv_%d_%s", invoiceID, providerType)
	}
}

// Factory builds provider chains from a customer's stored payment methods.
type Factory struct {
	escrowClient escrow.Client
	stripeClient *stripe.Client
}

// NewFactory creates a provider factory. stripeAPIKey may be empty, in which
// case card methods are skipped with a warning.
func NewFactory(escrowClient escrow.Client, stripeAPIKey string) *Factory {
	f := &Factory{escrowClient: escrowClient}
	if stripeAPIKey != "" {
		f.stripeClient = stripe.NewClient(stripeAPIKey, nil)
	}
	return f
}

// LoadChain instantiates one provider per active payment method, ordered by
// priority ascending. It must be called with the customer lock held: the
// method ordering is customer-owned data and reorders also take the lock, so
// loading inside the lock excludes racing with them.
func (f *Factory) LoadChain(ctx context.Context, queries db.Querier, customerID int32) ([]PaymentProvider, error) {
	methods, err := queries.ListActivePaymentMethods(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	chain := make([]PaymentProvider, 0, len(methods))
	for _, method := range methods {
		switch method.ProviderType {
		case db.PaymentSourceTypeEscrowProvider:
			chain = append(chain, NewEscrowProvider(queries, f.escrowClient))
		case db.PaymentSourceTypeWalletProvider:
			chain = append(chain, NewWalletProvider(f.escrowClient))
		case db.PaymentSourceTypeCardProvider:
			if f.stripeClient == nil {
				logger.Log.Warn("card payment method configured but stripe client is not",
					zap.Int32("customer_id", customerID))
				continue
			}
			chain = append(chain, NewCardProvider(f.stripeClient, method))
		default:
			logger.Log.Warn("skipping unknown payment method type",
				zap.Int32("customer_id", customerID),
				zap.String("provider_type", string(method.ProviderType)))
		}
	}
	return chain, nil
}
