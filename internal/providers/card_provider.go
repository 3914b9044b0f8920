package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// cardChargeTimeout bounds a card charge well under the 10 second customer
// lock timeout.
const cardChargeTimeout = 8 * time.Second

// cardMethodConfig is the provider_config payload of a card payment method.
type cardMethodConfig struct {
	StripeCustomerID string `json:"stripe_customer_id"`
	PaymentMethodID  string `json:"payment_method_id"`
}

// CardProvider charges the customer's saved card off-session through Stripe
// PaymentIntents.
type CardProvider struct {
	client *stripe.Client
	method db.CustomerPaymentMethod
	config cardMethodConfig
}

var _ PaymentProvider = (*CardProvider)(nil)

// NewCardProvider creates a card provider from the stored payment method row.
func NewCardProvider(client *stripe.Client, method db.CustomerPaymentMethod) *CardProvider {
	p := &CardProvider{client: client, method: method}
	if err := json.Unmarshal(method.ProviderConfig, &p.config); err != nil {
		logger.Log.Warn("invalid card payment method config",
			zap.Int32("customer_id", method.CustomerID),
			zap.Error(err))
	}
	return p
}

func (p *CardProvider) Type() db.PaymentSourceType {
	return db.PaymentSourceTypeCardProvider
}

func (p *CardProvider) IsConfigured(ctx context.Context, customer db.Customer) bool {
	if p.config.StripeCustomerID != "" && p.config.PaymentMethodID != "" {
		return true
	}
	return customer.CardCustomerID.Valid && customer.CardCustomerID.String != ""
}

// CanPay only confirms configuration; the card network is the authority on
// whether the charge goes through.
func (p *CardProvider) CanPay(ctx context.Context, customer db.Customer, amountUsdCents int64) (bool, error) {
	return p.IsConfigured(ctx, customer), nil
}

func (p *CardProvider) Charge(ctx context.Context, customer db.Customer, params business.ChargeParams) (*business.ChargeResult, error) {
	if !p.IsConfigured(ctx, customer) {
		return &business.ChargeResult{
			Success:   false,
			Error:     "card not configured",
			ErrorCode: "not_configured",
			Retryable: false,
		}, nil
	}

	stripeCustomerID := p.config.StripeCustomerID
	if stripeCustomerID == "" {
		stripeCustomerID = customer.CardCustomerID.String
	}

	createParams := &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(params.AmountUsdCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Customer:    stripe.String(stripeCustomerID),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
		Description: stripe.String(params.Description),
	}
	if p.config.PaymentMethodID != "" {
		createParams.PaymentMethod = stripe.String(p.config.PaymentMethodID)
	}
	createParams.SetIdempotencyKey(params.IdempotencyKey)

	chargeCtx, cancel := context.WithTimeout(ctx, cardChargeTimeout)
	defer cancel()

	intent, err := p.client.V1PaymentIntents.Create(chargeCtx, createParams)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return cardDeclineResult(stripeErr), nil
		}
		return nil, fmt.Errorf("card charge failed: %w", err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return &business.ChargeResult{
			Success:           true,
			ProviderReference: intent.ID,
		}, nil
	case stripe.PaymentIntentStatusRequiresAction:
		// 3-D-Secure: the chain falls through to the next provider while the
		// customer completes authentication out of band.
		result := &business.ChargeResult{
			Success:   false,
			Error:     "card requires customer authentication",
			ErrorCode: "requires_action",
			Retryable: false,
		}
		if intent.NextAction != nil && intent.NextAction.RedirectToURL != nil {
			result.HostedRedirectURL = intent.NextAction.RedirectToURL.URL
		}
		return result, nil
	default:
		return &business.ChargeResult{
			Success:   false,
			Error:     fmt.Sprintf("payment intent in unexpected status %s", intent.Status),
			ErrorCode: string(intent.Status),
			Retryable: false,
		}, nil
	}
}

func cardDeclineResult(stripeErr *stripe.Error) *business.ChargeResult {
	result := &business.ChargeResult{
		Success:   false,
		Error:     stripeErr.Msg,
		ErrorCode: string(stripeErr.Code),
		Retryable: false,
	}
	if stripeErr.DeclineCode != "" {
		result.ErrorCode = string(stripeErr.DeclineCode)
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeAPI:
		// Stripe-side failure; a later retry may succeed.
		result.Retryable = true
	case stripe.ErrorTypeCard:
		// insufficient_funds declines can clear after payday; hard declines
		// (stolen card, invalid account) never will.
		if stripeErr.DeclineCode == stripe.DeclineCodeInsufficientFunds {
			result.Retryable = true
		}
	}
	return result
}

func (p *CardProvider) Info(customer db.Customer) business.ProviderInfo {
	return business.ProviderInfo{
		ProviderType: string(db.PaymentSourceTypeCardProvider),
		DisplayName:  "Card on file",
	}
}
