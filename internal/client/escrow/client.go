// Package escrow talks to the external escrow ledger service that fronts the
// on-chain accounts. The billing engine never signs chain transactions itself;
// it instructs the ledger and mirrors resulting balances.
package escrow

import (
	"context"
	"errors"
	"fmt"

	httpclient "github.com/sealpoint/billing-api/internal/client/http"

	"golang.org/x/time/rate"
)

// ErrInsufficientFunds is returned when the ledger rejects a debit for lack of
// funds.
var ErrInsufficientFunds = errors.New("escrow: insufficient funds")

// Client is the ledger surface the payment providers depend on.
type Client interface {
	// GetBalance returns the current account balance in USD cents.
	GetBalance(ctx context.Context, accountID string) (int64, error)
	// DebitAccount withdraws from an escrow account. Idempotent on the key.
	DebitAccount(ctx context.Context, params DebitParams) (*DebitResult, error)
	// DebitWallet executes a delegated debit against a customer wallet.
	DebitWallet(ctx context.Context, params DebitParams) (*DebitResult, error)
}

// DebitParams describes a single ledger debit.
type DebitParams struct {
	AccountID      string `json:"account_id"`
	AmountUsdCents int64  `json:"amount_usd_cents"`
	IdempotencyKey string `json:"idempotency_key"`
	Description    string `json:"description,omitempty"`
}

// DebitResult is the ledger's acknowledgement of a settled debit.
type DebitResult struct {
	TransactionDigest string `json:"transaction_digest"`
	BalanceUsdCents   int64  `json:"balance_usd_cents"`
}

// EscrowClient is the HTTP implementation of Client.
type EscrowClient struct {
	httpClient *httpclient.HTTPClient
	limiter    *rate.Limiter
}

var _ Client = (*EscrowClient)(nil)

// NewEscrowClient creates a ledger client. Requests are rate limited so a
// burst of periodic work cannot overwhelm the ledger service.
func NewEscrowClient(baseURL, apiKey string) *EscrowClient {
	return &EscrowClient{
		httpClient: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithDefaultHeader("Authorization", "Bearer "+apiKey),
		),
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

type balanceResponse struct {
	AccountID       string `json:"account_id"`
	BalanceUsdCents int64  `json:"balance_usd_cents"`
}

func (c *EscrowClient) GetBalance(ctx context.Context, accountID string) (int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/accounts/%s/balance", accountID))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch escrow balance: %w", err)
	}

	var balance balanceResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &balance); err != nil {
		return 0, fmt.Errorf("failed to decode escrow balance: %w", err)
	}
	return balance.BalanceUsdCents, nil
}

func (c *EscrowClient) DebitAccount(ctx context.Context, params DebitParams) (*DebitResult, error) {
	return c.debit(ctx, fmt.Sprintf("/accounts/%s/debits", params.AccountID), params)
}

func (c *EscrowClient) DebitWallet(ctx context.Context, params DebitParams) (*DebitResult, error) {
	return c.debit(ctx, fmt.Sprintf("/wallets/%s/debits", params.AccountID), params)
}

func (c *EscrowClient) debit(ctx context.Context, path string, params DebitParams) (*DebitResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, params,
		httpclient.WithHeader("Idempotency-Key", params.IdempotencyKey))
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == 402 {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to debit escrow: %w", err)
	}

	var result DebitResult
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to decode escrow debit result: %w", err)
	}
	return &result, nil
}
