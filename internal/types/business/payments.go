package business

// ChargeParams is the provider-agnostic input for a single charge attempt.
type ChargeParams struct {
	CustomerID     int32
	InvoiceID      int64
	AmountUsdCents int64
	Description    string
	IdempotencyKey string
}

// ChargeResult is the uniform outcome of a provider charge attempt.
type ChargeResult struct {
	Success           bool   `json:"success"`
	ProviderReference string `json:"provider_reference,omitempty"`
	Error             string `json:"error,omitempty"`
	ErrorCode         string `json:"error_code,omitempty"`
	Retryable         bool   `json:"retryable"`
	HostedRedirectURL string `json:"hosted_redirect_url,omitempty"`
}

// PaymentSource describes one source that contributed to paying an invoice.
type PaymentSource struct {
	SourceType     string `json:"source_type"`
	AmountUsdCents int64  `json:"amount_usd_cents"`
	Reference      string `json:"reference,omitempty"`
	CreditID       string `json:"credit_id,omitempty"`
}

// PaymentResult is the outcome of a full multi-source payment attempt for an
// invoice: credits first, then the provider chain in priority order.
type PaymentResult struct {
	FullyPaid       bool            `json:"fully_paid"`
	AmountPaidCents int64           `json:"amount_paid_cents"`
	PaymentSources  []PaymentSource `json:"payment_sources"`
	Error           string          `json:"error,omitempty"`
}

// ProviderInfo is a display-only descriptor of a configured payment provider.
type ProviderInfo struct {
	ProviderType string `json:"provider_type"`
	DisplayName  string `json:"display_name"`
	Detail       string `json:"detail,omitempty"`
}
