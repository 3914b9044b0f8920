package business

import "time"

// ServiceConfig is the add-on configuration bag stored on a service instance.
// The draft recalculator reads only these fields.
type ServiceConfig struct {
	PurchasedApiKeys  int32 `json:"purchasedApiKeys,omitempty"`
	PurchasedSealKeys int32 `json:"purchasedSealKeys,omitempty"`
	PurchasedPackages int32 `json:"purchasedPackages,omitempty"`
}

// SubscribeResult is returned from the first-month subscription billing flow.
type SubscribeResult struct {
	InvoiceID           int64  `json:"invoice_id"`
	AmountUsdCents      int64  `json:"amount_usd_cents"`
	PaymentSuccessful   bool   `json:"payment_successful"`
	SubPendingInvoiceID *int64 `json:"sub_pending_invoice_id,omitempty"`
	Error               string `json:"error,omitempty"`
}

// Phase1Result is the locked validation/quote step of a two-phase tier upgrade.
type Phase1Result struct {
	CanProceed    bool   `json:"can_proceed"`
	CurrentTier   string `json:"current_tier"`
	NewTier       string `json:"new_tier"`
	ChargeCents   int64  `json:"charge_cents"`
	Description   string `json:"description"`
	ServiceType   string `json:"service_type"`
	UseSimplePath bool   `json:"use_simple_path"`
}

// TierChangeResult reports the outcome of an upgrade, downgrade, cancel or
// undo operation.
type TierChangeResult struct {
	Success      bool   `json:"success"`
	ChargedCents int64  `json:"charged_cents"`
	InvoiceID    *int64 `json:"invoice_id,omitempty"`
	Scheduled    bool   `json:"scheduled"`
	EffectiveAt  string `json:"effective_at,omitempty"`
	Message      string `json:"message,omitempty"`
}

// CanProvisionResult answers whether a service type may be provisioned for a
// customer right now, and if not, when it becomes available.
type CanProvisionResult struct {
	Allowed           bool       `json:"allowed"`
	Reason            string     `json:"reason,omitempty"`
	AlreadySubscribed bool       `json:"already_subscribed,omitempty"`
	AvailableAt       *time.Time `json:"available_at,omitempty"`
}
