package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/client/escrow"
	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/pricing"
	"github.com/sealpoint/billing-api/internal/providers"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// BillingHandler serves the customer-facing billing surface.
type BillingHandler struct {
	pool    *pgxpool.Pool
	queries db.Querier
	logger  *zap.Logger
	clk     clock.Clock
	tiers   *services.TierService
	credits *services.CreditService
	escrow  escrow.Client
	factory *providers.Factory
}

// NewBillingHandler creates the billing handler.
func NewBillingHandler(pool *pgxpool.Pool, queries db.Querier, logger *zap.Logger, clk clock.Clock, tiers *services.TierService, credits *services.CreditService, escrowClient escrow.Client, factory *providers.Factory) *BillingHandler {
	return &BillingHandler{
		pool:    pool,
		queries: queries,
		logger:  logger,
		clk:     clk,
		tiers:   tiers,
		credits: credits,
		escrow:  escrowClient,
		factory: factory,
	}
}

// PaymentMethods lists the customer's provider chain in charge order with
// display-only descriptors.
func (h *BillingHandler) PaymentMethods(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	customer, err := h.queries.GetCustomer(ctx, customerID)
	if err != nil {
		respondError(c, h.logger, business.ErrCustomerNotFound)
		return
	}

	chain, err := h.factory.LoadChain(ctx, h.queries, customerID)
	if err != nil {
		respondError(c, h.logger, business.NewSystemError("failed to load provider chain", err))
		return
	}

	infos := make([]business.ProviderInfo, 0, len(chain))
	for _, provider := range chain {
		infos = append(infos, provider.Info(customer))
	}
	c.JSON(http.StatusOK, infos)
}

// RefreshBalance re-reads the customer's escrow balance from the ledger and
// updates the cached mirror. Called after a deposit settles so pending
// first-month invoices can be retried against real funds.
func (h *BillingHandler) RefreshBalance(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var balance int64
	err := helpers.WithCustomerLock(c.Request.Context(), h.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)
		customer, err := q.GetCustomer(c.Request.Context(), customerID)
		if err != nil {
			return business.ErrCustomerNotFound
		}
		if !customer.EscrowAccountID.Valid {
			return &business.ValidationError{
				Code:    "NO_ESCROW_ACCOUNT",
				Message: "customer has no escrow account",
			}
		}

		balance, err = h.escrow.GetBalance(c.Request.Context(), customer.EscrowAccountID.String)
		if err != nil {
			return business.NewSystemError("failed to read escrow balance", err)
		}
		return q.UpdateCustomerBalance(c.Request.Context(), db.UpdateCustomerBalanceParams{
			ID:                     customerID,
			CurrentBalanceUsdCents: balance,
		})
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance_usd_cents": balance})
}

type subscribeRequest struct {
	ServiceType string                 `json:"service_type" binding:"required"`
	Tier        string                 `json:"tier" binding:"required"`
	Config      business.ServiceConfig `json:"config"`
}

// Subscribe provisions a service and charges the first month.
func (h *BillingHandler) Subscribe(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.tiers.Subscribe(c.Request.Context(), services.SubscribeParams{
		CustomerID:  customerID,
		ServiceType: db.ServiceType(req.ServiceType),
		Tier:        db.ServiceTier(req.Tier),
		Config:      req.Config,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type tierChangeRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Tier        string `json:"tier" binding:"required"`
}

// Upgrade moves a service to a higher tier, charging pro-rata.
func (h *BillingHandler) Upgrade(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req tierChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.tiers.UpgradeTier(c.Request.Context(), customerID, db.ServiceType(req.ServiceType), db.ServiceTier(req.Tier))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Downgrade schedules a move to a lower tier for the next month.
func (h *BillingHandler) Downgrade(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req tierChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.tiers.DowngradeTier(c.Request.Context(), customerID, db.ServiceType(req.ServiceType), db.ServiceTier(req.Tier))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type cancelRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
}

// Cancel schedules (or, for unpaid subscriptions, performs) a cancellation.
func (h *BillingHandler) Cancel(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.tiers.CancelSubscription(c.Request.Context(), customerID, db.ServiceType(req.ServiceType))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UndoCancel withdraws a scheduled cancellation.
func (h *BillingHandler) UndoCancel(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.tiers.UndoCancellation(c.Request.Context(), customerID, db.ServiceType(req.ServiceType))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CanProvision answers whether a service type can be provisioned now.
func (h *BillingHandler) CanProvision(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	result, err := h.tiers.CanProvision(c.Request.Context(), customerID, db.ServiceType(c.Query("service_type")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type invoiceResponse struct {
	ID             int64  `json:"id"`
	InvoiceNumber  string `json:"invoice_number"`
	Status         string `json:"status"`
	AmountUsdCents int64  `json:"amount_usd_cents"`
	AmountPaid     int64  `json:"amount_paid_usd_cents"`
	Description    string `json:"description"`
	PeriodStart    string `json:"billing_period_start,omitempty"`
	PeriodEnd      string `json:"billing_period_end,omitempty"`
}

// BillingHistory lists the customer's invoices with descriptions derived from
// their line items.
func (h *BillingHandler) BillingHistory(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	records, err := h.queries.ListBillingRecordsForCustomer(ctx, customerID)
	if err != nil {
		respondError(c, h.logger, business.NewSystemError("failed to list billing records", err))
		return
	}

	out := make([]invoiceResponse, 0, len(records))
	for _, record := range records {
		resp := invoiceResponse{
			ID:             record.ID,
			InvoiceNumber:  record.InvoiceNumber,
			Status:         string(record.Status),
			AmountUsdCents: record.AmountUsdCents,
			AmountPaid:     record.AmountPaidUsdCents,
		}
		if record.BillingPeriodStart.Valid {
			resp.PeriodStart = record.BillingPeriodStart.Time.Format("2006-01-02")
		}
		if record.BillingPeriodEnd.Valid {
			resp.PeriodEnd = record.BillingPeriodEnd.Time.Format("2006-01-02")
		}

		items, err := h.queries.ListInvoiceLineItems(ctx, record.ID)
		if err != nil {
			respondError(c, h.logger, business.NewSystemError("failed to list line items", err))
			return
		}
		for _, item := range items {
			if tier, ok := pricing.TierForLineItemType(item.ItemType); ok {
				resp.Description = pricing.SubscriptionDescription(item.ServiceType, tier)
				break
			}
			if item.Description.Valid && resp.Description == "" {
				resp.Description = item.Description.String
			}
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// Credits returns the customer's available credit balance.
func (h *BillingHandler) Credits(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	available, err := h.credits.AvailableCredits(c.Request.Context(), h.queries, h.clk, customerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_usd_cents": available})
}

type reorderPaymentMethodsRequest struct {
	// Ordered method ids, highest priority first.
	MethodIDs []string `json:"method_ids" binding:"required"`
}

// ReorderPaymentMethods rewrites provider priorities under the customer lock
// so a concurrent payment cannot observe a half-applied order.
func (h *BillingHandler) ReorderPaymentMethods(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req reorderPaymentMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := helpers.WithCustomerLock(c.Request.Context(), h.pool, customerID, func(tx pgx.Tx) error {
		q := db.New(tx)
		methods, err := q.ListActivePaymentMethods(c.Request.Context(), customerID)
		if err != nil {
			return business.NewSystemError("failed to list payment methods", err)
		}

		byID := make(map[string]db.CustomerPaymentMethod, len(methods))
		for _, method := range methods {
			byID[method.ID.String()] = method
		}

		for position, id := range req.MethodIDs {
			method, found := byID[id]
			if !found {
				return &business.ValidationError{
					Code:    "UNKNOWN_PAYMENT_METHOD",
					Message: "payment method does not belong to this customer",
				}
			}
			if err := q.UpdatePaymentMethodPriority(c.Request.Context(), db.UpdatePaymentMethodPriorityParams{
				ID:       method.ID,
				Priority: int32(position),
			}); err != nil {
				return business.NewSystemError("failed to update payment method priority", err)
			}
		}
		return nil
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "payment methods reordered"})
}
