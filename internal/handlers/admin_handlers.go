package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/processor"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// AdminHandler serves the operational surface: the periodic job triggers, the
// test clock, credit grants and admin notifications.
type AdminHandler struct {
	pool    *pgxpool.Pool
	queries db.Querier
	logger  *zap.Logger
	clk     clock.Clock
	job     *processor.PeriodicJob
	credits *services.CreditService
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(pool *pgxpool.Pool, queries db.Querier, logger *zap.Logger, clk clock.Clock, job *processor.PeriodicJob, credits *services.CreditService) *AdminHandler {
	return &AdminHandler{
		pool:    pool,
		queries: queries,
		logger:  logger,
		clk:     clk,
		job:     job,
		credits: credits,
	}
}

// RunPeriodicJob executes one full periodic pass synchronously.
func (h *AdminHandler) RunPeriodicJob(c *gin.Context) {
	report, err := h.job.Run(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// RunPeriodicJobForCustomer executes the periodic pass for one customer.
func (h *AdminHandler) RunPeriodicJobForCustomer(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	result, err := h.job.RunForCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type setTestClockRequest struct {
	Now time.Time `json:"now" binding:"required"`
}

// SetTestClock persists the shared mock instant. Only wired in mock-clock
// stages.
func (h *AdminHandler) SetTestClock(c *gin.Context) {
	mock, ok := h.clk.(*clock.MockClock)
	if !ok {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "test clock is not enabled"})
		return
	}

	var req setTestClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := mock.Set(c.Request.Context(), req.Now); err != nil {
		respondError(c, h.logger, business.NewSystemError("failed to set test clock", err))
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "test clock updated"})
}

type issueCreditRequest struct {
	AmountUsdCents int64      `json:"amount_usd_cents" binding:"required"`
	Reason         string     `json:"reason" binding:"required"`
	Description    string     `json:"description"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CampaignID     string     `json:"campaign_id"`
}

// IssueCredit grants a credit to a customer.
func (h *AdminHandler) IssueCredit(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req issueCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var credit db.CustomerCredit
	err := helpers.WithCustomerLock(c.Request.Context(), h.pool, customerID, func(tx pgx.Tx) error {
		var txErr error
		credit, txErr = h.credits.IssueCredit(c.Request.Context(), db.New(tx), services.IssueCreditParams{
			CustomerID:     customerID,
			AmountUsdCents: req.AmountUsdCents,
			Reason:         db.CreditReason(req.Reason),
			Description:    req.Description,
			ExpiresAt:      req.ExpiresAt,
			CampaignID:     req.CampaignID,
		})
		return txErr
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"credit_id": credit.ID.String()})
}

// ListNotifications returns unacknowledged admin notifications.
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.queries.ListUnacknowledgedNotifications(c.Request.Context(), 100)
	if err != nil {
		respondError(c, h.logger, business.NewSystemError("failed to list notifications", err))
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// AcknowledgeNotification marks one notification as handled.
func (h *AdminHandler) AcknowledgeNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.queries.AcknowledgeAdminNotification(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, business.NewSystemError("failed to acknowledge notification", err))
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "acknowledged"})
}

// Health reports liveness.
func (h *AdminHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
