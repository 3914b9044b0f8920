// Package handlers exposes the billing engine over HTTP. Transport stays
// thin: parse, call a service, map domain errors to status codes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/types/business"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// customerIDParam parses the :customerID path parameter. Customer ids are
// positive 32-bit integers; zero and negatives are rejected.
func customerIDParam(c *gin.Context) (int32, bool) {
	raw := c.Param("customerID")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer id"})
		return 0, false
	}
	return int32(id), true
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var ve *business.ValidationError
	var pf *business.PaymentFailedError

	switch {
	case errors.Is(err, business.ErrLockTimeout):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "customer is busy, retry shortly"})
	case errors.Is(err, business.ErrCustomerNotFound), errors.Is(err, business.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, business.ErrTierChangeWhileCancellationScheduled),
		errors.Is(err, business.ErrGracePeriodAlreadyStarted),
		errors.Is(err, business.ErrNoCancellationScheduled),
		errors.Is(err, business.ErrCooldownActive),
		errors.Is(err, business.ErrNoPaymentYet),
		errors.Is(err, business.ErrTierUnchanged),
		errors.Is(err, business.ErrTierChangedRetry):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	case errors.As(err, &pf):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: pf.ProviderError})
	default:
		logger.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
