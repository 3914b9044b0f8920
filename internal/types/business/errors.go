package business

import (
	"errors"
	"fmt"
)

// ValidationError is a permanent, data-level failure. It is safe to cache via
// idempotency (retrying will not change the outcome), safe to skip the
// offending invoice while continuing with others, and is always recorded as an
// admin notification.
type ValidationError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error %s: %s", e.Code, e.Message)
}

// SystemError is a transient infrastructure failure. It must never be cached
// by the idempotency layer; it propagates out so the operation is retried on
// the next periodic tick.
type SystemError struct {
	Message string
	Cause   error
}

func (e *SystemError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("system error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("system error: %s", e.Message)
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError wraps a transient failure.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// PaymentFailedError reports the outcome of an exhausted provider chain.
type PaymentFailedError struct {
	ProviderError string
	Retryable     bool
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed: %s (retryable=%t)", e.ProviderError, e.Retryable)
}

// Domain refusals reported to API callers.
var (
	// ErrLockTimeout is returned when the per-customer advisory lock cannot be
	// acquired within the lock timeout. Callers should retry with backoff.
	ErrLockTimeout = errors.New("timed out waiting for customer lock")

	// ErrTierChangeWhileCancellationScheduled rejects tier changes while a
	// cancellation is scheduled for the service.
	ErrTierChangeWhileCancellationScheduled = errors.New("a cancellation is scheduled for this service; undo it before changing tiers")

	// ErrGracePeriodAlreadyStarted rejects undo-cancel once the service has
	// entered cancellation_pending.
	ErrGracePeriodAlreadyStarted = errors.New("grace period already started, contact support")

	// ErrNoCancellationScheduled is returned by undo-cancel when there is
	// nothing to undo.
	ErrNoCancellationScheduled = errors.New("no cancellation scheduled")

	// ErrCooldownActive rejects re-provisioning a service type during its
	// post-deletion cooldown window.
	ErrCooldownActive = errors.New("service was recently cancelled and is in its cooldown window")

	// ErrNoPaymentYet rejects key operations on services that have never been
	// paid for.
	ErrNoPaymentYet = errors.New("service has no completed payment yet")

	// ErrInsufficientBalance is reported by the escrow provider when the
	// cached balance does not cover the charge.
	ErrInsufficientBalance = errors.New("insufficient escrow balance")

	// ErrCustomerNotFound is returned for unknown or non-positive customer ids.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrServiceNotFound is returned when the (customer, service_type) pair has
	// no provisioned instance.
	ErrServiceNotFound = errors.New("service not found")

	// ErrTierUnchanged rejects upgrades/downgrades that do not move in the
	// requested direction.
	ErrTierUnchanged = errors.New("target tier must differ from the current tier in the requested direction")

	// ErrTierChangedRetry is returned from phase two of an upgrade when the
	// service drifted between phases.
	ErrTierChangedRetry = errors.New("tier changed concurrently, please retry")
)

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsSystemError reports whether err is (or wraps) a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}
