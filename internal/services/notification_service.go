package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// NotificationService records admin notifications. The table is the source of
// truth; for error severity a best-effort email copy goes out through Resend
// when configured.
type NotificationService struct {
	logger       *zap.Logger
	resendClient *resend.Client
	alertEmail   string
}

// NewNotificationService creates a notification service. resendAPIKey and
// alertEmail may be empty, which disables the email copy.
func NewNotificationService(logger *zap.Logger, resendAPIKey, alertEmail string) *NotificationService {
	s := &NotificationService{
		logger:     logger,
		alertEmail: alertEmail,
	}
	if resendAPIKey != "" {
		s.resendClient = resend.NewClient(resendAPIKey)
	}
	return s
}

// NotifyParams describes one admin notification.
type NotifyParams struct {
	Severity   db.NotificationSeverity
	Category   string
	Code       string
	Message    string
	Details    map[string]interface{}
	CustomerID int32
	InvoiceID  int64
}

// Record persists the notification through the caller's queries so it commits
// with the surrounding transaction.
func (s *NotificationService) Record(ctx context.Context, queries db.Querier, params NotifyParams) error {
	details, err := json.Marshal(params.Details)
	if err != nil {
		details = []byte("{}")
	}

	create := db.CreateAdminNotificationParams{
		Severity: params.Severity,
		Category: params.Category,
		Code:     params.Code,
		Message:  params.Message,
		Details:  details,
	}
	if params.CustomerID > 0 {
		create.CustomerID = int4ToPgtype(params.CustomerID)
	}
	if params.InvoiceID > 0 {
		create.InvoiceID = int8ToPgtype(params.InvoiceID)
	}

	notification, err := queries.CreateAdminNotification(ctx, create)
	if err != nil {
		return fmt.Errorf("failed to record admin notification: %w", err)
	}

	s.logger.Info("admin notification recorded",
		zap.String("severity", string(params.Severity)),
		zap.String("code", params.Code),
		zap.Int32("customer_id", params.CustomerID),
		zap.String("notification_id", notification.ID.String()))

	if params.Severity == db.NotificationSeverityError {
		s.sendAlertEmail(ctx, params)
	}
	return nil
}

// RecordValidationIssue persists a validation finding with the standard
// billing category.
func (s *NotificationService) RecordValidationIssue(ctx context.Context, queries db.Querier, severity db.NotificationSeverity, ve *business.ValidationError, customerID int32, invoiceID int64) {
	if err := s.Record(ctx, queries, NotifyParams{
		Severity:   severity,
		Category:   "billing",
		Code:       ve.Code,
		Message:    ve.Message,
		Details:    ve.Details,
		CustomerID: customerID,
		InvoiceID:  invoiceID,
	}); err != nil {
		s.logger.Error("failed to record validation issue",
			zap.String("code", ve.Code),
			zap.Error(err))
	}
}

func (s *NotificationService) sendAlertEmail(ctx context.Context, params NotifyParams) {
	if s.resendClient == nil || s.alertEmail == "" {
		return
	}

	_, err := s.resendClient.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    "billing-alerts@sealpoint.io",
		To:      []string{s.alertEmail},
		Subject: fmt.Sprintf("[billing] %s: %s", params.Code, params.Message),
		Text: fmt.Sprintf("severity: %s\ncategory: %s\ncustomer: %d\ninvoice: %d\n\n%s",
			params.Severity, params.Category, params.CustomerID, params.InvoiceID, params.Message),
	})
	if err != nil {
		s.logger.Warn("failed to send alert email",
			zap.String("code", params.Code),
			zap.Error(err))
	}
}
