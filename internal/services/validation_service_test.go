package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func newValidationService() *services.ValidationService {
	log := zap.NewNop()
	return services.NewValidationService(log, services.NewNotificationService(log, "", ""))
}

func TestEnsureInvoiceValid_NegativeAmount(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	validation := newValidationService()

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, -100)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().
		CreateAdminNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateAdminNotificationParams) (db.AdminNotification, error) {
			assert.Equal(t, db.NotificationSeverityError, arg.Severity)
			assert.Equal(t, "billing", arg.Category)
			assert.Equal(t, services.CodeNegativeAmount, arg.Code)
			return db.AdminNotification{}, nil
		})

	err := validation.EnsureInvoiceValid(context.Background(), mockDB.Querier, 42)

	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, services.CodeNegativeAmount, ve.Code)
}

func TestEnsureInvoiceValid_MultipleDrafts(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	validation := newValidationService()

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 2900)
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().CountDraftInvoices(gomock.Any(), int32(7)).Return(int64(2), nil)
	mockDB.Querier.EXPECT().CreateAdminNotification(gomock.Any(), gomock.Any()).Return(db.AdminNotification{}, nil)

	err := validation.EnsureInvoiceValid(context.Background(), mockDB.Querier, 42)

	var ve *business.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, services.CodeMultipleDraftInvoices, ve.Code)
}

func TestEnsureInvoiceValid_OrphanedCreditsAreWarningOnly(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	validation := newValidationService()

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 0)
	orphan := testutil.Credit(7, 870, nil)
	orphan.Reason = db.CreditReasonReconciliation
	reset := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierStarter)
	reset.State = db.ServiceStateNotProvisioned

	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().CountDraftInvoices(gomock.Any(), int32(7)).Return(int64(1), nil)
	mockDB.Querier.EXPECT().ListReconciliationCreditsWithRemaining(gomock.Any(), int32(7)).Return([]db.CustomerCredit{orphan}, nil)
	mockDB.Querier.EXPECT().ListServiceInstances(gomock.Any(), int32(7)).Return([]db.ServiceInstance{reset}, nil)
	mockDB.Querier.EXPECT().
		CreateAdminNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateAdminNotificationParams) (db.AdminNotification, error) {
			assert.Equal(t, db.NotificationSeverityWarning, arg.Severity)
			assert.Equal(t, services.CodeOrphanedReconciliationCredits, arg.Code)
			return db.AdminNotification{}, nil
		})

	// Warnings do not fail the operation.
	require.NoError(t, validation.EnsureInvoiceValid(context.Background(), mockDB.Querier, 42))
}

func TestEnsureInvoiceValid_HealthyInvoice(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	validation := newValidationService()

	invoice := testutil.BillingRecord(42, 7, db.InvoiceStatusDraft, 2900)
	subscribed := testutil.ServiceInstance(1, 7, db.ServiceTypeSeal, db.ServiceTierPro)

	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(invoice, nil)
	mockDB.Querier.EXPECT().CountDraftInvoices(gomock.Any(), int32(7)).Return(int64(1), nil)
	mockDB.Querier.EXPECT().ListReconciliationCreditsWithRemaining(gomock.Any(), int32(7)).Return([]db.CustomerCredit{testutil.Credit(7, 870, nil)}, nil)
	mockDB.Querier.EXPECT().ListServiceInstances(gomock.Any(), int32(7)).Return([]db.ServiceInstance{subscribed}, nil)

	require.NoError(t, validation.EnsureInvoiceValid(context.Background(), mockDB.Querier, 42))
}

func TestEnsureInvoiceValid_LoadErrorIsTransient(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	validation := newValidationService()
	mockDB.Querier.EXPECT().GetBillingRecord(gomock.Any(), int64(42)).Return(db.BillingRecord{}, pgx.ErrTxClosed)

	err := validation.EnsureInvoiceValid(context.Background(), mockDB.Querier, 42)
	assert.True(t, business.IsSystemError(err))
}
