// Package testutil provides shared mocks and fixture builders for unit tests.
package testutil

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// Date builds a pgtype.Date at midnight UTC.
func Date(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// Timestamp builds a valid pgtype.Timestamptz.
func Timestamp(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// Text builds a valid pgtype.Text.
func Text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// Customer returns an active customer fixture with an escrow account.
func Customer(id int32, balanceUsdCents int64) db.Customer {
	return db.Customer{
		ID:                     id,
		EscrowAccountID:        Text("esc-acct-1"),
		Status:                 db.CustomerStatusActive,
		SpendingLimitUsdCents:  25000,
		CurrentBalanceUsdCents: balanceUsdCents,
	}
}

// ServiceInstance returns an enabled service fixture.
func ServiceInstance(id int64, customerID int32, serviceType db.ServiceType, tier db.ServiceTier) db.ServiceInstance {
	return db.ServiceInstance{
		ID:            id,
		CustomerID:    customerID,
		ServiceType:   serviceType,
		State:         db.ServiceStateEnabled,
		Tier:          tier,
		IsUserEnabled: true,
	}
}

// BillingRecord returns a charge invoice fixture.
func BillingRecord(id int64, customerID int32, status db.InvoiceStatus, amountUsdCents int64) db.BillingRecord {
	return db.BillingRecord{
		ID:             id,
		CustomerID:     customerID,
		BillingType:    db.BillingTypePeriodic,
		Type:           db.InvoiceTypeCharge,
		Status:         status,
		AmountUsdCents: amountUsdCents,
		InvoiceNumber:  "INV-2025-06-0001",
	}
}

// Credit returns a credit fixture with the given remaining balance.
func Credit(customerID int32, remaining int64, expiresAt *time.Time) db.CustomerCredit {
	credit := db.CustomerCredit{
		CustomerID:              customerID,
		OriginalAmountUsdCents:  remaining,
		RemainingAmountUsdCents: remaining,
		Reason:                  db.CreditReasonPromo,
	}
	if expiresAt != nil {
		credit.ExpiresAt = Timestamp(*expiresAt)
	}
	return credit
}
