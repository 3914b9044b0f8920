package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/helpers"
	"github.com/sealpoint/billing-api/internal/types/business"
)

// InvoiceService owns the billing record lifecycle: the single open DRAFT per
// customer, immediate invoices, and the terminal transitions.
type InvoiceService struct {
	logger *zap.Logger
}

// NewInvoiceService creates an invoice service.
func NewInvoiceService(logger *zap.Logger) *InvoiceService {
	return &InvoiceService{logger: logger}
}

// LineItemParams describes one line item of a new invoice.
type LineItemParams struct {
	ItemType          db.LineItemType
	ServiceType       db.ServiceType
	Quantity          int64
	UnitPriceUsdCents int64
	AmountUsdCents    int64
	Description       string
}

// CreateInvoiceParams describes a new immediate invoice.
type CreateInvoiceParams struct {
	CustomerID         int32
	Type               db.InvoiceType
	AmountUsdCents     int64
	BillingPeriodStart time.Time
	BillingPeriodEnd   time.Time
	DueDate            time.Time
	LineItems          []LineItemParams
}

// GetOrCreateDraft returns the customer's sole DRAFT invoice, creating it if
// absent. A fresh DRAFT covers the next calendar month with due date on its
// first day. Must run under the customer lock.
func (s *InvoiceService) GetOrCreateDraft(ctx context.Context, queries db.Querier, customerID int32, clk clock.Clock) (db.BillingRecord, error) {
	draft, err := queries.GetDraftInvoice(ctx, customerID)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.BillingRecord{}, business.NewSystemError("failed to load draft invoice", err)
	}

	periodStart := clock.FirstOfNextMonth(clk.Today())
	periodEnd := clock.LastDayOfMonth(periodStart)

	number, err := s.generateInvoiceNumber(ctx, queries, periodStart)
	if err != nil {
		return db.BillingRecord{}, err
	}

	draft, err = queries.CreateBillingRecord(ctx, db.CreateBillingRecordParams{
		CustomerID:         customerID,
		BillingType:        db.BillingTypePeriodic,
		Type:               db.InvoiceTypeCharge,
		Status:             db.InvoiceStatusDraft,
		AmountUsdCents:     0,
		BillingPeriodStart: dateToPgtype(periodStart),
		BillingPeriodEnd:   dateToPgtype(periodEnd),
		DueDate:            dateToPgtype(periodStart),
		InvoiceNumber:      number,
	})
	if err != nil {
		return db.BillingRecord{}, business.NewSystemError("failed to create draft invoice", err)
	}

	s.logger.Info("created draft invoice",
		zap.Int32("customer_id", customerID),
		zap.Int64("invoice_id", draft.ID),
		zap.String("invoice_number", draft.InvoiceNumber))
	return draft, nil
}

// generateInvoiceNumber produces INV-YYYY-MM-NNNN with NNNN sequential within
// the calendar month across the whole database.
func (s *InvoiceService) generateInvoiceNumber(ctx context.Context, queries db.Querier, t time.Time) (string, error) {
	u := t.UTC()
	prefix := fmt.Sprintf("INV-%04d-%02d", u.Year(), int(u.Month()))
	count, err := queries.CountInvoicesWithPrefix(ctx, prefix)
	if err != nil {
		return "", business.NewSystemError("failed to count invoices for numbering", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, count+1), nil
}

// UpdateDraftAmount sets the DRAFT total.
func (s *InvoiceService) UpdateDraftAmount(ctx context.Context, queries db.Querier, draftID, amountUsdCents int64) error {
	if err := queries.UpdateDraftAmount(ctx, db.UpdateDraftAmountParams{
		ID:             draftID,
		AmountUsdCents: amountUsdCents,
	}); err != nil {
		return business.NewSystemError("failed to update draft amount", err)
	}
	return nil
}

// TransitionDraftToPending makes the DRAFT chargeable.
func (s *InvoiceService) TransitionDraftToPending(ctx context.Context, queries db.Querier, draftID int64) error {
	if err := queries.UpdateBillingRecordStatus(ctx, db.UpdateBillingRecordStatusParams{
		ID:     draftID,
		Status: db.InvoiceStatusPending,
	}); err != nil {
		return business.NewSystemError("failed to transition draft to pending", err)
	}
	return nil
}

// CreateImmediateInvoice creates a pending immediate invoice with its line
// items atomically inside the caller's lock-held transaction. Used for
// subscribe and the single-phase upgrade path.
func (s *InvoiceService) CreateImmediateInvoice(ctx context.Context, queries db.Querier, clk clock.Clock, params CreateInvoiceParams) (db.BillingRecord, error) {
	number, err := s.generateInvoiceNumber(ctx, queries, clk.Now())
	if err != nil {
		return db.BillingRecord{}, err
	}

	invoiceType := params.Type
	if invoiceType == "" {
		invoiceType = db.InvoiceTypeCharge
	}

	invoice, err := queries.CreateBillingRecord(ctx, db.CreateBillingRecordParams{
		CustomerID:         params.CustomerID,
		BillingType:        db.BillingTypeImmediate,
		Type:               invoiceType,
		Status:             db.InvoiceStatusPending,
		AmountUsdCents:     params.AmountUsdCents,
		BillingPeriodStart: dateToPgtype(params.BillingPeriodStart),
		BillingPeriodEnd:   dateToPgtype(params.BillingPeriodEnd),
		DueDate:            dateToPgtype(params.DueDate),
		InvoiceNumber:      number,
	})
	if err != nil {
		return db.BillingRecord{}, business.NewSystemError("failed to create immediate invoice", err)
	}

	for _, item := range params.LineItems {
		if _, err := queries.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
			InvoiceID:         invoice.ID,
			ItemType:          item.ItemType,
			ServiceType:       item.ServiceType,
			Quantity:          item.Quantity,
			UnitPriceUsdCents: item.UnitPriceUsdCents,
			AmountUsdCents:    item.AmountUsdCents,
			Description:       textToPgtype(item.Description),
		}); err != nil {
			return db.BillingRecord{}, business.NewSystemError("failed to create invoice line item", err)
		}
	}

	return invoice, nil
}

// CreatePendingInvoiceCommitted creates the same shape as
// CreateImmediateInvoice but commits in its own transaction, outside any
// customer lock. This is the durable middle step of the two-phase upgrade:
// if the process dies before phase two, reconciliation finds this record.
func (s *InvoiceService) CreatePendingInvoiceCommitted(ctx context.Context, pool *pgxpool.Pool, clk clock.Clock, params CreateInvoiceParams) (db.BillingRecord, error) {
	var invoice db.BillingRecord
	err := helpers.WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		var txErr error
		invoice, txErr = s.CreateImmediateInvoice(ctx, db.New(tx), clk, params)
		return txErr
	})
	if err != nil {
		return db.BillingRecord{}, err
	}
	return invoice, nil
}

// VoidInvoice marks an invoice voided with a reason. Terminal.
func (s *InvoiceService) VoidInvoice(ctx context.Context, queries db.Querier, invoiceID int64, reason string) error {
	if err := queries.VoidInvoice(ctx, db.VoidInvoiceParams{
		ID:            invoiceID,
		FailureReason: textToPgtype(reason),
	}); err != nil {
		return business.NewSystemError("failed to void invoice", err)
	}
	s.logger.Info("voided invoice",
		zap.Int64("invoice_id", invoiceID),
		zap.String("reason", reason))
	return nil
}

// DeleteUnpaidInvoice physically removes an immediate invoice that was never
// charged, together with its line items. Used when the business abandons the
// attempt (unpaid subscription cancelled, failed or retried upgrade).
func (s *InvoiceService) DeleteUnpaidInvoice(ctx context.Context, queries db.Querier, invoiceID int64) error {
	invoice, err := queries.GetBillingRecord(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return business.NewSystemError("failed to load invoice for deletion", err)
	}

	if invoice.BillingType != db.BillingTypeImmediate {
		return &business.ValidationError{
			Code:    "CANNOT_DELETE_PERIODIC_INVOICE",
			Message: fmt.Sprintf("invoice %d is periodic and cannot be deleted", invoiceID),
		}
	}
	if invoice.Status == db.InvoiceStatusPaid || invoice.AmountPaidUsdCents > 0 {
		return &business.ValidationError{
			Code:    "CANNOT_DELETE_PAID_INVOICE",
			Message: fmt.Sprintf("invoice %d has recorded payments and cannot be deleted", invoiceID),
		}
	}

	if err := queries.DeleteInvoiceLineItems(ctx, invoiceID); err != nil {
		return business.NewSystemError("failed to delete invoice line items", err)
	}
	if err := queries.DeleteBillingRecord(ctx, invoiceID); err != nil {
		return business.NewSystemError("failed to delete invoice", err)
	}

	s.logger.Info("deleted unpaid invoice", zap.Int64("invoice_id", invoiceID))
	return nil
}

// MarkInvoicePaid records the terminal paid state.
func (s *InvoiceService) MarkInvoicePaid(ctx context.Context, queries db.Querier, invoiceID, amountUsdCents int64, txDigest string) error {
	if err := queries.MarkInvoicePaid(ctx, db.MarkInvoicePaidParams{
		ID:                 invoiceID,
		AmountPaidUsdCents: amountUsdCents,
		TxDigest:           textToPgtype(txDigest),
	}); err != nil {
		return business.NewSystemError("failed to mark invoice paid", err)
	}
	return nil
}
