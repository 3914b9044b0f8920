package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/types/business"

	"go.uber.org/zap"
)

// IdempotencySweepAge is how long cached operation results are retained.
const IdempotencySweepAge = 90 * 24 * time.Hour

// MonthlyIdempotencyKey identifies a customer's monthly billing block.
func MonthlyIdempotencyKey(customerID int32, t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("monthly-%d-%04d-%02d", customerID, u.Year(), int(u.Month()))
}

// UsageIdempotencyKey identifies one authoritative usage fold.
func UsageIdempotencyKey(customerID int32, t time.Time) string {
	return fmt.Sprintf("usage-%d-%d", customerID, t.UTC().Unix())
}

// idempotentEnvelope is the persisted outcome of an attempted operation.
// Both success and typed validation failures are cached: the record means
// "this logical slot was attempted", not "it succeeded".
type idempotentEnvelope struct {
	OK              bool                      `json:"ok"`
	Result          json.RawMessage           `json:"result,omitempty"`
	ValidationError *business.ValidationError `json:"validation_error,omitempty"`
}

// WithIdempotency runs op at most once per key. On a cache hit the stored
// outcome is replayed (cached=true) without invoking op. Transient errors
// (anything that is not a ValidationError) bubble out before any record is
// written so the operation can retry on the next tick.
func WithIdempotency(ctx context.Context, queries db.Querier, key string, invoiceID int64, op func() (interface{}, error)) (json.RawMessage, bool, error) {
	record, err := queries.GetIdempotencyRecord(ctx, key)
	if err == nil {
		var envelope idempotentEnvelope
		if unmarshalErr := json.Unmarshal(record.Response, &envelope); unmarshalErr != nil {
			return nil, true, business.NewSystemError("corrupt idempotency record", unmarshalErr)
		}
		if !envelope.OK {
			return nil, true, envelope.ValidationError
		}
		return envelope.Result, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, business.NewSystemError("failed to look up idempotency key", err)
	}

	result, opErr := op()
	if opErr != nil {
		var ve *business.ValidationError
		if !errors.As(opErr, &ve) {
			// Transient: leave no record so the next tick retries.
			return nil, false, opErr
		}

		response, marshalErr := json.Marshal(idempotentEnvelope{OK: false, ValidationError: ve})
		if marshalErr != nil {
			return nil, false, business.NewSystemError("failed to marshal idempotency failure", marshalErr)
		}
		if storeErr := storeIdempotencyRecord(ctx, queries, key, invoiceID, response); storeErr != nil {
			return nil, false, storeErr
		}
		return nil, false, ve
	}

	resultJSON, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		return nil, false, business.NewSystemError("failed to marshal idempotency result", marshalErr)
	}
	response, marshalErr := json.Marshal(idempotentEnvelope{OK: true, Result: resultJSON})
	if marshalErr != nil {
		return nil, false, business.NewSystemError("failed to marshal idempotency envelope", marshalErr)
	}
	if storeErr := storeIdempotencyRecord(ctx, queries, key, invoiceID, response); storeErr != nil {
		return nil, false, storeErr
	}
	return resultJSON, false, nil
}

func storeIdempotencyRecord(ctx context.Context, queries db.Querier, key string, invoiceID int64, response []byte) error {
	params := db.CreateIdempotencyRecordParams{
		IdempotencyKey: key,
		Response:       response,
	}
	if invoiceID > 0 {
		params.BillingRecordID = int8ToPgtype(invoiceID)
	}
	if err := queries.CreateIdempotencyRecord(ctx, params); err != nil {
		return business.NewSystemError("failed to store idempotency record", err)
	}
	return nil
}

// SweepIdempotencyRecords deletes cached outcomes older than the retention
// window. Called from the periodic job's housekeeping phase.
func SweepIdempotencyRecords(ctx context.Context, queries db.Querier, now time.Time) (int64, error) {
	cutoff := pgtype.Timestamptz{Time: now.Add(-IdempotencySweepAge), Valid: true}
	deleted, err := queries.DeleteIdempotencyRecordsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep idempotency records: %w", err)
	}
	if deleted > 0 {
		logger.Log.Info("swept idempotency records", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}
