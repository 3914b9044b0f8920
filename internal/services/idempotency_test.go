package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/services"
	"github.com/sealpoint/billing-api/internal/testutil"
	"github.com/sealpoint/billing-api/internal/types/business"
)

func TestMonthlyIdempotencyKey(t *testing.T) {
	key := services.MonthlyIdempotencyKey(7, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "monthly-7-2025-06", key)
}

func TestWithIdempotency_FirstRunStoresResult(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)

	mockDB.Querier.EXPECT().GetIdempotencyRecord(gomock.Any(), "k1").Return(db.IdempotencyRecord{}, pgx.ErrNoRows)
	mockDB.Querier.EXPECT().
		CreateIdempotencyRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateIdempotencyRecordParams) error {
			assert.Equal(t, "k1", arg.IdempotencyKey)
			assert.Contains(t, string(arg.Response), `"ok":true`)
			return nil
		})

	invoked := 0
	result, cached, err := services.WithIdempotency(context.Background(), mockDB.Querier, "k1", 0, func() (interface{}, error) {
		invoked++
		return map[string]int{"paid": 2900}, nil
	})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, invoked)
	assert.JSONEq(t, `{"paid":2900}`, string(result))
}

func TestWithIdempotency_HitReplaysWithoutInvokingOp(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)

	stored := `{"ok":true,"result":{"paid":2900}}`
	mockDB.Querier.EXPECT().GetIdempotencyRecord(gomock.Any(), "k1").Return(db.IdempotencyRecord{
		IdempotencyKey: "k1",
		Response:       json.RawMessage(stored),
	}, nil)

	invoked := 0
	result, cached, err := services.WithIdempotency(context.Background(), mockDB.Querier, "k1", 0, func() (interface{}, error) {
		invoked++
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Zero(t, invoked)
	assert.JSONEq(t, `{"paid":2900}`, string(result))
}

func TestWithIdempotency_ValidationFailureIsCached(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)

	mockDB.Querier.EXPECT().GetIdempotencyRecord(gomock.Any(), "k1").Return(db.IdempotencyRecord{}, pgx.ErrNoRows)
	var storedResponse []byte
	mockDB.Querier.EXPECT().
		CreateIdempotencyRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateIdempotencyRecordParams) error {
			storedResponse = arg.Response
			return nil
		})

	ve := &business.ValidationError{Code: "NEGATIVE_AMOUNT", Message: "bad data"}
	_, cached, err := services.WithIdempotency(context.Background(), mockDB.Querier, "k1", 0, func() (interface{}, error) {
		return nil, ve
	})
	assert.False(t, cached)
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, string(storedResponse), `"ok":false`)

	// A second call replays the cached failure without running the op.
	mockDB.Querier.EXPECT().GetIdempotencyRecord(gomock.Any(), "k1").Return(db.IdempotencyRecord{
		IdempotencyKey: "k1",
		Response:       storedResponse,
	}, nil)
	_, cached, err = services.WithIdempotency(context.Background(), mockDB.Querier, "k1", 0, func() (interface{}, error) {
		t.Fatal("op must not run on a cache hit")
		return nil, nil
	})
	assert.True(t, cached)
	assert.True(t, business.IsValidationError(err))
}

func TestWithIdempotency_TransientErrorIsNotCached(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)

	mockDB.Querier.EXPECT().GetIdempotencyRecord(gomock.Any(), "k1").Return(db.IdempotencyRecord{}, pgx.ErrNoRows)
	// No CreateIdempotencyRecord expectation: storing would fail the test.

	transient := business.NewSystemError("database hiccup", errors.New("timeout"))
	_, cached, err := services.WithIdempotency(context.Background(), mockDB.Querier, "k1", 0, func() (interface{}, error) {
		return nil, transient
	})
	assert.False(t, cached)
	assert.True(t, business.IsSystemError(err))
}
