package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sealpoint/billing-api/internal/clock"
	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/mocks"
)

func init() {
	logger.InitLogger("test")
}

func TestMockClock_ReadsPersistedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	querier := mocks.NewMockQuerier(ctrl)

	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	querier.EXPECT().
		GetTestKv(gomock.Any(), clock.MockTimeKey).
		Return(db.TestKv{Key: clock.MockTimeKey, Value: at.Format(time.RFC3339)}, nil).
		Times(2)

	clk := clock.NewMockClock(querier)
	assert.Equal(t, at, clk.Now())
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), clk.Today())
}

func TestMockClock_SetPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	querier := mocks.NewMockQuerier(ctrl)

	at := time.Date(2025, 7, 1, 0, 5, 0, 0, time.UTC)
	querier.EXPECT().
		UpsertTestKv(gomock.Any(), db.UpsertTestKvParams{
			Key:   clock.MockTimeKey,
			Value: at.Format(time.RFC3339),
		}).
		Return(nil)

	clk := clock.NewMockClock(querier)
	require.NoError(t, clk.Set(context.Background(), at))
}

func TestMockClock_FallsBackToLastKnownTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	querier := mocks.NewMockQuerier(ctrl)

	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	querier.EXPECT().
		GetTestKv(gomock.Any(), clock.MockTimeKey).
		Return(db.TestKv{Key: clock.MockTimeKey, Value: at.Format(time.RFC3339)}, nil)
	querier.EXPECT().
		GetTestKv(gomock.Any(), clock.MockTimeKey).
		Return(db.TestKv{}, context.DeadlineExceeded)

	clk := clock.NewMockClock(querier)
	assert.Equal(t, at, clk.Now())
	// Store unreachable: the last good value is reused.
	assert.Equal(t, at, clk.Now())
}
