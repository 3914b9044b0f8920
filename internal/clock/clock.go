// Package clock abstracts "now" so the billing engine can run against a
// persisted test clock that API handlers and the periodic worker agree on.
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/sealpoint/billing-api/internal/db"
	"github.com/sealpoint/billing-api/internal/logger"

	"go.uber.org/zap"
)

// Clock is the time source for every time-sensitive billing operation.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
	// Today returns the current calendar date as midnight UTC.
	Today() time.Time
	// AddDays returns Now shifted by n calendar days.
	AddDays(n int) time.Time
}

// WallClock is the production clock.
type WallClock struct{}

// NewWallClock creates a wall clock.
func NewWallClock() *WallClock {
	return &WallClock{}
}

func (c *WallClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *WallClock) Today() time.Time {
	return ToDate(time.Now().UTC())
}

func (c *WallClock) AddDays(n int) time.Time {
	return c.Now().AddDate(0, 0, n)
}

// MockTimeKey is the test_kv row holding the shared mock instant (RFC3339).
const MockTimeKey = "mock_time"

// MockClock reads the persisted mock instant from the shared test_kv table so
// separate processes observe the same time. Each call re-reads the store; the
// last good value is kept as a fallback if the store is briefly unreachable.
type MockClock struct {
	queries db.Querier

	mu   sync.Mutex
	last time.Time
}

// NewMockClock creates a clock backed by the shared key-value store.
func NewMockClock(queries db.Querier) *MockClock {
	return &MockClock{
		queries: queries,
		last:    time.Now().UTC(),
	}
}

func (c *MockClock) Now() time.Time {
	kv, err := c.queries.GetTestKv(context.Background(), MockTimeKey)
	if err == nil {
		if t, parseErr := time.Parse(time.RFC3339, kv.Value); parseErr == nil {
			c.mu.Lock()
			c.last = t.UTC()
			c.mu.Unlock()
			return t.UTC()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	logger.Log.Warn("mock clock falling back to last known time",
		zap.Time("last", c.last),
		zap.Error(err))
	return c.last
}

func (c *MockClock) Today() time.Time {
	return ToDate(c.Now())
}

func (c *MockClock) AddDays(n int) time.Time {
	return c.Now().AddDate(0, 0, n)
}

// Set persists the mock instant for all processes.
func (c *MockClock) Set(ctx context.Context, t time.Time) error {
	return c.queries.UpsertTestKv(ctx, db.UpsertTestKvParams{
		Key:   MockTimeKey,
		Value: t.UTC().Format(time.RFC3339),
	})
}

// FixedClock always returns the same instant. Used in unit tests.
type FixedClock struct {
	Time time.Time
}

// NewFixedClock creates a clock pinned at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Time: t.UTC()}
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

func (c *FixedClock) Today() time.Time {
	return ToDate(c.Time)
}

func (c *FixedClock) AddDays(n int) time.Time {
	return c.Time.AddDate(0, 0, n)
}
