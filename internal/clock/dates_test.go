package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sealpoint/billing-api/internal/clock"
)

func TestFirstOfNextMonth(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{
			name:     "mid month",
			in:       time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last day of month still points to next month",
			in:       time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls the year",
			in:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first of month points to the following month",
			in:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clock.FirstOfNextMonth(tt.in))
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		clock.LastDayOfMonth(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		clock.LastDayOfMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		clock.LastDayOfMonth(time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, clock.DaysInMonth(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, clock.DaysInMonth(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, clock.DaysInMonth(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, clock.DaysInMonth(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestDaysRemainingInMonth(t *testing.T) {
	// Today counts as remaining.
	assert.Equal(t, 31, clock.DaysRemainingInMonth(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, clock.DaysRemainingInMonth(time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 17, clock.DaysRemainingInMonth(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestToDate(t *testing.T) {
	in := time.Date(2025, 6, 15, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), clock.ToDate(in))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	clk := clock.NewFixedClock(at)

	assert.Equal(t, at, clk.Now())
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), clk.Today())
	assert.Equal(t, at.AddDate(0, 0, 14), clk.AddDays(14))
}
