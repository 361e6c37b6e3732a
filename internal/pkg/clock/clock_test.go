//go:build unit

package clock_test

import (
	"testing"
	"time"

	"booking-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestStartOfHour(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	in := time.Date(2026, 3, 11, 14, 45, 33, 999, loc)

	got := clock.StartOfHour(in)
	assert.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDayBounds(t *testing.T) {
	t.Run("mid day", func(t *testing.T) {
		from, to := clock.DayBounds(time.Date(2026, 3, 11, 15, 42, 7, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("month boundary", func(t *testing.T) {
		from, to := clock.DayBounds(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC))
		assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)
	})
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.Add(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
