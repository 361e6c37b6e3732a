package appointment

import (
	"time"

	"booking-api/internal/pkg/clock"
)

// CancelWindow is the minimum lead before the slot start at which a
// client may still cancel.
const CancelWindow = 2 * time.Hour

// Slot is an hour-aligned instant identifying a bookable unit for a
// provider. Any sub-hour precision of the input is dropped.
type Slot struct {
	start time.Time
}

// NewSlot normalizes to UTC before truncating, so inputs carrying a
// fractional-hour offset still land on the same hour grid as every
// other booking for that provider.
func NewSlot(raw time.Time) Slot {
	return Slot{start: clock.StartOfHour(raw.UTC())}
}

// ReconstructSlot trusts an already hour-aligned value from the store.
func ReconstructSlot(start time.Time) Slot {
	return Slot{start: start}
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) InPast(now time.Time) bool {
	return s.start.Before(now)
}

// CancelDeadline is the latest moment at which cancellation is allowed.
func (s Slot) CancelDeadline() time.Time {
	return s.start.Add(-CancelWindow)
}

// CancelableAt reports whether a cancellation at now is still inside
// the window. Exactly at the deadline is allowed.
func (s Slot) CancelableAt(now time.Time) bool {
	return !s.CancelDeadline().Before(now)
}

func (s Slot) Equal(other Slot) bool {
	return s.start.Equal(other.start)
}
