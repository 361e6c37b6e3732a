//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseNow  = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	baseSlot = time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
)

func TestNewSlot(t *testing.T) {
	t.Run("truncates minutes seconds and nanoseconds", func(t *testing.T) {
		raw := time.Date(2026, 3, 11, 14, 45, 33, 999, time.UTC)
		slot := appointment.NewSlot(raw)
		assert.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC), slot.Start())
	})

	t.Run("keeps already aligned start", func(t *testing.T) {
		slot := appointment.NewSlot(baseSlot)
		assert.Equal(t, baseSlot, slot.Start())
	})

	t.Run("normalizes to UTC before truncating", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		raw := time.Date(2026, 3, 11, 23, 45, 0, 0, loc)
		slot := appointment.NewSlot(raw)
		assert.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC), slot.Start())
	})

	t.Run("fractional-hour offset lands on the same hour grid", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		a := appointment.NewSlot(time.Date(2026, 3, 11, 5, 10, 0, 0, time.UTC))
		b := appointment.NewSlot(time.Date(2026, 3, 11, 11, 0, 0, 0, ist))

		assert.True(t, a.Equal(b))
		assert.Equal(t, time.Date(2026, 3, 11, 5, 0, 0, 0, time.UTC), b.Start())
	})
}

func TestSlotCancelableAt(t *testing.T) {
	slot := appointment.NewSlot(baseSlot)
	deadline := baseSlot.Add(-2 * time.Hour)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before deadline", deadline.Add(-3 * time.Hour), true},
		{"one second before deadline", deadline.Add(-time.Second), true},
		{"exactly at deadline", deadline, true},
		{"one second past deadline", deadline.Add(time.Second), false},
		{"at slot start", baseSlot, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slot.CancelableAt(tc.now))
		})
	}
}

func TestNewAppointment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		apt, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, apt)

		assert.NotEqual(t, uuid.Nil, apt.ID())
		assert.True(t, apt.IsActive())
		assert.Nil(t, apt.CanceledAt())
	})

	t.Run("client booking themselves is rejected", func(t *testing.T) {
		id := uuid.New()
		_, err := builder.NewAppointmentBuilder().
			WithClientID(id).
			WithProviderID(id).
			BuildDomain()
		assert.ErrorIs(t, err, appointment.ErrSelfBooking)
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		_, err := builder.NewAppointmentBuilder().
			WithNow(baseNow).
			WithSlotStart(baseNow.Add(-time.Hour)).
			BuildDomain()
		assert.ErrorIs(t, err, appointment.ErrPastSlot)
	})

	t.Run("slot starting exactly now is allowed", func(t *testing.T) {
		aligned := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		_, err := builder.NewAppointmentBuilder().
			WithNow(aligned).
			WithSlotStart(aligned).
			BuildDomain()
		assert.NoError(t, err)
	})

	t.Run("sub-hour input truncates before the past check", func(t *testing.T) {
		// 09:30 truncates to 09:00, which is before now.
		_, err := builder.NewAppointmentBuilder().
			WithNow(baseNow).
			WithSlotStart(baseNow).
			BuildDomain()
		assert.ErrorIs(t, err, appointment.ErrPastSlot)
	})
}

func TestCancelBy(t *testing.T) {
	newActive := func(t *testing.T) *appointment.Appointment {
		t.Helper()
		apt, err := builder.NewAppointmentBuilder().
			WithNow(baseNow).
			WithSlotStart(baseSlot).
			BuildDomain()
		require.NoError(t, err)
		return apt
	}

	t.Run("success sets canceledAt to now", func(t *testing.T) {
		apt := newActive(t)
		err := apt.CancelBy(apt.ClientID(), baseNow)
		require.NoError(t, err)
		require.NotNil(t, apt.CanceledAt())
		assert.Equal(t, baseNow, *apt.CanceledAt())
		assert.False(t, apt.IsActive())
	})

	t.Run("exactly at the two hour deadline succeeds", func(t *testing.T) {
		apt := newActive(t)
		err := apt.CancelBy(apt.ClientID(), baseSlot.Add(-2*time.Hour))
		assert.NoError(t, err)
	})

	t.Run("inside the two hour window fails", func(t *testing.T) {
		apt := newActive(t)
		err := apt.CancelBy(apt.ClientID(), baseSlot.Add(-2*time.Hour).Add(time.Second))
		assert.ErrorIs(t, err, appointment.ErrTooLateToCancel)
		assert.True(t, apt.IsActive())
	})

	t.Run("only the booking client may cancel", func(t *testing.T) {
		apt := newActive(t)
		err := apt.CancelBy(uuid.New(), baseNow)
		assert.ErrorIs(t, err, appointment.ErrNotOwner)
	})

	t.Run("provider may not cancel", func(t *testing.T) {
		apt := newActive(t)
		err := apt.CancelBy(apt.ProviderID(), baseNow)
		assert.ErrorIs(t, err, appointment.ErrNotOwner)
	})

	t.Run("second cancel fails without touching state", func(t *testing.T) {
		apt := newActive(t)
		require.NoError(t, apt.CancelBy(apt.ClientID(), baseNow))
		first := *apt.CanceledAt()

		err := apt.CancelBy(apt.ClientID(), baseNow.Add(time.Minute))
		assert.ErrorIs(t, err, appointment.ErrAlreadyCanceled)
		assert.Equal(t, first, *apt.CanceledAt())
	})

	t.Run("already canceled wins over ownership check", func(t *testing.T) {
		apt := newActive(t)
		require.NoError(t, apt.CancelBy(apt.ClientID(), baseNow))

		err := apt.CancelBy(uuid.New(), baseNow)
		assert.ErrorIs(t, err, appointment.ErrAlreadyCanceled)
	})
}
