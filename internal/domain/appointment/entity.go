package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfBooking     = errors.New("client and provider must differ")
	ErrPastSlot        = errors.New("slot start is in the past")
	ErrAlreadyCanceled = errors.New("appointment is already canceled")
	ErrNotOwner        = errors.New("only the booking client may cancel")
	ErrTooLateToCancel = errors.New("cancellation window has closed")
)

// Appointment is the source of truth of the booking lifecycle.
// Notifications and mail jobs are derived projections and never feed
// back into it. Cancellation is terminal: canceledAt is set once and
// never cleared.
type Appointment struct {
	id         uuid.UUID
	clientID   uuid.UUID
	providerID uuid.UUID
	slot       Slot
	canceledAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppointment(clientID, providerID uuid.UUID, slot Slot, now time.Time) (*Appointment, error) {
	if clientID == providerID {
		return nil, ErrSelfBooking
	}
	if slot.InPast(now) {
		return nil, ErrPastSlot
	}

	return &Appointment{
		id:         uuid.New(),
		clientID:   clientID,
		providerID: providerID,
		slot:       slot,
	}, nil
}

func ReconstructAppointment(id, clientID, providerID uuid.UUID, slot Slot, canceledAt *time.Time, createdAt, updatedAt time.Time) *Appointment {
	return &Appointment{
		id:         id,
		clientID:   clientID,
		providerID: providerID,
		slot:       slot,
		canceledAt: canceledAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CancelBy applies the cancellation rules in order: terminal state,
// ownership, then the cutoff. On success canceledAt is set to now.
func (a *Appointment) CancelBy(requesterID uuid.UUID, now time.Time) error {
	if a.canceledAt != nil {
		return ErrAlreadyCanceled
	}
	if a.clientID != requesterID {
		return ErrNotOwner
	}
	if !a.slot.CancelableAt(now) {
		return ErrTooLateToCancel
	}

	t := now
	a.canceledAt = &t
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.canceledAt == nil
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) ClientID() uuid.UUID    { return a.clientID }
func (a *Appointment) ProviderID() uuid.UUID  { return a.providerID }
func (a *Appointment) Slot() Slot             { return a.slot }
func (a *Appointment) CanceledAt() *time.Time { return a.canceledAt }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }
