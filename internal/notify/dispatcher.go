package notify

import (
	"context"
	"encoding/json"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const TopicAppointmentCanceled = "appointment_canceled"

// CancellationJob is the queued unit of work for a cancellation mail.
// It snapshots everything the worker needs so delivery never reads
// appointment state again.
type CancellationJob struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	ClientName    string    `json:"client_name"`
	SlotStart     time.Time `json:"slot_start"`
	CanceledAt    time.Time `json:"canceled_at"`
}

// Dispatcher owns the two write paths triggered by lifecycle
// transitions. Both run inside the caller's transaction: the booking
// notification is part of the booking's atomicity contract, and the
// enqueued job becomes visible to the worker only on commit.
type Dispatcher interface {
	NotifyBooking(ctx context.Context, tx shared.Tx, providerID uuid.UUID, clientName string, slot appointment.Slot) error
	EnqueueCancellation(ctx context.Context, tx shared.Tx, job CancellationJob) error
}

type dispatcherImpl struct {
	clock clock.Clock
}

func NewDispatcher(clk clock.Clock) Dispatcher {
	return &dispatcherImpl{clock: clk}
}

func (d *dispatcherImpl) NotifyBooking(ctx context.Context, tx shared.Tx, providerID uuid.UUID, clientName string, slot appointment.Slot) error {
	content := BookingNotificationContent(clientName, slot.Start())
	if err := tx.Notifications().Create(ctx, tx.DB(), providerID, content, d.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to record booking notification")
	}
	return nil
}

func (d *dispatcherImpl) EnqueueCancellation(ctx context.Context, tx shared.Tx, job CancellationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return errs.Wrap(err, "failed to encode cancellation job")
	}

	if err := tx.MailJobs().Enqueue(ctx, tx.DB(), TopicAppointmentCanceled, payload, d.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to enqueue cancellation job")
	}
	return nil
}
