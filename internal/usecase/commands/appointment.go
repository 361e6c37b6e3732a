package commands

import (
	"context"
	"errors"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/infra"
	"booking-api/internal/notify"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentCommands interface {
	// Create books an hour slot with a provider on behalf of clientID.
	// Validations run in order and short-circuit on the first failure.
	Create(ctx context.Context, clientID, providerID uuid.UUID, rawSlot time.Time) (*queries.AppointmentView, error)
	// Cancel marks an appointment canceled on behalf of requesterID
	// and enqueues the provider's cancellation mail.
	Cancel(ctx context.Context, requesterID, appointmentID uuid.UUID) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	uow          shared.UnitOfWork
	users        queries.UserReadStore
	appointments queries.AppointmentReadStore
	dispatcher   notify.Dispatcher
	clock        clock.Clock
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	users queries.UserReadStore,
	appointments queries.AppointmentReadStore,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:          uow,
		users:        users,
		appointments: appointments,
		dispatcher:   dispatcher,
		clock:        clk,
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, clientID, providerID uuid.UUID, rawSlot time.Time) (*queries.AppointmentView, error) {
	provider, err := c.users.FindByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAProvider
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !provider.IsProvider {
		return nil, errs.ErrNotAProvider
	}

	slot := appointment.NewSlot(rawSlot)
	apt, err := appointment.NewAppointment(clientID, providerID, slot, c.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSelfBooking):
			return nil, errs.ErrSelfBooking
		case errors.Is(err, appointment.ErrPastSlot):
			return nil, errs.ErrPastSlot
		default:
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}

	client, err := c.users.FindByID(ctx, clientID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Appointments().ActiveExists(ctx, tx.DB(), providerID, slot.Start())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return errs.ErrSlotTaken
		}

		createdID, err = tx.Appointments().Create(ctx, tx.DB(), apt)
		if err != nil {
			// Concurrent booking lost the race on the partial unique
			// index between the availability check and the insert.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrSlotConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// The notification is part of the booking's transaction: if it
		// cannot be recorded the booking does not happen.
		if err := c.dispatcher.NotifyBooking(ctx, tx, providerID, client.Name, slot); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.appointments.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, requesterID, appointmentID uuid.UUID) (*queries.AppointmentView, error) {
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Validate on the transaction's own snapshot so the decision
		// and the update see the same row.
		snap, err := tx.Appointments().FindByID(ctx, tx.DB(), appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrAppointmentNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := snap.ToDomain().CancelBy(requesterID, now); err != nil {
			switch {
			case errors.Is(err, appointment.ErrAlreadyCanceled):
				return errs.ErrAlreadyCanceled
			case errors.Is(err, appointment.ErrNotOwner):
				return errs.ErrNotOwner
			case errors.Is(err, appointment.ErrTooLateToCancel):
				return errs.ErrTooLateToCancel
			default:
				return errs.Mark(err, errs.ErrValidation)
			}
		}

		affected, err := tx.Appointments().MarkCanceled(ctx, tx.DB(), appointmentID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Zero rows after the snapshot checks means a concurrent
		// cancel won; exactly one requester may succeed.
		if affected == 0 {
			return errs.ErrAlreadyCanceled
		}

		provider, err := c.users.FindByID(ctx, snap.ProviderID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		client, err := c.users.FindByID(ctx, snap.ClientID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		job := notify.CancellationJob{
			AppointmentID: snap.ID,
			ProviderName:  provider.Name,
			ProviderEmail: provider.Email,
			ClientName:    client.Name,
			SlotStart:     snap.SlotStart,
			CanceledAt:    now,
		}
		if err := c.dispatcher.EnqueueCancellation(ctx, tx, job); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := c.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return updated, nil
}
