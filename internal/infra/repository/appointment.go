package repository

import (
	"context"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/infra"
	"booking-api/internal/infra/db"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, apt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO appointments (id, client_id, provider_id, slot_start)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, apt.ID(), apt.ClientID(), apt.ProviderID(), apt.Slot().Start()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return id, nil
}

func (r *AppointmentRepository) ActiveExists(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, slotStart time.Time) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE provider_id = $1
			  AND slot_start = $2
			  AND canceled_at IS NULL
		)
	`, providerID, slotStart).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}

	return exists, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var snap shared.AppointmentSnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, client_id, provider_id, slot_start, canceled_at, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id).Scan(
		&snap.ID, &snap.ClientID, &snap.ProviderID,
		&snap.SlotStart, &snap.CanceledAt, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return &snap, nil
}

func (r *AppointmentRepository) MarkCanceled(ctx context.Context, dbtx db.DBTX, id uuid.UUID, canceledAt time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE appointments
		SET canceled_at = $2,
		    updated_at = $2
		WHERE id = $1
		  AND canceled_at IS NULL
	`, id, canceledAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel appointment", err)
	}

	return tag.RowsAffected(), nil
}
