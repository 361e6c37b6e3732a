package readstore

import (
	"context"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/infra/db"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var view queries.AppointmentView
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.client_id, c.name, a.provider_id, p.name,
		       a.slot_start, a.canceled_at, a.created_at, a.updated_at
		FROM appointments a
		JOIN users c ON c.id = a.client_id
		JOIN users p ON p.id = a.provider_id
		WHERE a.id = $1
	`, id).Scan(
		&view.ID, &view.ClientID, &view.ClientName, &view.ProviderID, &view.ProviderName,
		&view.SlotStart, &view.CanceledAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return &view, nil
}

func (r *AppointmentReadStore) FindActiveByClient(ctx context.Context, clientID uuid.UUID, limit, offset int32) ([]*queries.ClientAppointmentItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.provider_id, p.name, a.slot_start
		FROM appointments a
		JOIN users p ON p.id = a.provider_id
		WHERE a.client_id = $1
		  AND a.canceled_at IS NULL
		ORDER BY a.slot_start
		LIMIT $2 OFFSET $3
	`, clientID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client appointments", err)
	}
	defer rows.Close()

	var items []*queries.ClientAppointmentItem
	for rows.Next() {
		var item queries.ClientAppointmentItem
		if err := rows.Scan(&item.ID, &item.ProviderID, &item.ProviderName, &item.SlotStart); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client appointment", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client appointments", err)
	}

	return items, nil
}

func (r *AppointmentReadStore) FindProviderDay(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*queries.ScheduleItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.client_id, c.name, a.slot_start
		FROM appointments a
		JOIN users c ON c.id = a.client_id
		WHERE a.provider_id = $1
		  AND a.canceled_at IS NULL
		  AND a.slot_start >= $2
		  AND a.slot_start < $3
		ORDER BY a.slot_start
	`, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider schedule", err)
	}
	defer rows.Close()

	var items []*queries.ScheduleItem
	for rows.Next() {
		var item queries.ScheduleItem
		if err := rows.Scan(&item.ID, &item.ClientID, &item.ClientName, &item.SlotStart); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read provider schedule", err)
	}

	return items, nil
}
