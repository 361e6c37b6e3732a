//go:build unit || e2e

package builder

import (
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/usecase/queries"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ClientName   string
	ProviderID   uuid.UUID
	ProviderName string
	SlotStart    time.Time
	CanceledAt   *time.Time
	Now          time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		ClientName:   "Test Client",
		ProviderID:   uuid.New(),
		ProviderName: "Test Provider",
		SlotStart:    now.Add(24 * time.Hour).Truncate(time.Hour),
		Now:          now,
	}
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	slot := appointment.NewSlot(b.SlotStart)
	return appointment.NewAppointment(b.ClientID, b.ProviderID, slot, b.Now)
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:           b.ID,
		ClientID:     b.ClientID,
		ClientName:   b.ClientName,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		SlotStart:    b.SlotStart,
		CanceledAt:   b.CanceledAt,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:         b.ID,
		ClientID:   b.ClientID,
		ProviderID: b.ProviderID,
		SlotStart:  b.SlotStart,
		CanceledAt: b.CanceledAt,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}

func (b *AppointmentBuilder) WithClientID(id uuid.UUID) *AppointmentBuilder {
	b.ClientID = id
	return b
}

func (b *AppointmentBuilder) WithProviderID(id uuid.UUID) *AppointmentBuilder {
	b.ProviderID = id
	return b
}

func (b *AppointmentBuilder) WithSlotStart(t time.Time) *AppointmentBuilder {
	b.SlotStart = t
	return b
}

func (b *AppointmentBuilder) WithCanceledAt(t time.Time) *AppointmentBuilder {
	b.CanceledAt = &t
	return b
}

func (b *AppointmentBuilder) WithNow(t time.Time) *AppointmentBuilder {
	b.Now = t
	return b
}
