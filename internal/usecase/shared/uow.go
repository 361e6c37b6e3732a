package shared

import (
	"context"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/domain/user"
	"booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Users() UserRepository
	Notifications() NotificationRepository
	MailJobs() MailJobRepository
	DB() db.DBTX
}

// AppointmentSnapshot is the minimal read used by command validation.
type AppointmentSnapshot struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	SlotStart  time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *AppointmentSnapshot) ToDomain() *appointment.Appointment {
	return appointment.ReconstructAppointment(
		s.ID, s.ClientID, s.ProviderID,
		appointment.ReconstructSlot(s.SlotStart),
		s.CanceledAt, s.CreatedAt, s.UpdatedAt,
	)
}

type AppointmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, apt *appointment.Appointment) (uuid.UUID, error)
	// ActiveExists reports whether an active appointment occupies the
	// provider/slot pair. Advisory only: the partial unique index is
	// the authoritative guard under concurrency.
	ActiveExists(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, slotStart time.Time) (bool, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*AppointmentSnapshot, error)
	// MarkCanceled sets canceled_at only when still null and returns
	// the affected row count, so exactly one concurrent cancel wins.
	MarkCanceled(ctx context.Context, dbtx db.DBTX, id uuid.UUID, canceledAt time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, content string, createdAt time.Time) error
}

type MailJobRepository interface {
	Enqueue(ctx context.Context, dbtx db.DBTX, topic string, payload []byte, runAt time.Time) error
}
