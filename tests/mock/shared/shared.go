//go:build unit

package shared

import (
	"context"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/domain/user"
	"booking-api/internal/infra/db"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// FakeUnitOfWork runs the transaction function against a FakeTx,
// without a database. Commit/rollback semantics are the caller's
// return value: an error from fn is the error from Within.
type FakeUnitOfWork struct {
	Tx *FakeTx
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{Tx: NewFakeTx()}
}

func (u *FakeUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *FakeUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type FakeTx struct {
	AppointmentsMock  *MockAppointmentRepository
	UsersMock         *MockUserRepository
	NotificationsMock *MockNotificationRepository
	MailJobsMock      *MockMailJobRepository
}

func NewFakeTx() *FakeTx {
	return &FakeTx{
		AppointmentsMock:  &MockAppointmentRepository{},
		UsersMock:         &MockUserRepository{},
		NotificationsMock: &MockNotificationRepository{},
		MailJobsMock:      &MockMailJobRepository{},
	}
}

func (t *FakeTx) Appointments() shared.AppointmentRepository  { return t.AppointmentsMock }
func (t *FakeTx) Users() shared.UserRepository                { return t.UsersMock }
func (t *FakeTx) Notifications() shared.NotificationRepository { return t.NotificationsMock }
func (t *FakeTx) MailJobs() shared.MailJobRepository          { return t.MailJobsMock }
func (t *FakeTx) DB() db.DBTX                                 { return nil }

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, apt *appointment.Appointment) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, apt)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAppointmentRepository) ActiveExists(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, slotStart time.Time) (bool, error) {
	args := m.Called(ctx, dbtx, providerID, slotStart)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	args := m.Called(ctx, dbtx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.AppointmentSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) MarkCanceled(ctx context.Context, dbtx db.DBTX, id uuid.UUID, canceledAt time.Time) (int64, error) {
	args := m.Called(ctx, dbtx, id, canceledAt)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, dbtx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, content string, createdAt time.Time) error {
	args := m.Called(ctx, dbtx, userID, content, createdAt)
	return args.Error(0)
}

type MockMailJobRepository struct {
	mock.Mock
}

func (m *MockMailJobRepository) Enqueue(ctx context.Context, dbtx db.DBTX, topic string, payload []byte, runAt time.Time) error {
	args := m.Called(ctx, dbtx, topic, payload, runAt)
	return args.Error(0)
}
