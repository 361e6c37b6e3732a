//go:build unit

package queries

import (
	"context"
	"time"

	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAppointmentQueries struct {
	mock.Mock
}

func (m *MockAppointmentQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.AppointmentView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentQueries) ListByClient(ctx context.Context, clientID uuid.UUID, page int) ([]*queries.ClientAppointmentItem, error) {
	args := m.Called(ctx, clientID, page)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ClientAppointmentItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockScheduleQueries struct {
	mock.Mock
}

func (m *MockScheduleQueries) ListDay(ctx context.Context, requesterID uuid.UUID, day time.Time) ([]*queries.ScheduleItem, error) {
	args := m.Called(ctx, requesterID, day)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ScheduleItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

type MockAppointmentReadStore struct {
	mock.Mock
}

func (m *MockAppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.AppointmentView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentReadStore) FindActiveByClient(ctx context.Context, clientID uuid.UUID, limit, offset int32) ([]*queries.ClientAppointmentItem, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ClientAppointmentItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentReadStore) FindProviderDay(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*queries.ScheduleItem, error) {
	args := m.Called(ctx, providerID, from, to)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ScheduleItem), args.Error(1)
	}
	return nil, args.Error(1)
}
