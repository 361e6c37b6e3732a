//go:build unit

package commands

import (
	"context"
	"time"

	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAppointmentCommands struct {
	mock.Mock
}

func (m *MockAppointmentCommands) Create(ctx context.Context, clientID, providerID uuid.UUID, rawSlot time.Time) (*queries.AppointmentView, error) {
	args := m.Called(ctx, clientID, providerID, rawSlot)
	if v := args.Get(0); v != nil {
		return v.(*queries.AppointmentView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentCommands) Cancel(ctx context.Context, requesterID, appointmentID uuid.UUID) (*queries.AppointmentView, error) {
	args := m.Called(ctx, requesterID, appointmentID)
	if v := args.Get(0); v != nil {
		return v.(*queries.AppointmentView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthCommands struct {
	mock.Mock
}

func (m *MockAuthCommands) Login(ctx context.Context, email, rawPassword string) (*commands.LoginResult, error) {
	args := m.Called(ctx, email, rawPassword)
	if v := args.Get(0); v != nil {
		return v.(*commands.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserCommands struct {
	mock.Mock
}

func (m *MockUserCommands) Register(ctx context.Context, input commands.RegisterInput) (*queries.UserView, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}
