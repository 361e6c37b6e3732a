//go:build unit

package notify

import (
	"context"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/notify"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) NotifyBooking(ctx context.Context, tx shared.Tx, providerID uuid.UUID, clientName string, slot appointment.Slot) error {
	args := m.Called(ctx, tx, providerID, clientName, slot)
	return args.Error(0)
}

func (m *MockDispatcher) EnqueueCancellation(ctx context.Context, tx shared.Tx, job notify.CancellationJob) error {
	args := m.Called(ctx, tx, job)
	return args.Error(0)
}
