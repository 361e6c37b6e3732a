package queries

import (
	"context"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const clientPageSize = 20

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindActiveByClient(ctx context.Context, clientID uuid.UUID, limit, offset int32) ([]*ClientAppointmentItem, error)
	FindProviderDay(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*ScheduleItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	// ListByClient pages through the requester's active appointments,
	// ordered by slot start ascending, twenty per page.
	ListByClient(ctx context.Context, clientID uuid.UUID, page int) ([]*ClientAppointmentItem, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, page int) ([]*ClientAppointmentItem, error) {
	if page < 1 {
		page = 1
	}

	offset := int32((page - 1) * clientPageSize)
	items, err := q.readStore.FindActiveByClient(ctx, clientID, clientPageSize, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
