package queries

import (
	"context"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// ScheduleQueries is the provider-facing read path: the day's active
// appointments, slot-ordered. Pure query, no mutation.
type ScheduleQueries interface {
	ListDay(ctx context.Context, requesterID uuid.UUID, day time.Time) ([]*ScheduleItem, error)
}

type scheduleQueriesImpl struct {
	appointments AppointmentReadStore
	users        UserReadStore
}

func NewScheduleQueries(appointments AppointmentReadStore, users UserReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		appointments: appointments,
		users:        users,
	}
}

func (q *scheduleQueriesImpl) ListDay(ctx context.Context, requesterID uuid.UUID, day time.Time) ([]*ScheduleItem, error) {
	requester, err := q.users.FindByID(ctx, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAProvider
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !requester.IsProvider {
		return nil, errs.ErrNotAProvider
	}

	from, to := clock.DayBounds(day)
	items, err := q.appointments.FindProviderDay(ctx, requesterID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return items, nil
}
