//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"
	"booking-api/tests/common/builder"
	queriesmock "booking-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleQueries_ListDay(t *testing.T) {
	day := time.Date(2026, 3, 11, 15, 42, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	newSut := func() (queries.ScheduleQueries, *queriesmock.MockAppointmentReadStore, *queriesmock.MockUserReadStore) {
		apts := &queriesmock.MockAppointmentReadStore{}
		users := &queriesmock.MockUserReadStore{}
		return queries.NewScheduleQueries(apts, users), apts, users
	}

	t.Run("provider sees the day bounded at midnight", func(t *testing.T) {
		sut, apts, users := newSut()
		provider := builder.NewProviderBuilder()
		users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)

		items := []*queries.ScheduleItem{
			{ID: uuid.New(), ClientID: uuid.New(), ClientName: "A", SlotStart: dayStart.Add(9 * time.Hour)},
			{ID: uuid.New(), ClientID: uuid.New(), ClientName: "B", SlotStart: dayStart.Add(14 * time.Hour)},
		}
		apts.On("FindProviderDay", mock.Anything, provider.ID, dayStart, dayEnd).Return(items, nil)

		got, err := sut.ListDay(context.Background(), provider.ID, day)
		require.NoError(t, err)
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("schedule mismatch (-want +got):\n%s", diff)
		}
		apts.AssertExpectations(t)
	})

	t.Run("empty day returns empty list", func(t *testing.T) {
		sut, apts, users := newSut()
		provider := builder.NewProviderBuilder()
		users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)
		apts.On("FindProviderDay", mock.Anything, provider.ID, dayStart, dayEnd).
			Return([]*queries.ScheduleItem{}, nil)

		got, err := sut.ListDay(context.Background(), provider.ID, day)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non provider is rejected", func(t *testing.T) {
		sut, _, users := newSut()
		client := builder.NewUserBuilder()
		users.On("FindByID", mock.Anything, client.ID).Return(client.BuildView(), nil)

		_, err := sut.ListDay(context.Background(), client.ID, day)
		assert.ErrorIs(t, err, errs.ErrNotAProvider)
	})

	t.Run("unknown requester is rejected", func(t *testing.T) {
		sut, _, users := newSut()
		id := uuid.New()
		users.On("FindByID", mock.Anything, id).
			Return(nil, infra.WrapRepoErr("no rows", pgx.ErrNoRows))

		_, err := sut.ListDay(context.Background(), id, day)
		assert.ErrorIs(t, err, errs.ErrNotAProvider)
	})
}
