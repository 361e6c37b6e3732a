//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"booking-api/internal/domain/appointment"
	"booking-api/internal/infra"
	"booking-api/internal/notify"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/commands"
	"booking-api/tests/common/builder"
	notifymock "booking-api/tests/mock/notify"
	queriesmock "booking-api/tests/mock/queries"
	sharedmock "booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commandsFixture struct {
	uow        *sharedmock.FakeUnitOfWork
	users      *queriesmock.MockUserReadStore
	apts       *queriesmock.MockAppointmentReadStore
	dispatcher *notifymock.MockDispatcher
	clock      *clock.MockClock
	sut        commands.AppointmentCommands
}

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newFixture() *commandsFixture {
	f := &commandsFixture{
		uow:        sharedmock.NewFakeUnitOfWork(),
		users:      &queriesmock.MockUserReadStore{},
		apts:       &queriesmock.MockAppointmentReadStore{},
		dispatcher: &notifymock.MockDispatcher{},
		clock:      clock.NewMockClock(fixedNow),
	}
	f.sut = commands.NewAppointmentCommands(f.uow, f.users, f.apts, f.dispatcher, f.clock)
	return f
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows)
}

func TestAppointmentCommands_Create(t *testing.T) {
	slotStart := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	client := builder.NewUserBuilder()
	provider := builder.NewProviderBuilder()

	setupUsers := func(f *commandsFixture) {
		f.users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)
		f.users.On("FindByID", mock.Anything, client.ID).Return(client.BuildView(), nil)
	}

	t.Run("success books slot and records notification", func(t *testing.T) {
		f := newFixture()
		setupUsers(f)

		aptID := uuid.New()
		slot := appointment.NewSlot(slotStart)
		f.uow.Tx.AppointmentsMock.
			On("ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart).
			Return(false, nil)
		f.uow.Tx.AppointmentsMock.
			On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(aptID, nil)
		f.dispatcher.
			On("NotifyBooking", mock.Anything, mock.Anything, provider.ID, client.Name, slot).
			Return(nil)

		expected := builder.NewAppointmentBuilder().
			WithClientID(client.ID).
			WithProviderID(provider.ID).
			WithSlotStart(slotStart).
			BuildView()
		f.apts.On("FindByID", mock.Anything, aptID).Return(expected, nil)

		view, err := f.sut.Create(context.Background(), client.ID, provider.ID, slotStart)
		require.NoError(t, err)
		assert.Equal(t, expected, view)

		f.uow.Tx.AppointmentsMock.AssertExpectations(t)
		f.dispatcher.AssertExpectations(t)
	})

	t.Run("sub-hour slot input is truncated before booking", func(t *testing.T) {
		f := newFixture()
		setupUsers(f)

		aptID := uuid.New()
		slot := appointment.NewSlot(slotStart)
		f.uow.Tx.AppointmentsMock.
			On("ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart).
			Return(false, nil)
		f.uow.Tx.AppointmentsMock.
			On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(aptID, nil)
		f.dispatcher.
			On("NotifyBooking", mock.Anything, mock.Anything, provider.ID, client.Name, slot).
			Return(nil)
		f.apts.On("FindByID", mock.Anything, aptID).
			Return(builder.NewAppointmentBuilder().BuildView(), nil)

		_, err := f.sut.Create(context.Background(), client.ID, provider.ID, slotStart.Add(45*time.Minute))
		require.NoError(t, err)

		// The availability check must use the truncated start.
		f.uow.Tx.AppointmentsMock.AssertCalled(t,
			"ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart)
	})

	t.Run("unknown provider id", func(t *testing.T) {
		f := newFixture()
		unknownID := uuid.New()
		f.users.On("FindByID", mock.Anything, unknownID).Return(nil, notFoundErr())

		_, err := f.sut.Create(context.Background(), client.ID, unknownID, slotStart)
		assert.ErrorIs(t, err, errs.ErrNotAProvider)
	})

	t.Run("target user is not a provider", func(t *testing.T) {
		f := newFixture()
		other := builder.NewUserBuilder().WithEmail("other@example.com")
		f.users.On("FindByID", mock.Anything, other.ID).Return(other.BuildView(), nil)

		_, err := f.sut.Create(context.Background(), client.ID, other.ID, slotStart)
		assert.ErrorIs(t, err, errs.ErrNotAProvider)
	})

	t.Run("provider booking themselves", func(t *testing.T) {
		f := newFixture()
		f.users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)

		_, err := f.sut.Create(context.Background(), provider.ID, provider.ID, slotStart)
		assert.ErrorIs(t, err, errs.ErrSelfBooking)
	})

	t.Run("past slot", func(t *testing.T) {
		f := newFixture()
		f.users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)

		_, err := f.sut.Create(context.Background(), client.ID, provider.ID, fixedNow.Add(-2*time.Hour))
		assert.ErrorIs(t, err, errs.ErrPastSlot)
	})

	t.Run("slot already taken on availability check", func(t *testing.T) {
		f := newFixture()
		setupUsers(f)
		f.uow.Tx.AppointmentsMock.
			On("ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart).
			Return(true, nil)

		_, err := f.sut.Create(context.Background(), client.ID, provider.ID, slotStart)
		assert.ErrorIs(t, err, errs.ErrSlotTaken)
		f.uow.Tx.AppointmentsMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent booking hits the unique index", func(t *testing.T) {
		f := newFixture()
		setupUsers(f)
		f.uow.Tx.AppointmentsMock.
			On("ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart).
			Return(false, nil)
		f.uow.Tx.AppointmentsMock.
			On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", errs.New("duplicate"), infra.KindDuplicateKey))

		_, err := f.sut.Create(context.Background(), client.ID, provider.ID, slotStart)
		assert.ErrorIs(t, err, errs.ErrSlotConflict)
	})

	t.Run("notification failure aborts the booking", func(t *testing.T) {
		f := newFixture()
		setupUsers(f)
		f.uow.Tx.AppointmentsMock.
			On("ActiveExists", mock.Anything, mock.Anything, provider.ID, slotStart).
			Return(false, nil)
		f.uow.Tx.AppointmentsMock.
			On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.New(), nil)
		f.dispatcher.
			On("NotifyBooking", mock.Anything, mock.Anything, provider.ID, client.Name, mock.Anything).
			Return(errs.New("insert failed"))

		_, err := f.sut.Create(context.Background(), client.ID, provider.ID, slotStart)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestAppointmentCommands_Cancel(t *testing.T) {
	slotStart := fixedNow.Add(24 * time.Hour).Truncate(time.Hour)

	newView := func() (*builder.AppointmentBuilder, *builder.UserBuilder) {
		provider := builder.NewProviderBuilder()
		return builder.NewAppointmentBuilder().
			WithProviderID(provider.ID).
			WithSlotStart(slotStart), provider
	}

	t.Run("success marks canceled and enqueues mail", func(t *testing.T) {
		f := newFixture()
		b, provider := newView()
		client := builder.NewUserBuilder().WithID(b.ClientID)
		snap := b.BuildSnapshot()

		canceled := *b.BuildView()
		canceledAt := fixedNow
		canceled.CanceledAt = &canceledAt

		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)
		f.uow.Tx.AppointmentsMock.
			On("MarkCanceled", mock.Anything, mock.Anything, snap.ID, fixedNow).
			Return(int64(1), nil)
		f.users.On("FindByID", mock.Anything, provider.ID).Return(provider.BuildView(), nil)
		f.users.On("FindByID", mock.Anything, client.ID).Return(client.BuildView(), nil)
		f.dispatcher.
			On("EnqueueCancellation", mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		f.apts.On("FindByID", mock.Anything, snap.ID).Return(&canceled, nil)

		got, err := f.sut.Cancel(context.Background(), snap.ClientID, snap.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CanceledAt)
		assert.Equal(t, fixedNow, *got.CanceledAt)

		f.dispatcher.AssertExpectations(t)
	})

	t.Run("enqueued job carries the mail snapshot", func(t *testing.T) {
		f := newFixture()
		b, provider := newView()
		client := builder.NewUserBuilder().WithID(b.ClientID)
		snap := b.BuildSnapshot()
		providerView := provider.BuildView()
		clientView := client.BuildView()

		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)
		f.uow.Tx.AppointmentsMock.
			On("MarkCanceled", mock.Anything, mock.Anything, snap.ID, fixedNow).
			Return(int64(1), nil)
		f.users.On("FindByID", mock.Anything, provider.ID).Return(providerView, nil)
		f.users.On("FindByID", mock.Anything, client.ID).Return(clientView, nil)
		f.dispatcher.
			On("EnqueueCancellation", mock.Anything, mock.Anything, mock.MatchedBy(func(job notify.CancellationJob) bool {
				return job.AppointmentID == snap.ID &&
					job.ProviderName == providerView.Name &&
					job.ProviderEmail == providerView.Email &&
					job.ClientName == clientView.Name &&
					job.SlotStart.Equal(snap.SlotStart) &&
					job.CanceledAt.Equal(fixedNow)
			})).
			Return(nil)
		f.apts.On("FindByID", mock.Anything, snap.ID).Return(b.BuildView(), nil)

		_, err := f.sut.Cancel(context.Background(), snap.ClientID, snap.ID)
		require.NoError(t, err)
		f.dispatcher.AssertExpectations(t)
	})

	t.Run("appointment not found", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, id).
			Return(nil, notFoundErr())

		_, err := f.sut.Cancel(context.Background(), uuid.New(), id)
		assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
	})

	t.Run("requester is not the booking client", func(t *testing.T) {
		f := newFixture()
		b, _ := newView()
		snap := b.BuildSnapshot()
		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)

		_, err := f.sut.Cancel(context.Background(), uuid.New(), snap.ID)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		f.uow.Tx.AppointmentsMock.AssertNotCalled(t, "MarkCanceled",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already canceled", func(t *testing.T) {
		f := newFixture()
		b, _ := newView()
		snap := b.WithCanceledAt(fixedNow.Add(-time.Hour)).BuildSnapshot()
		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)

		_, err := f.sut.Cancel(context.Background(), snap.ClientID, snap.ID)
		assert.ErrorIs(t, err, errs.ErrAlreadyCanceled)
	})

	t.Run("inside the two hour window", func(t *testing.T) {
		f := newFixture()
		b, _ := newView()
		snap := b.WithSlotStart(fixedNow.Add(time.Hour)).BuildSnapshot()
		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)

		_, err := f.sut.Cancel(context.Background(), snap.ClientID, snap.ID)
		assert.ErrorIs(t, err, errs.ErrTooLateToCancel)
	})

	t.Run("raced cancel loses on zero affected rows", func(t *testing.T) {
		f := newFixture()
		b, _ := newView()
		snap := b.BuildSnapshot()

		f.uow.Tx.AppointmentsMock.
			On("FindByID", mock.Anything, mock.Anything, snap.ID).
			Return(snap, nil)
		f.uow.Tx.AppointmentsMock.
			On("MarkCanceled", mock.Anything, mock.Anything, snap.ID, fixedNow).
			Return(int64(0), nil)

		_, err := f.sut.Cancel(context.Background(), snap.ClientID, snap.ID)
		assert.ErrorIs(t, err, errs.ErrAlreadyCanceled)
		f.dispatcher.AssertNotCalled(t, "EnqueueCancellation", mock.Anything, mock.Anything, mock.Anything)
	})
}
