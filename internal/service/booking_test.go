package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ceremonia/internal/cache"
	"ceremonia/internal/coordinator"
	"ceremonia/internal/domain"
	"ceremonia/internal/service/ports/mocks"
)

type bookingFixture struct {
	store    *cache.Store
	remote   *mocks.MockRemoteStore
	guard    *mocks.MockSessionGuard
	notifier *mocks.MockBookingNotifier
	svc      *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := newTestCache(t)
	remote := mocks.NewMockRemoteStore(t)
	guard := mocks.NewMockSessionGuard(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	coord := coordinator.New(store, remote, guard, log)
	svc := NewBookingService(store, coord, notifier, testPricing, log)

	return &bookingFixture{
		store:    store,
		remote:   remote,
		guard:    guard,
		notifier: notifier,
		svc:      svc,
	}
}

func (f *bookingFixture) seedTerminalDraft(t *testing.T) {
	t.Helper()

	draft := &domain.BookingDraft{
		Event: testEvent(),
		MainParticipant: domain.MainParticipant{
			Participant: domain.Participant{
				Name:             "Alice Smith",
				Email:            "alice@example.com",
				Phone:            "+57 300 000 0000",
				Age:              30,
				EmergencyContact: "Bob",
			},
			PaymentMethod:  "card",
			WhatsAppNumber: "+57 300 000 0000",
		},
		CurrentStep: domain.StepPaymentInfo,
	}
	require.NoError(t, f.store.SaveDraft(context.Background(), draft))
}

func TestBookingService_Commit_Synced(t *testing.T) {
	f := newBookingFixture(t)
	f.seedTerminalDraft(t)

	f.guard.EXPECT().IsAuthenticated(mock.Anything).Return(true)
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return("remote-42", nil)
	f.notifier.EXPECT().NotifyBookingCommitted(mock.Anything, mock.Anything).Return()
	f.notifier.EXPECT().NotifySyncConfirmed(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Commit(context.Background(), "ev-1")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncRemoteConfirmed, booking.SyncState)
	assert.NotEmpty(t, booking.BookingReference)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Commit_Deferred(t *testing.T) {
	f := newBookingFixture(t)
	f.seedTerminalDraft(t)

	f.guard.EXPECT().IsAuthenticated(mock.Anything).Return(false)
	f.notifier.EXPECT().NotifyBookingCommitted(mock.Anything, mock.Anything).Return()
	f.notifier.EXPECT().NotifySyncDeferred(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Commit(context.Background(), "ev-1")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncPendingRemote, booking.SyncState)
	f.remote.AssertNotCalled(t, "Create")

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Commit_RemoteFailureStillCommits(t *testing.T) {
	f := newBookingFixture(t)
	f.seedTerminalDraft(t)

	f.guard.EXPECT().IsAuthenticated(mock.Anything).Return(true)
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return("", errors.New("timeout"))
	f.notifier.EXPECT().NotifyBookingCommitted(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Commit(context.Background(), "ev-1")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncRemoteFailed, booking.SyncState)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Commit_DraftNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Commit(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestBookingService_Commit_IncompletePaymentInfo(t *testing.T) {
	f := newBookingFixture(t)
	f.seedTerminalDraft(t)

	draft, err := f.store.Draft(context.Background(), "ev-1")
	require.NoError(t, err)
	draft.MainParticipant.PaymentMethod = ""
	require.NoError(t, f.store.SaveDraft(context.Background(), draft))

	_, err = f.svc.Commit(context.Background(), "ev-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Commit_NotAtTerminalStep(t *testing.T) {
	f := newBookingFixture(t)
	f.seedTerminalDraft(t)

	draft, err := f.store.Draft(context.Background(), "ev-1")
	require.NoError(t, err)
	draft.CurrentStep = domain.StepPersonalInfo
	require.NoError(t, f.store.SaveDraft(context.Background(), draft))

	_, err = f.svc.Commit(context.Background(), "ev-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_RetrySync_Success(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncRemoteFailed,
	}
	require.NoError(t, f.store.SaveBooking(ctx, booking))

	f.guard.EXPECT().IsAuthenticated(mock.Anything).Return(true)
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return("remote-42", nil)
	f.notifier.EXPECT().NotifySyncConfirmed(mock.Anything, mock.Anything).Return()

	got, err := f.svc.RetrySync(ctx, "bk-alice-deadbeef")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncRemoteConfirmed, got.SyncState)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_RetrySync_UnknownReference(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.RetrySync(context.Background(), "bk-missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ResumeSync_NothingPending(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.ResumeSync(context.Background())

	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestBookingService_ResumeSync_Confirms(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncPendingRemote,
	}
	require.NoError(t, f.store.SaveBooking(ctx, booking))
	require.NoError(t, f.store.SetPendingRef(ctx, "bk-alice-deadbeef"))

	f.guard.EXPECT().Refresh(mock.Anything).Return(nil)
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return("remote-42", nil)
	f.notifier.EXPECT().NotifySyncConfirmed(mock.Anything, mock.Anything).Return()

	got, err := f.svc.ResumeSync(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.SyncRemoteConfirmed, got.SyncState)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ResumeSync_RefreshFails(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncPendingRemote,
	}
	require.NoError(t, f.store.SaveBooking(ctx, booking))
	require.NoError(t, f.store.SetPendingRef(ctx, "bk-alice-deadbeef"))

	f.guard.EXPECT().Refresh(mock.Anything).Return(domain.ErrAuthRefresh)

	_, err := f.svc.ResumeSync(ctx)

	assert.ErrorIs(t, err, domain.ErrAuthRefresh)
	f.remote.AssertNotCalled(t, "Create")
}

func TestBookingService_ByReference(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncLocalOnly,
	}
	require.NoError(t, f.store.SaveBooking(ctx, booking))

	got, err := f.svc.ByReference(ctx, "bk-alice-deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "bk-alice-deadbeef", got.BookingReference)

	_, err = f.svc.ByReference(ctx, "bk-missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Current(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncRemoteConfirmed,
	}
	require.NoError(t, f.store.SaveBooking(ctx, booking))
	require.NoError(t, f.store.SetCurrentRef(ctx, "bk-alice-deadbeef"))

	got, err := f.svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-alice-deadbeef", got.BookingReference)
}
