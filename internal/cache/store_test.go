package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ceremonia/internal/domain"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleDraft(eventID string) *domain.BookingDraft {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.BookingDraft{
		Event: domain.EventSnapshot{
			EventID:   eventID,
			Name:      "Sound Healing",
			BasePrice: 80000,
			Currency:  "COP",
		},
		MainParticipant: domain.MainParticipant{
			Participant: domain.Participant{Name: "Alice", Email: "alice@example.com"},
		},
		CurrentStep: domain.StepPersonalInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func sampleBooking(reference string) *domain.PersistedBooking {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.PersistedBooking{
		BookingReference: reference,
		Event:            domain.EventSnapshot{EventID: "ev-1", Name: "Sound Healing", BasePrice: 80000},
		MainParticipant: domain.MainParticipant{
			Participant:   domain.Participant{Name: "Alice"},
			PaymentMethod: "card",
		},
		Pricing: domain.PricingBreakdown{
			BasePrice:         80000,
			TotalParticipants: 1,
			Subtotal:          80000,
			TotalAmount:       80000,
			DepositAmount:     40000,
			RemainingBalance:  40000,
		},
		SyncState: domain.SyncLocalOnly,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_OpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveDraft(ctx, sampleDraft("ev-1")))

	got, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", got.Event.EventID)
}

func TestStore_DraftRoundtrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	draft := sampleDraft("ev-1")
	require.NoError(t, store.SaveDraft(ctx, draft))

	got, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestStore_DraftNotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Draft(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestStore_SaveDraft_Overwrites(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	draft := sampleDraft("ev-1")
	require.NoError(t, store.SaveDraft(ctx, draft))

	draft.CurrentStep = domain.StepPaymentInfo
	draft.MainParticipant.Name = "Alice B."
	require.NoError(t, store.SaveDraft(ctx, draft))

	got, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentInfo, got.CurrentStep)
	assert.Equal(t, "Alice B.", got.MainParticipant.Name)
}

func TestStore_RemoveDraft(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, sampleDraft("ev-1")))
	require.NoError(t, store.RemoveDraft(ctx, "ev-1"))

	_, err := store.Draft(ctx, "ev-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	// Removing a draft that is already gone is not an error.
	require.NoError(t, store.RemoveDraft(ctx, "ev-1"))
}

func TestStore_BookingRoundtrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	booking := sampleBooking("bk-alice-12345678")
	require.NoError(t, store.SaveBooking(ctx, booking))

	got, err := store.Booking(ctx, "bk-alice-12345678")
	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestStore_BookingNotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Booking(context.Background(), "bk-missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_SaveBooking_UpdatesSyncState(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	booking := sampleBooking("bk-alice-12345678")
	require.NoError(t, store.SaveBooking(ctx, booking))

	booking.SyncState = domain.SyncRemoteConfirmed
	booking.RemoteID = "42"
	require.NoError(t, store.SaveBooking(ctx, booking))

	got, err := store.Booking(ctx, "bk-alice-12345678")
	require.NoError(t, err)
	assert.Equal(t, domain.SyncRemoteConfirmed, got.SyncState)
	assert.Equal(t, "42", got.RemoteID)
}

func TestStore_CurrentMarker(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ref, err := store.CurrentRef(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref)

	require.NoError(t, store.SetCurrentRef(ctx, "bk-1"))
	ref, err = store.CurrentRef(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", ref)

	// A later commit replaces the marker.
	require.NoError(t, store.SetCurrentRef(ctx, "bk-2"))
	ref, err = store.CurrentRef(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-2", ref)
}

func TestStore_PendingMarker(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	ref, err := store.PendingRef(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref)

	require.NoError(t, store.SetPendingRef(ctx, "bk-1"))
	ref, err = store.PendingRef(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", ref)

	require.NoError(t, store.ClearPendingRef(ctx))
	ref, err = store.PendingRef(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref)

	// Clearing twice is harmless.
	require.NoError(t, store.ClearPendingRef(ctx))
}

func TestStore_MarkersAreIndependent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentRef(ctx, "bk-current"))
	require.NoError(t, store.SetPendingRef(ctx, "bk-pending"))
	require.NoError(t, store.ClearPendingRef(ctx))

	ref, err := store.CurrentRef(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bk-current", ref)
}
