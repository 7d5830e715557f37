// Package coordinator owns the local-first, remote-eventually persistence of
// finalized bookings. The local cache write always happens first and the
// local copy is never discarded; remote failures only ever change the
// booking's sync state.
package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
	"ceremonia/internal/pricing"
	"ceremonia/internal/service/ports"
)

type Coordinator struct {
	cache  ports.BookingCache
	remote ports.RemoteStore
	guard  ports.SessionGuard
	log    logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(
	cache ports.BookingCache,
	remote ports.RemoteStore,
	guard ports.SessionGuard,
	log logger.Logger,
) *Coordinator {
	return &Coordinator{
		cache:    cache,
		remote:   remote,
		guard:    guard,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

// Commit finalizes a draft at the terminal step: it generates the booking
// reference if absent, computes the final breakdown, writes the booking to
// the cache in local-only state, records it as the current booking, drops the
// draft and attempts the first sync.
func (c *Coordinator) Commit(ctx context.Context, draft *domain.BookingDraft, cfg domain.PricingConfig) (*domain.PersistedBooking, error) {
	if draft.CurrentStep != domain.StepPaymentInfo {
		return nil, fmt.Errorf("%w: booking can only be committed from the payment step", domain.ErrValidation)
	}

	reference := draft.BookingReference
	if reference == "" {
		reference = NewReference(draft.MainParticipant.Name)
		draft.BookingReference = reference
	}

	breakdown, err := pricing.ComputeBreakdown(
		draft.Event.BasePrice,
		draft.TotalParticipants(),
		cfg.DiscountRate,
		cfg.DepositRate,
	)
	if err != nil {
		return nil, fmt.Errorf("compute breakdown: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.PersistedBooking{
		BookingReference:       reference,
		Event:                  draft.Event,
		MainParticipant:        draft.MainParticipant,
		AdditionalParticipants: draft.AdditionalParticipants,
		IsGroupBooking:         draft.IsGroupBooking,
		Pricing:                breakdown,
		SyncState:              domain.SyncLocalOnly,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := c.cache.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	if err := c.cache.SetCurrentRef(ctx, reference); err != nil {
		return nil, fmt.Errorf("set current marker: %w", err)
	}
	if err := c.cache.RemoveDraft(ctx, draft.Event.EventID); err != nil {
		return nil, fmt.Errorf("remove draft: %w", err)
	}

	c.log.Info("booking committed locally",
		logger.String("reference", reference),
		logger.String("event_id", draft.Event.EventID),
		logger.Int("participants", booking.Pricing.TotalParticipants),
	)

	return c.TrySync(ctx, reference)
}

// TrySync attempts the remote write for a committed booking. Unauthenticated
// sessions defer the write (pending-remote plus the pending marker); remote
// failures downgrade to remote-failed and are not retried automatically. A
// booking already remote-confirmed is a no-op before any network call.
func (c *Coordinator) TrySync(ctx context.Context, reference string) (*domain.PersistedBooking, error) {
	booking, err := c.cache.Booking(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking.SyncState == domain.SyncRemoteConfirmed {
		return booking, nil
	}

	release, ok := c.acquire(reference)
	if !ok {
		return booking, domain.ErrSyncInFlight
	}
	defer release()

	if !c.guard.IsAuthenticated(ctx) {
		booking.SyncState = domain.SyncPendingRemote
		booking.UpdatedAt = time.Now().UTC()
		if err := c.cache.SaveBooking(ctx, booking); err != nil {
			return nil, fmt.Errorf("save booking: %w", err)
		}
		if err := c.cache.SetPendingRef(ctx, reference); err != nil {
			return nil, fmt.Errorf("set pending marker: %w", err)
		}

		c.log.Info("remote sync deferred, no active session",
			logger.String("reference", reference),
		)
		return booking, nil
	}

	return c.writeRemote(ctx, booking)
}

// ResumePendingSync replays the deferred remote write, if any. The session is
// refreshed before the write fires: a session that looked valid moments ago
// may already be stale, so the order is refresh-then-write. On failure the
// pending marker is retained for a later attempt.
func (c *Coordinator) ResumePendingSync(ctx context.Context) (*domain.PersistedBooking, error) {
	reference, err := c.cache.PendingRef(ctx)
	if err != nil {
		return nil, fmt.Errorf("read pending marker: %w", err)
	}
	if reference == "" {
		return nil, nil
	}

	booking, err := c.cache.Booking(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking.SyncState == domain.SyncRemoteConfirmed {
		if err := c.cache.ClearPendingRef(ctx); err != nil {
			return nil, fmt.Errorf("clear pending marker: %w", err)
		}
		return booking, nil
	}

	release, ok := c.acquire(reference)
	if !ok {
		return booking, domain.ErrSyncInFlight
	}
	defer release()

	if err := c.guard.Refresh(ctx); err != nil {
		return booking, fmt.Errorf("refresh session: %w", err)
	}

	return c.writeRemote(ctx, booking)
}

func (c *Coordinator) writeRemote(ctx context.Context, booking *domain.PersistedBooking) (*domain.PersistedBooking, error) {
	remoteID, err := c.remote.Create(ctx, booking)
	if err != nil {
		c.log.Error("remote write failed",
			logger.String("reference", booking.BookingReference),
			logger.String("error", err.Error()),
		)

		booking.SyncState = domain.SyncRemoteFailed
		booking.UpdatedAt = time.Now().UTC()
		if serr := c.cache.SaveBooking(ctx, booking); serr != nil {
			return nil, fmt.Errorf("save booking: %w", serr)
		}
		// The local copy is the durable fallback; the failure is recorded in
		// the sync state rather than propagated.
		return booking, nil
	}

	booking.SyncState = domain.SyncRemoteConfirmed
	booking.RemoteID = remoteID
	booking.UpdatedAt = time.Now().UTC()
	if err := c.cache.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	if err := c.cache.ClearPendingRef(ctx); err != nil {
		return nil, fmt.Errorf("clear pending marker: %w", err)
	}

	c.log.Info("booking synced to remote store",
		logger.String("reference", booking.BookingReference),
		logger.String("remote_id", remoteID),
	)

	return booking, nil
}

// acquire marks a reference as having a sync attempt in flight. A second
// attempt for the same reference is refused instead of queued, which is what
// keeps a double-clicked retry from producing duplicate remote records.
func (c *Coordinator) acquire(reference string) (func(), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[reference]; busy {
		return nil, false
	}
	c.inFlight[reference] = struct{}{}

	return func() {
		c.mu.Lock()
		delete(c.inFlight, reference)
		c.mu.Unlock()
	}, true
}
