package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
	"ceremonia/internal/service/ports"
	"ceremonia/internal/wizard"
)

type syncCoordinator interface {
	Commit(ctx context.Context, draft *domain.BookingDraft, cfg domain.PricingConfig) (*domain.PersistedBooking, error)
	TrySync(ctx context.Context, reference string) (*domain.PersistedBooking, error)
	ResumePendingSync(ctx context.Context) (*domain.PersistedBooking, error)
}

type BookingService struct {
	cache       ports.BookingCache
	coordinator syncCoordinator
	notifier    ports.BookingNotifier
	pricingCfg  domain.PricingConfig
	logger      logger.Logger
}

func NewBookingService(
	cache ports.BookingCache,
	coordinator syncCoordinator,
	notifier ports.BookingNotifier,
	pricingCfg domain.PricingConfig,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		cache:       cache,
		coordinator: coordinator,
		notifier:    notifier,
		pricingCfg:  pricingCfg,
		logger:      logger,
	}
}

// Commit finalizes the draft for the event. The booking is confirmed locally
// regardless of how the remote sync turns out; a deferred or failed sync is
// reported through the booking's sync state, never as a commit failure.
func (s *BookingService) Commit(ctx context.Context, eventID string) (*domain.PersistedBooking, error) {
	draft, err := s.cache.Draft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := wizard.ValidateStep(draft); err != nil {
		return nil, err
	}

	booking, err := s.coordinator.Commit(ctx, draft, s.pricingCfg)
	if err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	go s.notifier.NotifyBookingCommitted(context.WithoutCancel(ctx), booking)
	s.notifySyncOutcome(ctx, booking)

	return booking, nil
}

// RetrySync re-runs the remote write for a booking, typically after a
// remote-failed outcome surfaced in the UI.
func (s *BookingService) RetrySync(ctx context.Context, reference string) (*domain.PersistedBooking, error) {
	booking, err := s.coordinator.TrySync(ctx, reference)
	if err != nil {
		return booking, err
	}

	s.notifySyncOutcome(ctx, booking)

	return booking, nil
}

// ResumeSync replays the deferred remote write after re-authentication.
// Without a pending booking it is a no-op returning nil.
func (s *BookingService) ResumeSync(ctx context.Context) (*domain.PersistedBooking, error) {
	booking, err := s.coordinator.ResumePendingSync(ctx)
	if err != nil || booking == nil {
		return booking, err
	}

	if booking.SyncState == domain.SyncRemoteConfirmed {
		go s.notifier.NotifySyncConfirmed(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}

func (s *BookingService) ByReference(ctx context.Context, reference string) (*domain.PersistedBooking, error) {
	return s.cache.Booking(ctx, reference)
}

// Current returns the most recently committed booking via the current
// marker, so the confirmation view needs no reference of its own.
func (s *BookingService) Current(ctx context.Context) (*domain.PersistedBooking, error) {
	reference, err := s.cache.CurrentRef(ctx)
	if err != nil {
		return nil, fmt.Errorf("read current marker: %w", err)
	}
	if reference == "" {
		return nil, domain.ErrBookingNotFound
	}

	return s.cache.Booking(ctx, reference)
}

func (s *BookingService) notifySyncOutcome(ctx context.Context, booking *domain.PersistedBooking) {
	switch booking.SyncState {
	case domain.SyncRemoteConfirmed:
		go s.notifier.NotifySyncConfirmed(context.WithoutCancel(ctx), booking)
	case domain.SyncPendingRemote:
		go s.notifier.NotifySyncDeferred(context.WithoutCancel(ctx), booking)
	case domain.SyncRemoteFailed:
		s.logger.Error("remote sync failed, booking retained locally",
			logger.String("reference", booking.BookingReference),
		)
	}
}
