package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
)

type pendingSyncer interface {
	ResumeSync(ctx context.Context) (*domain.PersistedBooking, error)
}

// Scheduler periodically replays the deferred remote write, covering
// bookings the user never comes back to resync by hand. Each tick is a
// no-op when nothing is pending.
type Scheduler struct {
	bookingService pendingSyncer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService pendingSyncer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sync scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	booking, err := s.bookingService.ResumeSync(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRefresh) {
			s.logger.Warn("pending sync still blocked on authentication",
				logger.String("error", err.Error()),
			)
			return
		}
		s.logger.Error("failed to resume pending sync",
			logger.String("error", err.Error()),
		)
		return
	}

	if booking != nil && booking.SyncState == domain.SyncRemoteConfirmed {
		s.logger.Info("pending booking synced",
			logger.String("reference", booking.BookingReference),
			logger.String("remote_id", booking.RemoteID),
		)
	}
}
