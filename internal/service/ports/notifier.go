package ports

import (
	"context"

	"ceremonia/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCommitted(ctx context.Context, b *domain.PersistedBooking)
	NotifySyncConfirmed(ctx context.Context, b *domain.PersistedBooking)
	NotifySyncDeferred(ctx context.Context, b *domain.PersistedBooking)
}
