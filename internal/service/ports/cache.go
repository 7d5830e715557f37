package ports

import (
	"context"

	"ceremonia/internal/domain"
)

// BookingCache is the durable on-device store. It is the single source of
// truth for a booking until a remote write succeeds. Writes are synchronous
// write-through; callers may assume a returned nil error means the data is on
// disk.
type BookingCache interface {
	SaveDraft(ctx context.Context, d *domain.BookingDraft) error
	Draft(ctx context.Context, eventID string) (*domain.BookingDraft, error)
	RemoveDraft(ctx context.Context, eventID string) error

	SaveBooking(ctx context.Context, b *domain.PersistedBooking) error
	Booking(ctx context.Context, reference string) (*domain.PersistedBooking, error)

	// Markers locate bookings without threading references through callers:
	// "current" points the confirmation view at the latest commit, "pending"
	// records the booking awaiting a replayed remote write. An unset marker
	// reads as "".
	SetCurrentRef(ctx context.Context, reference string) error
	CurrentRef(ctx context.Context) (string, error)
	SetPendingRef(ctx context.Context, reference string) error
	PendingRef(ctx context.Context) (string, error)
	ClearPendingRef(ctx context.Context) error
}
