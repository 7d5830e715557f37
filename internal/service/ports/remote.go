package ports

import (
	"context"

	"ceremonia/internal/domain"
)

// RemoteStore durably persists a booking in the remote service and returns
// its canonical identifier.
type RemoteStore interface {
	Create(ctx context.Context, b *domain.PersistedBooking) (string, error)
}
