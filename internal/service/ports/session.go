package ports

import "context"

// SessionGuard reports whether a valid session with the remote service is
// currently active and can obtain a fresh one.
type SessionGuard interface {
	IsAuthenticated(ctx context.Context) bool
	Refresh(ctx context.Context) error
}
