package domain

import "errors"

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrTerminalStep = errors.New("payment step is terminal, commit the booking instead")
	ErrSyncInFlight = errors.New("a sync for this booking is already in progress")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrAuthRefresh = errors.New("session refresh failed")
)
