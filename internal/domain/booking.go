package domain

import "time"

// SyncState is the reconciliation status of a booking between the local
// cache and the remote store. The local copy is the durable fallback and is
// never discarded on a failed sync.
type SyncState string

const (
	SyncLocalOnly       SyncState = "local-only"
	SyncPendingRemote   SyncState = "pending-remote"
	SyncRemoteConfirmed SyncState = "remote-confirmed"
	SyncRemoteFailed    SyncState = "remote-failed"
)

// PersistedBooking is the finalized record created at terminal-step commit.
// Only the persistence coordinator writes SyncState.
type PersistedBooking struct {
	BookingReference       string           `json:"booking_reference"`
	Event                  EventSnapshot    `json:"event"`
	MainParticipant        MainParticipant  `json:"main_participant"`
	AdditionalParticipants []Participant    `json:"additional_participants,omitempty"`
	IsGroupBooking         bool             `json:"is_group_booking"`
	Pricing                PricingBreakdown `json:"pricing"`
	SyncState              SyncState        `json:"sync_state"`
	RemoteID               string           `json:"remote_id,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}
