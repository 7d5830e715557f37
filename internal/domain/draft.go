package domain

import "time"

type Step string

const (
	StepPersonalInfo           Step = "personal-info"
	StepAdditionalParticipants Step = "additional-participants"
	StepPaymentInfo            Step = "payment-info"
)

// EventSnapshot is the event data copied into the draft when the wizard
// starts. It is a point-in-time denormalized copy and is never re-fetched.
type EventSnapshot struct {
	EventID   string  `json:"event_id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Location  string  `json:"location"`
	Image     string  `json:"image"`
	BasePrice float64 `json:"base_price"`
	Currency  string  `json:"currency"`
}

type Participant struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	EmergencyContact string `json:"emergency_contact"`
}

type MainParticipant struct {
	Participant
	PaymentMethod  string `json:"payment_method"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

// BookingDraft is the in-progress booking held in the local cache. Every
// mutation is written through immediately so an interrupted session resumes
// where it left off.
type BookingDraft struct {
	Event                  EventSnapshot   `json:"event"`
	MainParticipant        MainParticipant `json:"main_participant"`
	AdditionalParticipants []Participant   `json:"additional_participants,omitempty"`
	IsGroupBooking         bool            `json:"is_group_booking"`
	CurrentStep            Step            `json:"current_step"`
	BookingReference       string          `json:"booking_reference,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func (d *BookingDraft) TotalParticipants() int {
	return 1 + len(d.AdditionalParticipants)
}

// SetGroupBooking flips the group flag. Disabling group booking clears the
// additional participants; the invariant holds on write, not just on read.
func (d *BookingDraft) SetGroupBooking(enabled bool) {
	d.IsGroupBooking = enabled
	if !enabled {
		d.AdditionalParticipants = nil
	}
}

// DraftUpdate is a partial update to a draft; nil fields are left untouched.
type DraftUpdate struct {
	MainParticipant        *MainParticipant
	IsGroupBooking         *bool
	AdditionalParticipants *[]Participant
}
