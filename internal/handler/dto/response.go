package dto

import (
	"time"

	"ceremonia/internal/domain"
)

type DraftResponse struct {
	EventID                string                 `json:"event_id"`
	EventName              string                 `json:"event_name"`
	CurrentStep            string                 `json:"current_step"`
	MainParticipant        MainParticipantPayload `json:"main_participant"`
	AdditionalParticipants []ParticipantPayload   `json:"additional_participants"`
	IsGroupBooking         bool                   `json:"is_group_booking"`
	TotalParticipants      int                    `json:"total_participants"`
	UpdatedAt              string                 `json:"updated_at"`
}

type BreakdownResponse struct {
	BasePrice         float64 `json:"base_price"`
	TotalParticipants int     `json:"total_participants"`
	Subtotal          float64 `json:"subtotal"`
	HasGroupDiscount  bool    `json:"has_group_discount"`
	DiscountRate      float64 `json:"discount_rate"`
	DiscountAmount    float64 `json:"discount_amount"`
	TotalAmount       float64 `json:"total_amount"`
	DepositAmount     float64 `json:"deposit_amount"`
	RemainingBalance  float64 `json:"remaining_balance"`
}

type BookingResponse struct {
	BookingReference  string            `json:"booking_reference"`
	EventID           string            `json:"event_id"`
	EventName         string            `json:"event_name"`
	SyncState         string            `json:"sync_state"`
	RemoteID          string            `json:"remote_id,omitempty"`
	Pricing           BreakdownResponse `json:"pricing"`
	TotalParticipants int               `json:"total_participants"`
	CreatedAt         string            `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toParticipantPayload(p domain.Participant) ParticipantPayload {
	return ParticipantPayload{
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Age:              p.Age,
		EmergencyContact: p.EmergencyContact,
	}
}

func ToDraftResponse(d *domain.BookingDraft) DraftResponse {
	participants := make([]ParticipantPayload, 0, len(d.AdditionalParticipants))
	for _, p := range d.AdditionalParticipants {
		participants = append(participants, toParticipantPayload(p))
	}

	return DraftResponse{
		EventID:     d.Event.EventID,
		EventName:   d.Event.Name,
		CurrentStep: string(d.CurrentStep),
		MainParticipant: MainParticipantPayload{
			ParticipantPayload: toParticipantPayload(d.MainParticipant.Participant),
			PaymentMethod:      d.MainParticipant.PaymentMethod,
			WhatsAppNumber:     d.MainParticipant.WhatsAppNumber,
		},
		AdditionalParticipants: participants,
		IsGroupBooking:         d.IsGroupBooking,
		TotalParticipants:      d.TotalParticipants(),
		UpdatedAt:              d.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBreakdownResponse(b domain.PricingBreakdown) BreakdownResponse {
	return BreakdownResponse{
		BasePrice:         b.BasePrice,
		TotalParticipants: b.TotalParticipants,
		Subtotal:          b.Subtotal,
		HasGroupDiscount:  b.HasGroupDiscount,
		DiscountRate:      b.DiscountRate,
		DiscountAmount:    b.DiscountAmount,
		TotalAmount:       b.TotalAmount,
		DepositAmount:     b.DepositAmount,
		RemainingBalance:  b.RemainingBalance,
	}
}

func ToBookingResponse(b *domain.PersistedBooking) BookingResponse {
	return BookingResponse{
		BookingReference:  b.BookingReference,
		EventID:           b.Event.EventID,
		EventName:         b.Event.Name,
		SyncState:         string(b.SyncState),
		RemoteID:          b.RemoteID,
		Pricing:           ToBreakdownResponse(b.Pricing),
		TotalParticipants: b.Pricing.TotalParticipants,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}
