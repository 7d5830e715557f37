package dto

type ParticipantPayload struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	EmergencyContact string `json:"emergency_contact"`
}

type MainParticipantPayload struct {
	ParticipantPayload
	PaymentMethod  string `json:"payment_method"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

type StartDraftRequest struct {
	EventID   string  `json:"event_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Location  string  `json:"location"`
	Image     string  `json:"image"`
	BasePrice float64 `json:"base_price" binding:"gte=0"`
	Currency  string  `json:"currency"`
}

type UpdateDraftRequest struct {
	MainParticipant        *MainParticipantPayload `json:"main_participant"`
	IsGroupBooking         *bool                   `json:"is_group_booking"`
	AdditionalParticipants *[]ParticipantPayload   `json:"additional_participants"`
}
