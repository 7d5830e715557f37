package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"ceremonia/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateStep checks the required fields of the draft's current step.
// The additional-participants step is deliberately permissive: secondary
// participants may be listed with incomplete data so a group booking is never
// blocked on them.
func ValidateStep(d *domain.BookingDraft) error {
	switch d.CurrentStep {
	case domain.StepPersonalInfo:
		return validatePersonalInfo(&d.MainParticipant)
	case domain.StepAdditionalParticipants:
		return nil
	case domain.StepPaymentInfo:
		return validatePaymentInfo(&d.MainParticipant)
	default:
		return fmt.Errorf("%w: unknown step %q", domain.ErrValidation, d.CurrentStep)
	}
}

func validatePersonalInfo(p *domain.MainParticipant) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(p.Email) {
		return fmt.Errorf("%w: email is not valid", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", domain.ErrValidation)
	}
	if strings.TrimSpace(p.EmergencyContact) == "" {
		return fmt.Errorf("%w: emergency contact is required", domain.ErrValidation)
	}
	return nil
}

func validatePaymentInfo(p *domain.MainParticipant) error {
	if strings.TrimSpace(p.PaymentMethod) == "" {
		return fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.WhatsAppNumber) == "" {
		return fmt.Errorf("%w: whatsapp number is required", domain.ErrValidation)
	}
	return nil
}
