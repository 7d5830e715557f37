package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ceremonia/internal/domain"
)

func TestValidateStep_PersonalInfo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.MainParticipant)
		errMsg string
	}{
		{"missing name", func(p *domain.MainParticipant) { p.Name = "  " }, "name is required"},
		{"missing email", func(p *domain.MainParticipant) { p.Email = "" }, "email is required"},
		{"malformed email", func(p *domain.MainParticipant) { p.Email = "alice@nodot" }, "email is not valid"},
		{"email with spaces", func(p *domain.MainParticipant) { p.Email = "a lice@example.com" }, "email is not valid"},
		{"missing phone", func(p *domain.MainParticipant) { p.Phone = "" }, "phone is required"},
		{"zero age", func(p *domain.MainParticipant) { p.Age = 0 }, "age must be positive"},
		{"negative age", func(p *domain.MainParticipant) { p.Age = -1 }, "age must be positive"},
		{"missing emergency contact", func(p *domain.MainParticipant) { p.EmergencyContact = "" }, "emergency contact is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft(false)
			tt.mutate(&draft.MainParticipant)

			err := ValidateStep(draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestValidateStep_PersonalInfo_Valid(t *testing.T) {
	assert.NoError(t, ValidateStep(validDraft(false)))
}

func TestValidateStep_AdditionalParticipants_Permissive(t *testing.T) {
	draft := validDraft(true)
	draft.CurrentStep = domain.StepAdditionalParticipants

	// Incomplete secondary participants never block the group booking.
	draft.AdditionalParticipants = []domain.Participant{{Name: "Carol"}, {}}
	assert.NoError(t, ValidateStep(draft))

	draft.AdditionalParticipants = nil
	assert.NoError(t, ValidateStep(draft))
}

func TestValidateStep_PaymentInfo(t *testing.T) {
	draft := validDraft(false)
	draft.CurrentStep = domain.StepPaymentInfo

	assert.NoError(t, ValidateStep(draft))

	draft.MainParticipant.PaymentMethod = ""
	err := ValidateStep(draft)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "payment method")

	draft.MainParticipant.PaymentMethod = "card"
	draft.MainParticipant.WhatsAppNumber = "  "
	err = ValidateStep(draft)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "whatsapp number")
}

func TestValidateStep_UnknownStep(t *testing.T) {
	draft := validDraft(false)
	draft.CurrentStep = domain.Step("confirmation")

	assert.ErrorIs(t, ValidateStep(draft), domain.ErrValidation)
}
