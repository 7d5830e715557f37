// Package wizard drives the booking form through its steps and gates forward
// progress on per-step validation.
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
	"ceremonia/internal/service/ports"
)

// NextStep computes the forward transition. From personal-info the wizard
// branches on the group flag; the payment step is terminal and has no
// forward target.
func NextStep(current domain.Step, isGroupBooking bool) (domain.Step, error) {
	switch current {
	case domain.StepPersonalInfo:
		if isGroupBooking {
			return domain.StepAdditionalParticipants, nil
		}
		return domain.StepPaymentInfo, nil
	case domain.StepAdditionalParticipants:
		return domain.StepPaymentInfo, nil
	case domain.StepPaymentInfo:
		return "", domain.ErrTerminalStep
	default:
		return "", fmt.Errorf("%w: unknown step %q", domain.ErrValidation, current)
	}
}

// PrevStep is the exact inverse of NextStep's forward map. Going backward
// always succeeds; from the initial step it stays put.
func PrevStep(current domain.Step, isGroupBooking bool) domain.Step {
	switch current {
	case domain.StepPaymentInfo:
		if isGroupBooking {
			return domain.StepAdditionalParticipants
		}
		return domain.StepPersonalInfo
	case domain.StepAdditionalParticipants:
		return domain.StepPersonalInfo
	default:
		return domain.StepPersonalInfo
	}
}

type Machine struct {
	cache ports.BookingCache
	log   logger.Logger
}

func NewMachine(cache ports.BookingCache, log logger.Logger) *Machine {
	return &Machine{cache: cache, log: log}
}

// Advance validates the current step and moves the draft forward, writing the
// new step through to the cache before returning. On validation failure the
// draft is left untouched.
func (m *Machine) Advance(ctx context.Context, draft *domain.BookingDraft) error {
	if err := ValidateStep(draft); err != nil {
		return err
	}

	next, err := NextStep(draft.CurrentStep, draft.IsGroupBooking)
	if err != nil {
		return err
	}

	prev := draft.CurrentStep
	draft.CurrentStep = next
	draft.UpdatedAt = time.Now().UTC()
	if err := m.cache.SaveDraft(ctx, draft); err != nil {
		draft.CurrentStep = prev
		return fmt.Errorf("save draft: %w", err)
	}

	m.log.Debug("wizard advanced",
		logger.String("event_id", draft.Event.EventID),
		logger.String("from", string(prev)),
		logger.String("to", string(next)),
	)

	return nil
}

// Retreat moves the draft backward without validation.
func (m *Machine) Retreat(ctx context.Context, draft *domain.BookingDraft) error {
	prev := draft.CurrentStep
	draft.CurrentStep = PrevStep(draft.CurrentStep, draft.IsGroupBooking)
	draft.UpdatedAt = time.Now().UTC()
	if err := m.cache.SaveDraft(ctx, draft); err != nil {
		draft.CurrentStep = prev
		return fmt.Errorf("save draft: %w", err)
	}

	return nil
}
