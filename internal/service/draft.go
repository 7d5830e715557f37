package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
	"ceremonia/internal/pricing"
	"ceremonia/internal/service/ports"
	"ceremonia/internal/wizard"
)

type DraftService struct {
	cache      ports.BookingCache
	machine    *wizard.Machine
	pricingCfg domain.PricingConfig
	logger     logger.Logger
}

func NewDraftService(
	cache ports.BookingCache,
	machine *wizard.Machine,
	pricingCfg domain.PricingConfig,
	logger logger.Logger,
) *DraftService {
	return &DraftService{
		cache:      cache,
		machine:    machine,
		pricingCfg: pricingCfg,
		logger:     logger,
	}
}

// Start creates a draft for the event with the snapshot copied in. If a
// draft for the event already exists it is returned as-is, so an interrupted
// session resumes at the step it left off.
func (s *DraftService) Start(ctx context.Context, event domain.EventSnapshot) (*domain.BookingDraft, error) {
	if strings.TrimSpace(event.EventID) == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(event.Name) == "" {
		return nil, fmt.Errorf("%w: event name is required", domain.ErrValidation)
	}
	if event.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", domain.ErrValidation)
	}

	existing, err := s.cache.Draft(ctx, event.EventID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrDraftNotFound) {
		return nil, fmt.Errorf("check existing draft: %w", err)
	}

	now := time.Now().UTC()
	draft := &domain.BookingDraft{
		Event:       event,
		CurrentStep: domain.StepPersonalInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.cache.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.logger.Info("draft started",
		logger.String("event_id", event.EventID),
		logger.String("event_name", event.Name),
	)

	return draft, nil
}

func (s *DraftService) Get(ctx context.Context, eventID string) (*domain.BookingDraft, error) {
	return s.cache.Draft(ctx, eventID)
}

// Update applies a partial update and writes the draft through immediately.
// Disabling group booking clears the additional participants; listing
// participants while group booking is off is rejected.
func (s *DraftService) Update(ctx context.Context, eventID string, input domain.DraftUpdate) (*domain.BookingDraft, error) {
	draft, err := s.cache.Draft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if input.MainParticipant != nil {
		draft.MainParticipant = *input.MainParticipant
	}
	if input.IsGroupBooking != nil {
		draft.SetGroupBooking(*input.IsGroupBooking)
	}
	if input.AdditionalParticipants != nil {
		if !draft.IsGroupBooking && len(*input.AdditionalParticipants) > 0 {
			return nil, fmt.Errorf("%w: additional participants require group booking", domain.ErrValidation)
		}
		draft.AdditionalParticipants = *input.AdditionalParticipants
	}

	draft.UpdatedAt = time.Now().UTC()
	if err := s.cache.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return draft, nil
}

func (s *DraftService) Advance(ctx context.Context, eventID string) (*domain.BookingDraft, error) {
	draft, err := s.cache.Draft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.machine.Advance(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *DraftService) Retreat(ctx context.Context, eventID string) (*domain.BookingDraft, error) {
	draft, err := s.cache.Draft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.machine.Retreat(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// Quote recomputes the breakdown for the draft as it stands.
func (s *DraftService) Quote(ctx context.Context, eventID string) (*domain.PricingBreakdown, error) {
	draft, err := s.cache.Draft(ctx, eventID)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.ComputeBreakdown(
		draft.Event.BasePrice,
		draft.TotalParticipants(),
		s.pricingCfg.DiscountRate,
		s.pricingCfg.DepositRate,
	)
	if err != nil {
		return nil, err
	}

	return &breakdown, nil
}

// Cancel drops the draft from the cache. It is the explicit user
// cancellation path; committed bookings are unaffected.
func (s *DraftService) Cancel(ctx context.Context, eventID string) error {
	if _, err := s.cache.Draft(ctx, eventID); err != nil {
		return err
	}

	if err := s.cache.RemoveDraft(ctx, eventID); err != nil {
		return fmt.Errorf("remove draft: %w", err)
	}

	s.logger.Info("draft cancelled", logger.String("event_id", eventID))

	return nil
}
