package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/cache"
	"ceremonia/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestCache(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func validDraft(groupBooking bool) *domain.BookingDraft {
	return &domain.BookingDraft{
		Event: domain.EventSnapshot{
			EventID:   "ev-1",
			Name:      "Cacao Ceremony",
			BasePrice: 100000,
			Currency:  "COP",
		},
		MainParticipant: domain.MainParticipant{
			Participant: domain.Participant{
				Name:             "Alice Smith",
				Email:            "alice@example.com",
				Phone:            "+57 300 000 0000",
				Age:              30,
				EmergencyContact: "Bob +57 300 000 0001",
			},
			PaymentMethod:  "card",
			WhatsAppNumber: "+57 300 000 0000",
		},
		IsGroupBooking: groupBooking,
		CurrentStep:    domain.StepPersonalInfo,
	}
}

func TestNextStep(t *testing.T) {
	tests := []struct {
		name    string
		current domain.Step
		group   bool
		want    domain.Step
	}{
		{"solo skips participants", domain.StepPersonalInfo, false, domain.StepPaymentInfo},
		{"group visits participants", domain.StepPersonalInfo, true, domain.StepAdditionalParticipants},
		{"participants to payment", domain.StepAdditionalParticipants, true, domain.StepPaymentInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStep(tt.current, tt.group)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStep_Terminal(t *testing.T) {
	_, err := NextStep(domain.StepPaymentInfo, false)
	assert.ErrorIs(t, err, domain.ErrTerminalStep)

	_, err = NextStep(domain.StepPaymentInfo, true)
	assert.ErrorIs(t, err, domain.ErrTerminalStep)
}

func TestNextStep_UnknownStep(t *testing.T) {
	_, err := NextStep(domain.Step("review"), false)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrevStep(t *testing.T) {
	tests := []struct {
		name    string
		current domain.Step
		group   bool
		want    domain.Step
	}{
		{"solo payment back to personal", domain.StepPaymentInfo, false, domain.StepPersonalInfo},
		{"group payment back to participants", domain.StepPaymentInfo, true, domain.StepAdditionalParticipants},
		{"participants back to personal", domain.StepAdditionalParticipants, true, domain.StepPersonalInfo},
		{"first step stays put", domain.StepPersonalInfo, false, domain.StepPersonalInfo},
		{"first step stays put in group", domain.StepPersonalInfo, true, domain.StepPersonalInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevStep(tt.current, tt.group))
		})
	}
}

func TestPrevStep_InvertsNextStep(t *testing.T) {
	for _, group := range []bool{false, true} {
		for _, step := range []domain.Step{domain.StepPersonalInfo, domain.StepAdditionalParticipants} {
			if step == domain.StepAdditionalParticipants && !group {
				continue
			}
			next, err := NextStep(step, group)
			require.NoError(t, err)
			assert.Equal(t, step, PrevStep(next, group))
		}
	}
}

func TestMachine_Advance_WritesThrough(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	draft := validDraft(false)
	require.NoError(t, store.SaveDraft(ctx, draft))

	require.NoError(t, m.Advance(ctx, draft))
	assert.Equal(t, domain.StepPaymentInfo, draft.CurrentStep)

	stored, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentInfo, stored.CurrentStep)
}

func TestMachine_Advance_GroupBranch(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	draft := validDraft(true)
	require.NoError(t, store.SaveDraft(ctx, draft))

	require.NoError(t, m.Advance(ctx, draft))
	assert.Equal(t, domain.StepAdditionalParticipants, draft.CurrentStep)

	require.NoError(t, m.Advance(ctx, draft))
	assert.Equal(t, domain.StepPaymentInfo, draft.CurrentStep)
}

func TestMachine_Advance_ValidationBlocks(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	draft := validDraft(false)
	draft.MainParticipant.Email = "not-an-email"
	require.NoError(t, store.SaveDraft(ctx, draft))

	err := m.Advance(ctx, draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.StepPersonalInfo, draft.CurrentStep)

	stored, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonalInfo, stored.CurrentStep)
}

func TestMachine_Advance_Terminal(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	draft := validDraft(false)
	draft.CurrentStep = domain.StepPaymentInfo
	require.NoError(t, store.SaveDraft(ctx, draft))

	err := m.Advance(ctx, draft)
	assert.ErrorIs(t, err, domain.ErrTerminalStep)
	assert.Equal(t, domain.StepPaymentInfo, draft.CurrentStep)
}

func TestMachine_Retreat_NeverValidates(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	// A draft with garbage personal info can still go backward.
	draft := validDraft(false)
	draft.MainParticipant = domain.MainParticipant{}
	draft.CurrentStep = domain.StepPaymentInfo
	require.NoError(t, store.SaveDraft(ctx, draft))

	require.NoError(t, m.Retreat(ctx, draft))
	assert.Equal(t, domain.StepPersonalInfo, draft.CurrentStep)

	stored, err := store.Draft(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonalInfo, stored.CurrentStep)
}

func TestMachine_Retreat_FirstStepStays(t *testing.T) {
	store := newTestCache(t)
	m := NewMachine(store, newTestLogger(t))
	ctx := context.Background()

	draft := validDraft(false)
	require.NoError(t, store.SaveDraft(ctx, draft))

	require.NoError(t, m.Retreat(ctx, draft))
	assert.Equal(t, domain.StepPersonalInfo, draft.CurrentStep)
}
