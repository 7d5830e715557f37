package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
	"ceremonia/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ResumesPending(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	booking := &domain.PersistedBooking{
		BookingReference: "bk-alice-deadbeef",
		SyncState:        domain.SyncRemoteConfirmed,
		RemoteID:         "remote-42",
	}
	syncer.EXPECT().ResumeSync(mock.Anything).Return(booking, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_NothingPending(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	syncer.EXPECT().ResumeSync(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_AuthStillBlocked(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	syncer.EXPECT().ResumeSync(mock.Anything).Return(nil, domain.ErrAuthRefresh)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	syncer.EXPECT().ResumeSync(mock.Anything).Return(nil, errors.New("cache error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	syncer := mocks.NewMockPendingSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 30*time.Millisecond, log)

	syncer.EXPECT().ResumeSync(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 3)
}
