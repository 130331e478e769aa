package session

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/doodle/internal/application/state"
	"github.com/younwookim/doodle/internal/application/world"
	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createDoomedConfig has only the start platform, so stepping off it is fatal
func createDoomedConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Platform.Count = 0
	return cfg
}

// stepOffPlatform queues enough right moves to clear the 100-wide start platform
func stepOffPlatform(s *Session) {
	for i := 0; i < 10; i++ {
		s.Push(entity.DirRight)
	}
}

func createTestSession(t *testing.T, cfg *config.GameConfig, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	s, err := New(cfg, 7, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := createTestSession(t, config.Default())

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, uint64(7), s.Seed())
	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, uint64(0), s.Ticks())
	assert.Nil(t, s.Recorder(), "recording is off by default")

	other := createTestSession(t, config.Default())
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Doodler.Gravity = 0

	s, err := New(cfg, 1, WithLogger(discardLogger()))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewSeed(t *testing.T) {
	cfg := config.Default()
	seed := uint64(99)
	cfg.Seed = &seed
	assert.Equal(t, uint64(99), NewSeed(cfg))

	cfg.Seed = nil
	assert.NotPanics(t, func() { NewSeed(cfg) })
}

func TestSession_TickAppliesMovesInOrder(t *testing.T) {
	s := createTestSession(t, config.Default())
	start := s.Snapshot().Doodler.Position.X

	s.Push(entity.DirRight)
	s.Push(entity.DirRight)
	s.Push(entity.DirLeft)
	s.Tick()

	assert.Equal(t, start+10, s.Snapshot().Doodler.Position.X)
	assert.Equal(t, uint64(1), s.Ticks())

	// Moves are consumed by the tick that drained them
	s.Tick()
	assert.Equal(t, start+10, s.Snapshot().Doodler.Position.X)
}

func TestSession_GameOver(t *testing.T) {
	var logs bytes.Buffer
	s, err := New(createDoomedConfig(), 1,
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithRecorder(),
	)
	require.NoError(t, err)

	stepOffPlatform(s)
	for i := 0; i < 1000 && s.State() == state.StateRunning; i++ {
		s.Tick()
	}

	require.Equal(t, state.StateGameOver, s.State())
	assert.True(t, s.Snapshot().Over)
	assert.Contains(t, logs.String(), "game over")

	// Terminal: ticks stop counting and the world stays put
	ticks := s.Ticks()
	frozen := s.Snapshot()
	s.Push(entity.DirLeft)
	assert.Equal(t, world.TickResult{}, s.Tick())
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, frozen, s.Snapshot())

	data := s.Recorder().Data()
	assert.Equal(t, ticks, data.Ticks)
	require.Len(t, data.Inputs, 1)
	assert.Equal(t, uint64(1), data.Inputs[0].T)
	assert.Len(t, data.Inputs[0].Moves, 10)
}

func TestSession_Restart(t *testing.T) {
	var logs bytes.Buffer
	s, err := New(createDoomedConfig(), 1,
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithRecorder(),
	)
	require.NoError(t, err)
	id := s.ID()
	oldRecorder := s.Recorder()

	stepOffPlatform(s)
	for i := 0; i < 1000 && s.State() == state.StateRunning; i++ {
		s.Tick()
	}
	require.Equal(t, state.StateGameOver, s.State())

	s.Push(entity.DirLeft)
	require.NoError(t, s.Restart(2))

	assert.Equal(t, state.StateRunning, s.State())
	assert.Equal(t, uint64(0), s.Ticks())
	assert.Equal(t, uint64(2), s.Seed())
	assert.Equal(t, id, s.ID(), "restart keeps the session id")
	assert.NotSame(t, oldRecorder, s.Recorder())
	assert.Equal(t, uint64(2), s.Recorder().Data().Seed)
	assert.Contains(t, logs.String(), "session restarted")

	// The stale move pushed before Restart was discarded
	fresh, err := New(createDoomedConfig(), 2, WithLogger(discardLogger()))
	require.NoError(t, err)
	s.Tick()
	fresh.Tick()
	assert.Equal(t, fresh.Snapshot(), s.Snapshot())
}

func TestSession_RestartDuringTicks(t *testing.T) {
	for round := 0; round < 50; round++ {
		s := createTestSession(t, config.Default(), WithRecorder(), WithQueueCapacity(1000))

		stop := make(chan struct{})
		ticking := make(chan struct{})
		go func() {
			defer close(ticking)
			for {
				select {
				case <-stop:
					return
				default:
					s.Tick()
				}
			}
		}()

		for i := 0; i < 100; i++ {
			s.Push(entity.DirLeft)
		}
		require.NoError(t, s.Restart(uint64(round)))
		// Give the ticker a chance to run against the new game
		time.Sleep(time.Millisecond)
		close(stop)
		<-ticking

		// Nothing was pushed after Restart, so no move may reach the new game
		assert.Zero(t, s.Recorder().InputCount(), "round %d", round)
	}
}

func TestSession_Deterministic(t *testing.T) {
	a := createTestSession(t, config.Default())
	b := createTestSession(t, config.Default())

	for i := 0; i < 2000; i++ {
		if i%9 == 0 {
			a.Push(entity.DirLeft)
			b.Push(entity.DirLeft)
		}
		assert.Equal(t, a.Tick(), b.Tick())
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.State(), b.State())
}

func TestSession_ConcurrentPush(t *testing.T) {
	s := createTestSession(t, config.Default(), WithQueueCapacity(1000))

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Push(entity.DirLeft)
				s.Push(entity.DirRight)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	wg.Wait()
	s.Tick()

	// Every left has a matching right, so the doodler ends where it started
	assert.Equal(t, 170.0, s.Snapshot().Doodler.Position.X)
	assert.Equal(t, uint64(0), s.Dropped())
}

func TestSession_Run_UntilGameOver(t *testing.T) {
	s := createTestSession(t, createDoomedConfig())
	stepOffPlatform(s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var snaps []world.Snapshot
	died := false
	err := s.Run(ctx, time.Millisecond, func(snap world.Snapshot, res world.TickResult) {
		snaps = append(snaps, snap)
		died = died || res.Died
	})

	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, s.State())
	assert.True(t, died)
	require.Len(t, snaps, int(s.Ticks()))
	assert.True(t, snaps[len(snaps)-1].Over)

	// Already over: returns immediately
	assert.NoError(t, s.Run(ctx, time.Millisecond, nil))
}

func TestSession_Run_Cancel(t *testing.T) {
	s := createTestSession(t, config.Default())

	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	err := s.Run(ctx, time.Millisecond, func(world.Snapshot, world.TickResult) {
		ticks++
		if ticks == 5 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, ticks)
	assert.Equal(t, state.StateRunning, s.State())
}

func TestSession_Run_BadInterval(t *testing.T) {
	s := createTestSession(t, config.Default())
	assert.Error(t, s.Run(context.Background(), 0, nil))
}
