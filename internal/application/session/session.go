// Package session ties a World to its input queue, state machine and recorder.
// Frontends own a Session and drive it tick by tick.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/doodle/internal/application/replay"
	"github.com/younwookim/doodle/internal/application/state"
	"github.com/younwookim/doodle/internal/application/system"
	"github.com/younwookim/doodle/internal/application/world"
	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// Option configures a Session
type Option func(*Session)

// WithLogger sets the structured logger for lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRecorder records every tick's moves so the game can be replayed
func WithRecorder() Option {
	return func(s *Session) {
		s.record = true
	}
}

// WithQueueCapacity bounds the number of input events buffered between ticks
func WithQueueCapacity(capacity int) Option {
	return func(s *Session) {
		s.queue = system.NewInputQueue(capacity)
	}
}

// Session is one player's game: a world, the queue feeding it and its state.
//
// Thread-Safety:
//   - Push: any goroutine
//   - Tick, Restart, Snapshot and the getters: serialized internally
type Session struct {
	id     string
	logger *slog.Logger
	record bool
	queue  *system.InputQueue

	mu       sync.Mutex
	cfg      config.GameConfig
	seed     uint64
	world    *world.World
	state    state.GameState
	ticks    uint64
	recorder *replay.Recorder
}

// NewSeed returns the configured seed, or a time-based one when none is set
func NewSeed(cfg *config.GameConfig) uint64 {
	if seed, ok := cfg.SeedValue(); ok {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// New creates a running session whose world is generated from cfg and seed
func New(cfg *config.GameConfig, seed uint64, opts ...Option) (*Session, error) {
	w, err := world.New(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s := &Session{
		id:     uuid.NewString(),
		logger: slog.Default(),
		queue:  system.NewInputQueue(system.DefaultQueueCapacity),
		cfg:    *cfg,
		seed:   seed,
		world:  w,
		state:  state.StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.record {
		s.recorder = replay.NewRecorder(s.id, seed, s.cfg)
	}

	s.logger.Info("session started",
		slog.String("session", s.id),
		slog.Uint64("seed", seed),
		slog.String("config", cfg.Name),
	)
	return s, nil
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// Seed returns the seed of the current world
func (s *Session) Seed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// State returns the current state
func (s *Session) State() state.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns the number of ticks applied since the world was created
func (s *Session) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Recorder returns the active recorder, nil when recording is off
func (s *Session) Recorder() *replay.Recorder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recorder
}

// Dropped returns how many input events were lost to queue overflow
func (s *Session) Dropped() uint64 {
	return s.queue.Dropped()
}

// Push queues a move for the next tick
func (s *Session) Push(dir entity.Direction) {
	s.queue.Push(dir)
}

// Tick applies all queued moves in order, then advances the world one step.
// Once the game is over Tick does nothing.
func (s *Session) Tick() world.TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drained under mu: moves never cross a Restart.
	moves := s.queue.Drain()
	if s.state.Terminal() {
		return world.TickResult{}
	}

	for _, dir := range moves {
		s.world.MoveHorizontal(dir)
	}
	res := s.world.Update()
	s.ticks++

	if s.recorder != nil {
		s.recorder.RecordTick(s.ticks, moves)
	}

	if s.world.IsOver() {
		s.state = state.StateGameOver
		if s.recorder != nil {
			s.recorder.Finish(s.ticks)
		}
		s.logger.Info("game over",
			slog.String("session", s.id),
			slog.Uint64("seed", s.seed),
			slog.Uint64("tick", s.ticks),
		)
	}

	return res
}

// Snapshot returns a copy of the world for rendering
func (s *Session) Snapshot() world.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Snapshot()
}

// Restart rebuilds the world from seed and starts a new game.
// Pending input and the previous recording are discarded.
func (s *Session) Restart(seed uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Drain()
	if err := s.world.Init(&s.cfg, seed); err != nil {
		return fmt.Errorf("failed to restart session: %w", err)
	}
	s.seed = seed
	s.ticks = 0
	s.state = state.StateRunning
	if s.record {
		s.recorder = replay.NewRecorder(s.id, seed, s.cfg)
	}

	s.logger.Info("session restarted",
		slog.String("session", s.id),
		slog.Uint64("seed", seed),
	)
	return nil
}

// Run ticks the session every interval until the game is over or ctx is done.
// onTick, if set, receives the snapshot and result of every tick.
// A slow onTick delays the next tick; missed ticks are dropped, never batched.
func (s *Session) Run(ctx context.Context, interval time.Duration, onTick func(world.Snapshot, world.TickResult)) error {
	if interval <= 0 {
		return fmt.Errorf("session: tick interval must be positive, got %v", interval)
	}
	if s.State().Terminal() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// select picks randomly when both are ready
			if err := ctx.Err(); err != nil {
				return err
			}
			res := s.Tick()
			if onTick != nil {
				onTick(s.Snapshot(), res)
			}
			if s.State().Terminal() {
				return nil
			}
		}
	}
}
