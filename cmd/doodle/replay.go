package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/younwookim/doodle/internal/application/replay"
	"github.com/younwookim/doodle/internal/application/session"
	"github.com/younwookim/doodle/internal/application/state"
	"github.com/younwookim/doodle/internal/application/system"
	"github.com/younwookim/doodle/internal/application/world"
)

// replayResult summarizes a headless re-run of a recording
type replayResult struct {
	Ticks    uint64
	GameOver bool
	Final    world.Snapshot
}

// runReplay feeds the recorded moves into a fresh session, tick by tick,
// without a window or wall clock
func runReplay(data *replay.ReplayData) (replayResult, error) {
	rp := replay.NewReplayer(*data)

	// The queue must hold the busiest recorded tick
	capacity := system.DefaultQueueCapacity
	for _, in := range data.Inputs {
		capacity = max(capacity, len(rp.MovesAt(in.T)))
	}

	cfg := data.Config
	sess, err := session.New(&cfg, rp.Seed(),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		session.WithQueueCapacity(capacity),
	)
	if err != nil {
		return replayResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	for tick := uint64(1); tick <= rp.TotalTicks(); tick++ {
		if sess.State() == state.StateGameOver {
			break
		}
		for _, dir := range rp.MovesAt(tick) {
			sess.Push(dir)
		}
		sess.Tick()
	}

	return replayResult{
		Ticks:    sess.Ticks(),
		GameOver: sess.State() == state.StateGameOver,
		Final:    sess.Snapshot(),
	}, nil
}

// verifyReplay re-runs a recording and checks it ends on the same tick
// in the same state
func verifyReplay(filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	res, err := runReplay(data)
	if err != nil {
		return err
	}

	if res.Ticks != data.Ticks || res.GameOver != data.GameOver {
		return fmt.Errorf("%w: recorded %d ticks (game over: %t), re-run reached %d (game over: %t)",
			replay.ErrDiverged, data.Ticks, data.GameOver, res.Ticks, res.GameOver)
	}

	log.Printf("Replay verified: %s (session %s, seed %d, %d ticks, game over: %t)",
		filename, data.SessionID, data.Seed, res.Ticks, res.GameOver)
	return nil
}
