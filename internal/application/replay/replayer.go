package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kamstrup/intmap"

	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// ErrDiverged is returned when a re-run does not end where the recording did
var ErrDiverged = errors.New("replay: simulation diverged from recording")

// Replayer serves recorded moves by tick
type Replayer struct {
	data  ReplayData
	moves *intmap.Map[uint64, []entity.Direction]
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	moves := intmap.New[uint64, []entity.Direction](len(data.Inputs))
	for _, in := range data.Inputs {
		prev, _ := moves.Get(in.T)
		moves.Put(in.T, append(prev, in.Moves...))
	}
	return &Replayer{data: data, moves: moves}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load replay config: %w", err)
	}

	return &data, nil
}

// MovesAt returns the moves recorded for tick, nil if there were none
func (r *Replayer) MovesAt(tick uint64) []entity.Direction {
	moves, ok := r.moves.Get(tick)
	if !ok {
		return nil
	}
	return moves
}

// TotalTicks returns the number of recorded ticks
func (r *Replayer) TotalTicks() uint64 {
	return r.data.Ticks
}

// GameOver reports whether the recorded game ended on its last tick
func (r *Replayer) GameOver() bool {
	return r.data.GameOver
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}

// Config returns the config the recorded session ran with
func (r *Replayer) Config() config.GameConfig {
	return r.data.Config
}
