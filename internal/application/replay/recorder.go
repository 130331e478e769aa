package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// ErrNoInputs is returned when saving a recording that never advanced a tick
var ErrNoInputs = errors.New("replay: nothing recorded")

// Recorder handles input recording for replay
type Recorder struct {
	data  ReplayData
	moves *intmap.Map[uint64, []entity.Direction]
	order []uint64 // ticks in the order they were recorded
	last  uint64
}

// NewRecorder creates a new recorder with the seed and config needed for deterministic replay
func NewRecorder(sessionID string, seed uint64, cfg config.GameConfig) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			SessionID: sessionID,
			Seed:      seed,
			Config:    cfg,
			StartTime: time.Now().Format(time.RFC3339),
		},
		moves: intmap.New[uint64, []entity.Direction](256),
	}
}

// RecordTick records the moves applied on tick. Empty ticks only advance the tick counter.
func (r *Recorder) RecordTick(tick uint64, moves []entity.Direction) {
	if tick > r.last {
		r.last = tick
	}
	if len(moves) == 0 {
		return
	}

	prev, ok := r.moves.Get(tick)
	if !ok {
		r.order = append(r.order, tick)
	}
	r.moves.Put(tick, append(prev, moves...))
}

// Finish marks the tick on which the game ended
func (r *Recorder) Finish(tick uint64) {
	r.data.GameOver = true
	r.last = tick
}

// InputCount returns the number of ticks that carried moves
func (r *Recorder) InputCount() int {
	return r.moves.Len()
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	data := r.data
	data.Ticks = r.last
	data.Inputs = make([]TickInput, 0, len(r.order))
	for _, tick := range r.order {
		moves, _ := r.moves.Get(tick)
		data.Inputs = append(data.Inputs, TickInput{T: tick, Moves: moves})
	}
	return data
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.last == 0 {
		return ErrNoInputs
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.Data()); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
