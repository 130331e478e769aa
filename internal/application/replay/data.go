package replay

import (
	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// TickInput records the moves drained on a single tick.
// Ticks without moves are not stored.
type TickInput struct {
	T     uint64             `json:"t"` // Tick number, 1-based
	Moves []entity.Direction `json:"m"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string            `json:"version"`
	SessionID string            `json:"session"`
	Seed      uint64            `json:"seed"`
	Config    config.GameConfig `json:"config"`
	StartTime string            `json:"startTime"`
	Ticks     uint64            `json:"ticks"`    // last recorded tick
	GameOver  bool              `json:"gameOver"` // the game ended on Ticks
	Inputs    []TickInput       `json:"inputs"`
}
