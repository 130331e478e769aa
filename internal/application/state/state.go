package state

// GameState represents the current state of a session
type GameState int

const (
	// StateRunning is the initial state; every tick advances the world
	StateRunning GameState = iota
	// StatePaused stops ticking without touching the world (frontend only)
	StatePaused
	// StateGameOver is terminal. Only a restart leaves it.
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further ticks can change the world
func (s GameState) Terminal() bool {
	return s == StateGameOver
}
