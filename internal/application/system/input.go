package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// InputSystem turns polled keyboard state into discrete move events
type InputSystem struct {
	config config.InputConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds how long each direction key has been held, in ticks.
// 0 means released.
type InputState struct {
	Left  int
	Right int
}

// GetInput reads the current input state (arrow keys or A/D)
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  max(inpututil.KeyPressDuration(ebiten.KeyArrowLeft), inpututil.KeyPressDuration(ebiten.KeyA)),
		Right: max(inpututil.KeyPressDuration(ebiten.KeyArrowRight), inpututil.KeyPressDuration(ebiten.KeyD)),
	}
}

// Directions converts an input state into the move events for this tick.
// A key fires on the tick it goes down, then repeats every RepeatInterval
// ticks once it has been held for RepeatDelay ticks, like keyboard auto-repeat.
func (s *InputSystem) Directions(input InputState) []entity.Direction {
	var dirs []entity.Direction
	if s.fires(input.Left) {
		dirs = append(dirs, entity.DirLeft)
	}
	if s.fires(input.Right) {
		dirs = append(dirs, entity.DirRight)
	}
	return dirs
}

// Poll reads the keyboard and returns this tick's move events
func (s *InputSystem) Poll() []entity.Direction {
	return s.Directions(s.GetInput())
}

func (s *InputSystem) fires(held int) bool {
	if held <= 0 {
		return false
	}
	if held == 1 {
		return true
	}

	delay, interval := s.config.RepeatDelay, s.config.RepeatInterval
	if delay <= 0 || interval <= 0 || held < delay {
		return false
	}
	return (held-delay)%interval == 0
}
