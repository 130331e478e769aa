package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

func createTestInputConfig() config.InputConfig {
	return config.InputConfig{
		RepeatDelay:    30,
		RepeatInterval: 4,
	}
}

func TestNewInputSystem(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	assert.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
}

func TestInputSystem_Directions(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())

	tests := []struct {
		name  string
		input InputState
		want  []entity.Direction
	}{
		{"nothing held", InputState{}, nil},
		{"left just pressed", InputState{Left: 1}, []entity.Direction{entity.DirLeft}},
		{"right just pressed", InputState{Right: 1}, []entity.Direction{entity.DirRight}},
		{"both just pressed", InputState{Left: 1, Right: 1}, []entity.Direction{entity.DirLeft, entity.DirRight}},
		{"held before repeat delay", InputState{Left: 2}, nil},
		{"held just under delay", InputState{Left: 29}, nil},
		{"first repeat", InputState{Left: 30}, []entity.Direction{entity.DirLeft}},
		{"between repeats", InputState{Right: 31}, nil},
		{"second repeat", InputState{Right: 34}, []entity.Direction{entity.DirRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Directions(tt.input))
		})
	}
}

func TestInputSystem_RepeatRate(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())

	// Holding right for 2 seconds at 120 ticks/sec
	fired := 0
	for held := 1; held <= 240; held++ {
		fired += len(sys.Directions(InputState{Right: held}))
	}

	// 1 initial press + repeats at 30, 34, ..., 238
	assert.Equal(t, 1+(238-30)/4+1, fired)
}

func TestInputSystem_RepeatDisabled(t *testing.T) {
	sys := NewInputSystem(config.InputConfig{RepeatDelay: 0, RepeatInterval: 4})

	fired := 0
	for held := 1; held <= 120; held++ {
		fired += len(sys.Directions(InputState{Left: held}))
	}
	assert.Equal(t, 1, fired, "no delay configured means one event per key press")
}
