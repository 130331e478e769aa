// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	bounceFreq     = 880.0
	bounceLength   = 50 * time.Millisecond
	gameOverFreq   = 220.0
	gameOverLength = 400 * time.Millisecond

	// volume is in beep's log scale: -1 halves amplitude
	volume = -1.0
)

// Blipper plays short tones for game events.
// Every method is a no-op until Init succeeds, so a missing sound device
// never stops the game.
type Blipper struct {
	mu          sync.Mutex
	initialized bool
}

// NewBlipper creates a blipper; call Init before it makes any sound
func NewBlipper() *Blipper {
	return &Blipper{}
}

// Init opens the speaker
func (b *Blipper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// Bounce plays a short high blip
func (b *Blipper) Bounce() {
	b.play(bounceFreq, bounceLength)
}

// GameOver plays a longer low tone
func (b *Blipper) GameOver() {
	b.play(gameOverFreq, gameOverLength)
}

// Close releases the speaker
func (b *Blipper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

func (b *Blipper) play(freq float64, length time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	s, err := tone(freq, length)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// tone builds a finite sine tone at a reduced volume
func tone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}
