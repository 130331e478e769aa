package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the number of samples and the peak amplitude
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()

	total, peak := 0, 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestTone_Length(t *testing.T) {
	tests := []struct {
		name   string
		freq   float64
		length time.Duration
	}{
		{"bounce", bounceFreq, bounceLength},
		{"game over", gameOverFreq, gameOverLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tone(tt.freq, tt.length)
			require.NoError(t, err)

			n, peak := drain(t, s)
			assert.Equal(t, sampleRate.N(tt.length), n)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 0.5+1e-9, "volume -1 halves the amplitude")
		})
	}
}

func TestTone_InvalidFrequency(t *testing.T) {
	// Above Nyquist
	_, err := tone(float64(sampleRate), bounceLength)
	assert.Error(t, err)
}

func TestBlipper_UninitializedIsSilent(t *testing.T) {
	b := NewBlipper()

	assert.NotPanics(t, func() {
		b.Bounce()
		b.GameOver()
		b.Close()
	})
}
