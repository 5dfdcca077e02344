package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// strike is a single percussive voice: an oscillator under an exponential decay
type strike struct {
	freq  float64
	phase float64
	wave  WaveType
	rate  beep.SampleRate

	position int
	total    int
	decay    float64 // Per-sample gain multiplier
	gain     float64
}

// NewStrike creates a decaying tone of the given length
// The envelope falls to about 1/1000 of its start over the duration
func NewStrike(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	decay := 1.0
	if total > 0 {
		decay = math.Pow(1e-3, 1/float64(total))
	}
	return &strike{
		freq:  freq,
		wave:  wave,
		rate:  rate,
		total: total,
		decay: decay,
		gain:  1,
	}
}

func (s *strike) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= s.gain

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.gain *= s.decay
		s.position++
	}
	return len(samples), true
}

func (s *strike) Err() error { return nil }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
