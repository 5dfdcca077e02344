package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/system"
)

// ImpactPlayer turns resolved contacts into short percussive sounds
type ImpactPlayer struct {
	mu          sync.Mutex
	cfg         *ImpactConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// output queues a streamer, replaced in tests
	output func(beep.Streamer)
	now    func() time.Time
	last   time.Time
	played int
}

// NewImpactPlayer creates a player, nil config selects defaults
func NewImpactPlayer(cfg *ImpactConfig) *ImpactPlayer {
	if cfg == nil {
		cfg = DefaultImpactConfig()
	}
	return &ImpactPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker, a disabled config is a silent no-op
func (p *ImpactPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.output = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	log.Printf("Audio initialized at %d Hz", p.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (p *ImpactPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.output = nil
	p.initialized = false
}

// SetMuted toggles output without closing the speaker
func (p *ImpactPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// IsMuted returns the mute state
func (p *ImpactPlayer) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many sounds were queued
func (p *ImpactPlayer) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// OnContact is a system.ContactListener
// Separating contacts and impulses below the threshold are silent, sounds closer than MinGap are dropped
func (p *ImpactPlayer) OnContact(ev system.ContactEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.output == nil || p.muted || ev.Impulse < p.cfg.MinImpulse {
		return
	}

	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.cfg.MinGap {
		return
	}
	p.last = now

	p.output(ImpactSound(ev.Impulse, p.cfg))
	p.played++
}

// ImpactSound synthesizes one contact sound, harder hits are louder and lower
func ImpactSound(impulse float64, cfg *ImpactConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	t := impactStrength(impulse, cfg.MinImpulse, cfg.MaxImpulse)

	freq := parameter.ImpactHighFreq + (parameter.ImpactLowFreq-parameter.ImpactHighFreq)*t
	body := NewStrike(freq, parameter.ImpactSoundDuration, WaveTriangle, rate)
	click := NewStrike(0, parameter.ImpactSoundDuration/4, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(body, 0.8),
		newVolume(click, 0.2),
	)
	return newVolume(mixed, (0.2+0.8*t)*cfg.MasterVolume)
}

// impactStrength maps impulse onto [0, 1] on a log scale
func impactStrength(impulse, lo, hi float64) float64 {
	if !(impulse > lo) || !(hi > lo) {
		return 0
	}
	if lo <= 0 {
		return clamp01(impulse / hi)
	}
	if impulse >= hi {
		return 1
	}
	return math.Log(impulse/lo) / math.Log(hi/lo)
}
