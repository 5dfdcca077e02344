package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/kinetic/parameter"
)

// ImpactConfig controls contact sound synthesis
type ImpactConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	MinImpulse   float64
	MaxImpulse   float64
	MinGap       time.Duration
}

// DefaultImpactConfig returns the parameter defaults, audio enabled
func DefaultImpactConfig() *ImpactConfig {
	return &ImpactConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		MinImpulse:   parameter.ImpactMinImpulse,
		MaxImpulse:   parameter.ImpactMaxImpulse,
		MinGap:       parameter.MinSoundGap,
	}
}

// LoadImpactConfig loads audio configuration from environment variables
func LoadImpactConfig() *ImpactConfig {
	cfg := DefaultImpactConfig()

	if enabled := os.Getenv("KINETIC_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("KINETIC_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("KINETIC_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
