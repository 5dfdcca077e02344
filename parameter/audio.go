package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Impact Sound
const (
	ImpactSoundDuration = 120 * time.Millisecond

	// ImpactMinImpulse is the quietest contact that makes a sound
	ImpactMinImpulse = 0.5

	// ImpactMaxImpulse maps to full volume and lowest pitch
	ImpactMaxImpulse = 200.0

	// ImpactHighFreq and ImpactLowFreq bound the pitch range (Hz)
	ImpactHighFreq = 1200.0
	ImpactLowFreq  = 180.0

	// MinSoundGap between consecutive impact sounds
	MinSoundGap = 30 * time.Millisecond

	// DefaultMasterVolume is used when KINETIC_MASTER_VOLUME is unset
	DefaultMasterVolume = 0.6
)
