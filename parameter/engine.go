package parameter

import "time"

// Simulation loop timing
const (
	// FixedTimestep is the default physics step
	FixedTimestep = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxStepsPerFrame bounds catch-up steps after a stall
	MaxStepsPerFrame = 8
)

// Default simulation area
const (
	DefaultWorldWidth  = 120.0
	DefaultWorldHeight = 60.0
)
