package engine

import (
	"sync"
	"time"
)

// Stepper converts elapsed wall time into a count of fixed simulation steps
// Backlog beyond maxSteps is dropped so a stalled frame cannot cause a catch-up spiral
type Stepper struct {
	mu sync.Mutex

	provider TimeProvider
	step     time.Duration
	maxSteps int

	last        time.Time
	accumulator time.Duration

	paused  bool
	pending int // Single-step requests honored while paused
}

// NewStepper creates a stepper starting at the provider's current time
// Non-positive step or maxSteps fall back to one millisecond and one step
func NewStepper(provider TimeProvider, step time.Duration, maxSteps int) *Stepper {
	if step <= 0 {
		step = time.Millisecond
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Stepper{
		provider: provider,
		step:     step,
		maxSteps: maxSteps,
		last:     provider.Now(),
	}
}

// Step returns the fixed step duration
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance returns how many fixed steps are due since the previous call
func (s *Stepper) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.provider.Now()
	elapsed := now.Sub(s.last)
	s.last = now

	if s.paused {
		n := s.pending
		s.pending = 0
		return n
	}

	if elapsed > 0 {
		s.accumulator += elapsed
	}
	n := int(s.accumulator / s.step)
	if n > s.maxSteps {
		n = s.maxSteps
		s.accumulator = 0
		return n
	}
	s.accumulator -= time.Duration(n) * s.step
	return n
}

// Pause stops time accumulation
func (s *Stepper) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	s.accumulator = 0
}

// Resume restarts accumulation from now, paused time is never replayed
func (s *Stepper) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
	s.pending = 0
	s.last = s.provider.Now()
}

// TogglePause flips the pause state and returns the new state
func (s *Stepper) TogglePause() bool {
	if s.IsPaused() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// IsPaused returns current pause state
func (s *Stepper) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// StepOnce queues one step to be returned by the next Advance while paused
// Ignored while running
func (s *Stepper) StepOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		s.pending++
	}
}
