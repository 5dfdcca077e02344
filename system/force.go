package system

import (
	"time"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/vmath"
)

// ForceGenerator produces a continuous force for one body per tick
type ForceGenerator interface {
	Force(b *physics.Body) vmath.Vec2
}

// ForceGeneratorFunc adapts a function to ForceGenerator
type ForceGeneratorFunc func(b *physics.Body) vmath.Vec2

func (f ForceGeneratorFunc) Force(b *physics.Body) vmath.Vec2 { return f(b) }

// Gravity is a uniform field, F = m·g
type Gravity struct {
	G vmath.Vec2
}

func (g Gravity) Force(b *physics.Body) vmath.Vec2 {
	return g.G.Scale(b.Mass())
}

// Drag opposes velocity linearly, F = -c·v
type Drag struct {
	Coefficient float64
}

func (d Drag) Force(b *physics.Body) vmath.Vec2 {
	return b.Velocity().Scale(-d.Coefficient)
}

// Wind pushes every body with the same force regardless of mass
type Wind struct {
	F vmath.Vec2
}

func (w Wind) Force(b *physics.Body) vmath.Vec2 {
	return w.F
}

// ForceSystem accumulates continuous forces into every non-static body, then applies springs
type ForceSystem struct {
	gravity    Gravity
	generators []ForceGenerator

	gravityEnabled bool
	springsEnabled bool
}

// NewForceSystem creates a force system with downward gravity of magnitude g
func NewForceSystem(g float64, generators ...ForceGenerator) *ForceSystem {
	return &ForceSystem{
		gravity:        Gravity{G: vmath.Down.Scale(g)},
		generators:     generators,
		gravityEnabled: true,
		springsEnabled: true,
	}
}

// Priority returns the system's priority
func (s *ForceSystem) Priority() int {
	return parameter.PriorityForce
}

// AddGenerator appends an extra force field
func (s *ForceSystem) AddGenerator(g ForceGenerator) {
	s.generators = append(s.generators, g)
}

// SetGravity replaces the gravity vector
func (s *ForceSystem) SetGravity(g vmath.Vec2) {
	s.gravity.G = g
}

func (s *ForceSystem) Gravity() vmath.Vec2 { return s.gravity.G }
func (s *ForceSystem) GravityEnabled() bool { return s.gravityEnabled }
func (s *ForceSystem) SpringsEnabled() bool { return s.springsEnabled }
func (s *ForceSystem) SetGravityEnabled(enabled bool) { s.gravityEnabled = enabled }
func (s *ForceSystem) SetSpringsEnabled(enabled bool) { s.springsEnabled = enabled }

// Update accumulates forces for this tick
// Static bodies are skipped, nothing else would clear their accumulator
func (s *ForceSystem) Update(world *engine.World, dt time.Duration) {
	for _, b := range world.Bodies() {
		if b.IsStatic() {
			continue
		}
		if s.gravityEnabled {
			b.AddForce(s.gravity.Force(b))
		}
		for _, g := range s.generators {
			b.AddForce(g.Force(b))
		}
	}

	if !s.springsEnabled {
		return
	}
	for _, sp := range world.Springs() {
		sp.ApplyForce()
	}
}
