package system

import (
	"time"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/vmath"
)

// MotionSystem integrates accumulated forces into velocity and position
type MotionSystem struct {
	integrator physics.Integrator

	// Reused per tick
	bodies []*physics.Body
	accels []vmath.Vec2
}

// NewMotionSystem creates a motion system, nil selects semi-implicit Euler
func NewMotionSystem(integrator physics.Integrator) *MotionSystem {
	if integrator == nil {
		integrator = physics.SemiImplicitEuler{}
	}
	return &MotionSystem{
		integrator: integrator,
		bodies:     make([]*physics.Body, 0, 64),
		accels:     make([]vmath.Vec2, 0, 64),
	}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Integrator() physics.Integrator { return s.integrator }

// SetIntegrator swaps the scheme, nil is ignored
func (s *MotionSystem) SetIntegrator(integrator physics.Integrator) {
	if integrator != nil {
		s.integrator = integrator
	}
}

// Update runs two phases in strict order
// Acceleration phase reads F/m and resets every dynamic accumulator before any body moves
// Integration phase then advances each dynamic body with the configured scheme
func (s *MotionSystem) Update(world *engine.World, dt time.Duration) {
	step := dt.Seconds()

	s.bodies = s.bodies[:0]
	s.accels = s.accels[:0]
	for _, b := range world.Bodies() {
		if b.IsStatic() {
			continue
		}
		s.bodies = append(s.bodies, b)
		s.accels = append(s.accels, physics.TakeAcceleration(b))
	}

	for i, b := range s.bodies {
		s.integrator.Advance(b, s.accels[i], step)
	}
}
