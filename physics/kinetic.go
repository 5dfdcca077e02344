package physics

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kinetic/vmath"
)

// ErrUnknownIntegrator is returned by IntegratorByName
var ErrUnknownIntegrator = errors.New("physics: unknown integrator")

// Integrator advances one body's velocity and position given its acceleration
// Implementations must skip static bodies and respect the terminal speed
type Integrator interface {
	Advance(b *Body, accel vmath.Vec2, dt float64)
	Name() string
}

// Acceleration returns F/m for the accumulated force without clearing it
func Acceleration(b *Body) vmath.Vec2 {
	if b.static {
		return vmath.Vec2{}
	}
	return b.force.Scale(b.invMass)
}

// TakeAcceleration returns F/m and resets the force accumulator
// Static bodies are skipped entirely, their accumulator is left untouched
func TakeAcceleration(b *Body) vmath.Vec2 {
	if b.static {
		return vmath.Vec2{}
	}
	a := b.force.Scale(b.invMass)
	b.force.SetZero()
	return a
}

// SemiImplicitEuler is symplectic Euler: v = v + a*dt; p = p + v*dt
type SemiImplicitEuler struct{}

func (SemiImplicitEuler) Name() string { return "semi-implicit-euler" }

func (SemiImplicitEuler) Advance(b *Body, accel vmath.Vec2, dt float64) {
	if b.static {
		return
	}
	b.vel.AddScaledIn(accel, dt)
	b.capSpeed()
	b.pos.AddScaledIn(b.vel, dt)
}

// ExplicitEuler moves with the old velocity: p = p + v*dt; v = v + a*dt
type ExplicitEuler struct{}

func (ExplicitEuler) Name() string { return "explicit-euler" }

func (ExplicitEuler) Advance(b *Body, accel vmath.Vec2, dt float64) {
	if b.static {
		return
	}
	b.pos.AddScaledIn(b.vel, dt)
	b.vel.AddScaledIn(accel, dt)
	b.capSpeed()
}

// Verlet assumes constant acceleration over the step: p = p + v*dt + a*dt²/2; v = v + a*dt
type Verlet struct{}

func (Verlet) Name() string { return "verlet" }

func (Verlet) Advance(b *Body, accel vmath.Vec2, dt float64) {
	if b.static {
		return
	}
	b.pos.AddScaledIn(b.vel, dt).AddScaledIn(accel, 0.5*dt*dt)
	b.vel.AddScaledIn(accel, dt)
	b.capSpeed()
}

// IntegratorByName resolves a scheme name, empty selects SemiImplicitEuler
func IntegratorByName(name string) (Integrator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "semi-implicit-euler", "symplectic-euler", "semi-implicit":
		return SemiImplicitEuler{}, nil
	case "explicit-euler", "euler":
		return ExplicitEuler{}, nil
	case "verlet":
		return Verlet{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownIntegrator, "%q", name)
	}
}
