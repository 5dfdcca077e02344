package physics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/vmath"
)

var (
	ErrNonPositiveMass          = errors.New("physics: mass must be positive and finite")
	ErrNonPositiveTerminalSpeed = errors.New("physics: terminal speed must be positive")
	ErrNilBody                  = errors.New("physics: nil body")
	ErrSelfSpring               = errors.New("physics: spring endpoints must be distinct bodies")
)

// Body is the physics state of one point mass
// Position, velocity and the force accumulator are owned exclusively by the body, getters return copies
type Body struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	force vmath.Vec2

	mass    float64
	invMass float64

	restitution float64
	static      bool

	terminalSpeed   float64
	terminalSpeedSq float64
}

// BodyOption configures a body at construction
type BodyOption func(*Body) error

// WithRestitution sets restitution, clamped into [0, 1]
func WithRestitution(e float64) BodyOption {
	return func(b *Body) error {
		b.SetRestitution(e)
		return nil
	}
}

// WithStatic marks the body immovable
func WithStatic(static bool) BodyOption {
	return func(b *Body) error {
		b.SetStatic(static)
		return nil
	}
}

// WithTerminalSpeed sets the speed limit
func WithTerminalSpeed(speed float64) BodyOption {
	return func(b *Body) error {
		return b.SetTerminalSpeed(speed)
	}
}

// NewBody creates a body with initial kinematic state
// Returns an error for non-positive mass or an invalid option, no partial body is returned
func NewBody(pos, vel vmath.Vec2, mass float64, opts ...BodyOption) (*Body, error) {
	b := &Body{
		pos:         pos,
		restitution: parameter.DefaultRestitution,
	}
	if err := b.SetMass(mass); err != nil {
		return nil, err
	}
	if err := b.SetTerminalSpeed(parameter.DefaultTerminalSpeed); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.SetVelocity(vel)
	return b, nil
}

// --- Getters ---

func (b *Body) Position() vmath.Vec2 { return b.pos }
func (b *Body) Velocity() vmath.Vec2 { return b.vel }
func (b *Body) Force() vmath.Vec2 { return b.force }
func (b *Body) Mass() float64 { return b.mass }
func (b *Body) Restitution() float64 { return b.restitution }
func (b *Body) IsStatic() bool { return b.static }

// InverseMass returns 1/m, or 0 for static bodies (infinite mass)
func (b *Body) InverseMass() float64 {
	if b.static {
		return 0
	}
	return b.invMass
}

func (b *Body) TerminalSpeed() float64 { return b.terminalSpeed }
func (b *Body) TerminalSpeedSq() float64 { return b.terminalSpeedSq }

func (b *Body) Speed() float64 {
	return b.vel.Magnitude()
}

// Momentum returns m*v, zero for static bodies
func (b *Body) Momentum() vmath.Vec2 {
	if b.static {
		return vmath.Vec2{}
	}
	return b.vel.Scale(b.mass)
}

// KineticEnergy returns ½mv², zero for static bodies
func (b *Body) KineticEnergy() float64 {
	if b.static {
		return 0
	}
	return 0.5 * b.mass * b.vel.MagnitudeSq()
}

// --- Mutators ---

// AddForce accumulates into the force buffer
func (b *Body) AddForce(f vmath.Vec2) {
	b.force.AddIn(f)
}

// ClearForce resets the accumulator
// The motion system clears dynamic bodies each tick, static bodies must be cleared by whoever wrote to them
func (b *Body) ClearForce() {
	b.force.SetZero()
}

// Move displaces position directly, no-op for static bodies
func (b *Body) Move(dx, dy float64) {
	if b.static {
		return
	}
	b.pos.X += dx
	b.pos.Y += dy
}

// SetPosition places the body, applies to static bodies as well
func (b *Body) SetPosition(pos vmath.Vec2) {
	b.pos = pos
}

// SetVelocity replaces velocity, clamped to terminal speed, ignored for static bodies
func (b *Body) SetVelocity(vel vmath.Vec2) {
	if b.static {
		return
	}
	b.vel = vel
	b.capSpeed()
}

// IncreaseSpeed adds to velocity then clamps to terminal speed by uniform rescale
func (b *Body) IncreaseSpeed(dvx, dvy float64) {
	if b.static {
		return
	}
	b.vel.X += dvx
	b.vel.Y += dvy
	b.capSpeed()
}

// ApplyImpulse changes velocity by j/m
func (b *Body) ApplyImpulse(j vmath.Vec2) {
	if b.static {
		return
	}
	b.IncreaseSpeed(j.X*b.invMass, j.Y*b.invMass)
}

// BounceX negates horizontal velocity scaled by restitution
func (b *Body) BounceX() {
	b.vel.X = -b.vel.X * b.restitution
}

// BounceY negates vertical velocity scaled by restitution
func (b *Body) BounceY() {
	b.vel.Y = -b.vel.Y * b.restitution
}

// SetMass rejects non-positive and non-finite values
func (b *Body) SetMass(m float64) error {
	if !(m > 0) || math.IsInf(m, 0) {
		return errors.Wrapf(ErrNonPositiveMass, "got %v", m)
	}
	b.mass = m
	b.invMass = 1.0 / m
	return nil
}

// SetRestitution clamps silently into [0, 1]
func (b *Body) SetRestitution(e float64) {
	switch {
	case math.IsNaN(e), e < 0:
		e = 0
	case e > 1:
		e = 1
	}
	b.restitution = e
}

// SetStatic toggles immovability, a body becoming static loses its velocity
func (b *Body) SetStatic(static bool) {
	b.static = static
	if static {
		b.vel.SetZero()
	}
}

// SetTerminalSpeed sets the speed limit and its cached square
func (b *Body) SetTerminalSpeed(speed float64) error {
	if !(speed > 0) {
		return errors.Wrapf(ErrNonPositiveTerminalSpeed, "got %v", speed)
	}
	b.terminalSpeed = speed
	b.terminalSpeedSq = speed * speed
	b.capSpeed()
	return nil
}

func (b *Body) capSpeed() bool {
	return CapSpeed(&b.vel, b.terminalSpeed, b.terminalSpeedSq)
}
