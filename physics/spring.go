package physics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/vmath"
)

// Spring is a damped Hookean constraint between two distinct bodies
// Force() is the force acting on B, A receives the negation
type Spring struct {
	a, b *Body

	restLength float64
	stiffness  float64
	damping    float64
	active     bool

	// Displacement A->B, valid for one force calculation
	displacement vmath.Vec2
}

// SpringOption configures a spring at construction
type SpringOption func(*Spring)

// WithRestLength overrides the default rest length (initial separation), negative clamps to 0
func WithRestLength(length float64) SpringOption {
	return func(s *Spring) {
		s.restLength = math.Max(0, length)
	}
}

// NewSpring connects a and b, rest length defaults to their current distance
func NewSpring(a, b *Body, stiffness, damping float64, opts ...SpringOption) (*Spring, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNilBody, "spring endpoint")
	}
	if a == b {
		return nil, ErrSelfSpring
	}

	s := &Spring{
		a:          a,
		b:          b,
		restLength: a.pos.Distance(b.pos),
		active:     true,
	}
	s.SetStiffness(stiffness)
	s.SetDamping(damping)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Spring) A() *Body { return s.a }
func (s *Spring) B() *Body { return s.b }
func (s *Spring) RestLength() float64 { return s.restLength }
func (s *Spring) Stiffness() float64 { return s.stiffness }
func (s *Spring) Damping() float64 { return s.damping }
func (s *Spring) IsActive() bool { return s.active }
func (s *Spring) SetActive(active bool) { s.active = active }

// SetStiffness clamps up to parameter.MinSpringStiffness
func (s *Spring) SetStiffness(k float64) {
	if !(k >= parameter.MinSpringStiffness) {
		k = parameter.MinSpringStiffness
	}
	s.stiffness = k
}

// SetDamping clamps negative values to 0
func (s *Spring) SetDamping(c float64) {
	if !(c >= 0) {
		c = 0
	}
	s.damping = c
}

// Displacement computes and caches the vector from A to B
func (s *Spring) Displacement() vmath.Vec2 {
	s.displacement = s.b.pos.Sub(s.a.pos)
	return s.displacement
}

// Stretch returns current separation minus rest length (positive when extended)
func (s *Spring) Stretch() float64 {
	return s.Displacement().Magnitude() - s.restLength
}

// Force returns the spring plus damping force acting on B
// Zero separation has no direction and yields zero force
func (s *Spring) Force() vmath.Vec2 {
	d := s.Displacement()
	length := d.Magnitude()
	if length == 0 {
		return vmath.Vec2{}
	}
	dir := d.DivScalar(length)

	stretch := length - s.restLength
	relVel := s.b.vel.Sub(s.a.vel)

	// -k*x along the axis, -c*(v·n) along the axis
	magnitude := -s.stiffness*stretch - s.damping*relVel.Dot(dir)
	return dir.Scale(magnitude)
}

// ApplyForce adds Force() to B and its negation to A, no-op when inactive
// Static endpoints are anchors and receive nothing, the motion phase never clears them
func (s *Spring) ApplyForce() {
	if !s.active {
		return
	}
	f := s.Force()
	if !s.b.static {
		s.b.AddForce(f)
	}
	if !s.a.static {
		s.a.AddForce(f.Neg())
	}
}

// Relax resets rest length to the current separation
func (s *Spring) Relax() {
	s.restLength = s.Displacement().Magnitude()
}

// PotentialEnergy returns ½k·stretch²
func (s *Spring) PotentialEnergy() float64 {
	x := s.Stretch()
	return 0.5 * s.stiffness * x * x
}
