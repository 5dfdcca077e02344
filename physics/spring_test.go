package physics

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/vmath"
)

func TestNewSpringValidation(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(3, 4), vmath.V2(0, 0), 1)

	if _, err := NewSpring(nil, b, 1, 0); !errors.Is(err, ErrNilBody) {
		t.Errorf("Expected ErrNilBody, got %v", err)
	}
	if _, err := NewSpring(a, nil, 1, 0); !errors.Is(err, ErrNilBody) {
		t.Errorf("Expected ErrNilBody, got %v", err)
	}
	if s, err := NewSpring(a, a, 1, 0); err != ErrSelfSpring || s != nil {
		t.Errorf("Expected ErrSelfSpring and nil spring, got %v %v", s, err)
	}

	s, err := NewSpring(a, b, 10, 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.RestLength() != 5 {
		t.Errorf("Expected rest length to default to initial distance 5, got %f", s.RestLength())
	}
	if !s.IsActive() {
		t.Error("Expected new spring to be active")
	}
}

func TestSpringCoefficientClamping(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(1, 0), vmath.V2(0, 0), 1)

	s, err := NewSpring(a, b, 0, -3, WithRestLength(-2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Stiffness() != parameter.MinSpringStiffness {
		t.Errorf("Expected stiffness clamped to floor %f, got %f", parameter.MinSpringStiffness, s.Stiffness())
	}
	if s.Damping() != 0 {
		t.Errorf("Expected damping clamped to 0, got %f", s.Damping())
	}
	if s.RestLength() != 0 {
		t.Errorf("Expected rest length clamped to 0, got %f", s.RestLength())
	}
}

func TestSpringZeroForceAtRestLength(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(10, 0), vmath.V2(0, 0), 1)
	s, err := NewSpring(a, b, 50, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if m := s.Force().Magnitude(); m > tolerance {
		t.Errorf("Expected zero force at rest length, got %f", m)
	}
	if e := s.PotentialEnergy(); e > tolerance {
		t.Errorf("Expected zero potential energy at rest length, got %f", e)
	}

	// Rigid translation keeps separation
	a.Move(7, -3)
	b.Move(7, -3)
	if m := s.Force().Magnitude(); m > tolerance {
		t.Errorf("Expected zero force after translating both endpoints, got %f", m)
	}
}

func TestSpringHookeForce(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(12, 0), vmath.V2(0, 0), 1)
	s, err := NewSpring(a, b, 4, 0, WithRestLength(10))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Stretched by 2, pulls B back toward A
	f := s.Force()
	if !vmath.ApproxEqual(f, vmath.V2(-8, 0), tolerance) {
		t.Errorf("Expected (-8,0), got %v", f)
	}
	if math.Abs(s.Stretch()-2) > tolerance {
		t.Errorf("Expected stretch 2, got %f", s.Stretch())
	}
	if math.Abs(s.PotentialEnergy()-8) > tolerance {
		t.Errorf("Expected potential energy 8, got %f", s.PotentialEnergy())
	}

	// Compressed by 2, pushes B away
	b.SetPosition(vmath.V2(8, 0))
	f = s.Force()
	if !vmath.ApproxEqual(f, vmath.V2(8, 0), tolerance) {
		t.Errorf("Expected (8,0), got %v", f)
	}
}

func TestSpringDamping(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(0, 5), vmath.V2(3, 2), 1)
	s, err := NewSpring(a, b, 1, 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// At rest length only damping acts, along the axis: -0.5 * (vrel·n) * n with n=(0,1)
	f := s.Force()
	if !vmath.ApproxEqual(f, vmath.V2(0, -1), tolerance) {
		t.Errorf("Expected damping force (0,-1), got %v", f)
	}
}

func TestSpringApplyForceIsEqualAndOpposite(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(3, 4), vmath.V2(0, 0), 2)
	s, err := NewSpring(a, b, 10, 0, WithRestLength(2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s.ApplyForce()
	sum := a.Force().Add(b.Force())
	if !vmath.ApproxEqual(sum, vmath.V2(0, 0), tolerance) {
		t.Errorf("Expected forces to cancel, got sum %v", sum)
	}
	if b.Force().Dot(vmath.V2(3, 4)) >= 0 {
		t.Errorf("Expected stretched spring to pull B toward A, got %v", b.Force())
	}

	a.ClearForce()
	b.ClearForce()
	s.SetActive(false)
	s.ApplyForce()
	if !a.Force().IsZero() || !b.Force().IsZero() {
		t.Error("Expected inactive spring to apply no force")
	}
}

func TestSpringZeroSeparationIsFinite(t *testing.T) {
	a := mustBody(t, vmath.V2(2, 2), vmath.V2(1, 0), 1)
	b := mustBody(t, vmath.V2(2, 2), vmath.V2(-1, 0), 1)
	s, err := NewSpring(a, b, 10, 1, WithRestLength(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f := s.Force()
	if !f.IsFinite() || !f.IsZero() {
		t.Errorf("Expected zero finite force at zero separation, got %v", f)
	}
	s.ApplyForce()
	if !a.Force().IsFinite() || !b.Force().IsFinite() {
		t.Error("Expected finite accumulators after zero separation")
	}
}

func TestSpringRelax(t *testing.T) {
	a := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(10, 0), vmath.V2(0, 0), 1)
	s, err := NewSpring(a, b, 10, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b.SetPosition(vmath.V2(15, 0))
	if s.PotentialEnergy() == 0 {
		t.Fatal("Expected stored energy after stretching")
	}

	s.Relax()
	if s.RestLength() != 15 {
		t.Errorf("Expected rest length 15 after relax, got %f", s.RestLength())
	}
	if s.PotentialEnergy() != 0 {
		t.Errorf("Expected zero energy after relax, got %f", s.PotentialEnergy())
	}
}

func TestSpringDisplacementCache(t *testing.T) {
	a := mustBody(t, vmath.V2(1, 1), vmath.V2(0, 0), 1)
	b := mustBody(t, vmath.V2(4, 5), vmath.V2(0, 0), 1)
	s, err := NewSpring(a, b, 1, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d := s.Displacement(); d != vmath.V2(3, 4) {
		t.Errorf("Expected displacement (3,4), got %v", d)
	}
	if s.A() != a || s.B() != b {
		t.Error("Expected endpoint accessors to return constructor bodies")
	}
}

func TestSpringStaticAnchorAccumulatesNothing(t *testing.T) {
	anchor := mustBody(t, vmath.V2(0, 0), vmath.V2(0, 0), 1, WithStatic(true))
	bob := mustBody(t, vmath.V2(0, 8), vmath.V2(0, 0), 1)
	s, err := NewSpring(anchor, bob, 5, 0, WithRestLength(4))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		s.ApplyForce()
	}
	if !anchor.Force().IsZero() {
		t.Errorf("Expected static anchor accumulator to stay zero, got %v", anchor.Force())
	}
	if !vmath.ApproxEqual(bob.Force(), vmath.V2(0, -200), tolerance) {
		t.Errorf("Expected bob force (0,-200), got %v", bob.Force())
	}
}
