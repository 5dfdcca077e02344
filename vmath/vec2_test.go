package vmath

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

const eps = 1e-9

func TestVec2ValueOpsDoNotMutate(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Scale(10)
	_ = a.Normalized()
	_ = a.Rotated(math.Pi)

	if a != V2(3, 4) {
		t.Errorf("Expected receiver unchanged, got %v", a)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"sub", V2(1, 2).Sub(V2(3, 4)), V2(-2, -2)},
		{"mul", V2(2, 3).Mul(V2(4, 5)), V2(8, 15)},
		{"div", V2(8, 15).Div(V2(4, 5)), V2(2, 3)},
		{"div zero axis", V2(8, 15).Div(V2(0, 5)), V2(8, 3)},
		{"scale", V2(1, -2).Scale(3), V2(3, -6)},
		{"div scalar", V2(4, 8).DivScalar(4), V2(1, 2)},
		{"div scalar zero", V2(4, 8).DivScalar(0), V2(4, 8)},
		{"neg", V2(1, -2).Neg(), V2(-1, 2)},
		{"lerp mid", V2(0, 0).Lerp(V2(10, -10), 0.5), V2(5, -5)},
		{"project", V2(3, 4).Project(V2(1, 0)), V2(3, 0)},
		{"project zero", V2(3, 4).Project(V2(0, 0)), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !ApproxEqual(tt.got, tt.want, eps) {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestVec2Products(t *testing.T) {
	a, b := V2(2, 3), V2(4, -1)
	if d := a.Dot(b); d != 5 {
		t.Errorf("Expected dot 5, got %f", d)
	}
	if c := a.Cross(b); c != -14 {
		t.Errorf("Expected cross -14, got %f", c)
	}
	if c := Right.Cross(Down.Vec()); c != 1 {
		t.Errorf("Expected right x down = 1, got %f", c)
	}
}

func TestVec2MagnitudeAndDistance(t *testing.T) {
	v := V2(3, 4)
	if m := v.Magnitude(); m != 5 {
		t.Errorf("Expected magnitude 5, got %f", m)
	}
	if m := v.MagnitudeSq(); m != 25 {
		t.Errorf("Expected squared magnitude 25, got %f", m)
	}
	if d := Distance(V2(1, 1), V2(4, 5)); math.Abs(d-5) > eps {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestNormalizeZeroIsNoOp(t *testing.T) {
	v := V2(0, 0)
	v.Normalize()
	if !v.IsZero() || !v.IsFinite() {
		t.Errorf("Expected zero vector to stay zero, got %v", v)
	}
	if n := V2(0, 0).Normalized(); !n.IsZero() {
		t.Errorf("Expected zero from Normalized, got %v", n)
	}

	u := V2(0, -7)
	u.Normalize()
	if !ApproxEqual(u, V2(0, -1), eps) {
		t.Errorf("Expected (0,-1), got %v", u)
	}
}

func TestRotateCounterClockwise(t *testing.T) {
	v := V2(1, 0).Rotated(math.Pi / 2)
	if !ApproxEqual(v, V2(0, 1), eps) {
		t.Errorf("Expected (0,1) after quarter turn, got %v", v)
	}

	w := V2(1, 0)
	w.Rotate(math.Pi)
	if !ApproxEqual(w, V2(-1, 0), eps) {
		t.Errorf("Expected (-1,0) after half turn, got %v", w)
	}
}

func TestReflect(t *testing.T) {
	v := V2(3, -2).Reflected(V2(0, 5))
	if !ApproxEqual(v, V2(3, 2), eps) {
		t.Errorf("Expected (3,2), got %v", v)
	}

	same := V2(3, -2).Reflected(V2(0, 0))
	if same != V2(3, -2) {
		t.Errorf("Expected zero normal to leave vector unchanged, got %v", same)
	}
}

func TestSetMag(t *testing.T) {
	v := V2(3, 4)
	if err := v.SetMag(10); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ApproxEqual(v, V2(6, 8), eps) {
		t.Errorf("Expected (6,8), got %v", v)
	}

	z := V2(0, 0)
	err := z.SetMag(1)
	if !errors.Is(err, ErrZeroMagnitude) {
		t.Errorf("Expected ErrZeroMagnitude, got %v", err)
	}
	if !z.IsZero() {
		t.Errorf("Expected zero vector unchanged after failed SetMag, got %v", z)
	}

	if _, err := V2(0, 0).WithMag(3); err == nil {
		t.Error("Expected WithMag on zero vector to fail")
	}
}

func TestInPlaceChaining(t *testing.T) {
	v := V2(1, 1)
	v.AddIn(V2(1, 2)).ScaleIn(2).SubIn(V2(1, 1))
	if v != V2(3, 5) {
		t.Errorf("Expected (3,5), got %v", v)
	}

	v.DivScalarIn(0)
	if v != V2(3, 5) {
		t.Errorf("Expected division by zero to be a no-op, got %v", v)
	}

	v.AddScaledIn(V2(1, -1), 0.5)
	if !ApproxEqual(v, V2(3.5, 4.5), eps) {
		t.Errorf("Expected (3.5,4.5), got %v", v)
	}

	v.SetZero()
	if !v.IsZero() {
		t.Errorf("Expected zero after SetZero, got %v", v)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := V2(30, 40)
	if !v.ClampMagnitudeIn(5) {
		t.Error("Expected clamp to report rescale")
	}
	if !ApproxEqual(v, V2(3, 4), eps) {
		t.Errorf("Expected (3,4), got %v", v)
	}
	if v.ClampMagnitudeIn(10) {
		t.Error("Expected no rescale under the limit")
	}
}

func TestConstantsStayConstant(t *testing.T) {
	c := Down.Vec()
	c.ScaleIn(50)

	if !Down.Equal(V2(0, 1)) {
		t.Errorf("Expected Down to remain (0,1), got %v", Down)
	}

	sum := Right.Add(V2(1, 1))
	if sum != V2(2, 1) {
		t.Errorf("Expected (2,1), got %v", sum)
	}
	if !Zero.Equal(V2(0, 0)) || Zero.Magnitude() != 0 {
		t.Errorf("Expected Zero to be the zero vector, got %v", Zero)
	}
	if Up.Dot(Down.Vec()) != -1 || Left.Dot(Right.Vec()) != -1 {
		t.Error("Expected opposing axis constants")
	}
}
