package vmath

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrZeroMagnitude is returned when a direction is required but the vector has none
var ErrZeroMagnitude = errors.New("vmath: zero magnitude vector has no direction")

// Vec2 is a float64 2D vector
// Value methods return new vectors, pointer methods (vec2_inplace.go) mutate the receiver
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("{%.3f, %.3f}", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides component-wise, an axis with a zero divisor is left unchanged
func (v Vec2) Div(o Vec2) Vec2 {
	r := v
	if o.X != 0 {
		r.X /= o.X
	}
	if o.Y != 0 {
		r.Y /= o.Y
	}
	return r
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// DivScalar divides both components by s, s == 0 returns v unchanged
func (v Vec2) DivScalar(s float64) Vec2 {
	if s == 0 {
		return v
	}
	inv := 1.0 / s
	return Vec2{v.X * inv, v.Y * inv}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product (v.x, v.y, 0) x (o.x, o.y, 0)
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// MagnitudeSq returns squared length without sqrt
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Rotated rotates counter-clockwise about the origin by angle radians
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflected mirrors v about the surface with the given normal
// v' = v - 2 * dot(v, n) * n, normal is normalized first, zero normal returns v
func (v Vec2) Reflected(normal Vec2) Vec2 {
	n := normal.Normalized()
	if n.IsZero() {
		return v
	}
	d := 2 * v.Dot(n)
	return Vec2{v.X - d*n.X, v.Y - d*n.Y}
}

// Lerp interpolates linearly, t=0 returns v, t=1 returns to
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
	}
}

// Project returns the projection of v onto the direction of onto
func (v Vec2) Project(onto Vec2) Vec2 {
	magSq := onto.MagnitudeSq()
	if magSq == 0 {
		return Vec2{}
	}
	return onto.Scale(v.Dot(onto) / magSq)
}

// Distance returns Euclidean distance between two points
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// DistanceSq returns squared distance between two points
func (v Vec2) DistanceSq(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// WithMag returns v rescaled to magnitude m
func (v Vec2) WithMag(m float64) (Vec2, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return v, ErrZeroMagnitude
	}
	return v.Scale(m / mag), nil
}

// ClampMagnitude limits v to maxMag while preserving direction
func (v Vec2) ClampMagnitude(maxMag float64) Vec2 {
	magSq := v.MagnitudeSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return v.Scale(maxMag / math.Sqrt(magSq))
}

// IsFinite reports whether both components are finite numbers
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Distance is the free-function form of Vec2.Distance
func Distance(a, b Vec2) float64 {
	return a.Distance(b)
}

// ApproxEqual compares component-wise within eps
func ApproxEqual(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
