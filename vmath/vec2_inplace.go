package vmath

import "math"

// In-place counterparts of the Vec2 value methods
// Each returns the receiver so calls can be chained: v.AddIn(a).ScaleIn(dt)

func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X, v.Y = x, y
	return v
}

func (v *Vec2) SetZero() *Vec2 {
	v.X, v.Y = 0, 0
	return v
}

func (v *Vec2) AddIn(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// AddScaledIn adds o*s, the common integration step
func (v *Vec2) AddScaledIn(o Vec2, s float64) *Vec2 {
	v.X += o.X * s
	v.Y += o.Y * s
	return v
}

func (v *Vec2) SubIn(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vec2) MulIn(o Vec2) *Vec2 {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// DivIn divides component-wise, zero divisor axes are left unchanged
func (v *Vec2) DivIn(o Vec2) *Vec2 {
	if o.X != 0 {
		v.X /= o.X
	}
	if o.Y != 0 {
		v.Y /= o.Y
	}
	return v
}

func (v *Vec2) ScaleIn(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// DivScalarIn is a no-op for s == 0
func (v *Vec2) DivScalarIn(s float64) *Vec2 {
	if s == 0 {
		return v
	}
	inv := 1.0 / s
	v.X *= inv
	v.Y *= inv
	return v
}

func (v *Vec2) NegIn() *Vec2 {
	v.X, v.Y = -v.X, -v.Y
	return v
}

// Normalize scales v to unit length, no-op on the zero vector
func (v *Vec2) Normalize() *Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	inv := 1.0 / mag
	v.X *= inv
	v.Y *= inv
	return v
}

// Rotate rotates counter-clockwise by angle radians
func (v *Vec2) Rotate(angle float64) *Vec2 {
	sin, cos := math.Sincos(angle)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

func (v *Vec2) Reflect(normal Vec2) *Vec2 {
	*v = v.Reflected(normal)
	return v
}

func (v *Vec2) LerpIn(to Vec2, t float64) *Vec2 {
	v.X += (to.X - v.X) * t
	v.Y += (to.Y - v.Y) * t
	return v
}

func (v *Vec2) ProjectIn(onto Vec2) *Vec2 {
	*v = v.Project(onto)
	return v
}

// SetMag rescales v to magnitude m, v is unchanged on error
func (v *Vec2) SetMag(m float64) error {
	r, err := v.WithMag(m)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// ClampMagnitudeIn limits length to maxMag, returns true if v was rescaled
func (v *Vec2) ClampMagnitudeIn(maxMag float64) bool {
	magSq := v.MagnitudeSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return false
	}
	v.ScaleIn(maxMag / math.Sqrt(magSq))
	return true
}
