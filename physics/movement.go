package physics

import (
	"math"

	"github.com/lixenwraith/kinetic/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed, comparing against the cached square
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed, maxSpeedSq float64) bool {
	magSq := vel.MagnitudeSq()
	if magSq <= maxSpeedSq || magSq == 0 {
		return false
	}
	vel.ScaleIn(maxSpeed / math.Sqrt(magSq))
	return true
}

// ReflectBoundsX handles horizontal boundary contact for a circle of radius r in [0, width]
// Clamps center into [r, width-r] and bounces velocity heading into the wall, returns true on contact
func ReflectBoundsX(b *Body, r, width float64) bool {
	lo, hi := r, width-r
	if lo > hi {
		// Area narrower than the body, pin to center
		b.pos.X = width / 2
		return true
	}
	if b.pos.X < lo {
		b.pos.X = lo
		if b.vel.X < 0 {
			b.BounceX()
		}
		return true
	}
	if b.pos.X > hi {
		b.pos.X = hi
		if b.vel.X > 0 {
			b.BounceX()
		}
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary contact for a circle of radius r in [0, height]
func ReflectBoundsY(b *Body, r, height float64) bool {
	lo, hi := r, height-r
	if lo > hi {
		b.pos.Y = height / 2
		return true
	}
	if b.pos.Y < lo {
		b.pos.Y = lo
		if b.vel.Y < 0 {
			b.BounceY()
		}
		return true
	}
	if b.pos.Y > hi {
		b.pos.Y = hi
		if b.vel.Y > 0 {
			b.BounceY()
		}
		return true
	}
	return false
}

// ReflectBounds handles both axes, returns true if any contact occurred
func ReflectBounds(b *Body, r, width, height float64) bool {
	rx := ReflectBoundsX(b, r, width)
	ry := ReflectBoundsY(b, r, height)
	return rx || ry
}
