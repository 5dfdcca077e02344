package physics

import (
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/vmath"
)

// Contact describes one detected circle overlap
// Normal is the unnormalized vector from the second body to the first
type Contact struct {
	Normal    vmath.Vec2
	Distance  float64
	RadiusSum float64
}

// Overlap returns penetration depth, positive while overlapping
func (c Contact) Overlap() float64 {
	return c.RadiusSum - c.Distance
}

// ContactResult reports what resolution did
type ContactResult struct {
	// Impulse is the scalar J applied along the normal, 0 when skipped
	Impulse float64
	// Separating is true when relative normal velocity was already non-approaching
	Separating bool
	// Corrected is true when positional correction moved at least one body
	Corrected bool
}

// DetectCircles tests two circles, a distance equal to the radius sum counts as a collision
func DetectCircles(a, b *Body, ra, rb float64) (Contact, bool) {
	delta := a.pos.Sub(b.pos)
	sum := ra + rb
	distSq := delta.MagnitudeSq()
	if distSq > sum*sum {
		return Contact{}, false
	}
	return Contact{
		Normal:    delta,
		Distance:  delta.Magnitude(),
		RadiusSum: sum,
	}, true
}

// ResolveContact separates a and b and applies the collision impulse
//
// Sign convention: n points from b to a, vn = (va - vb)·n
// vn >= 0 means the bodies are separating and no impulse is applied
// Otherwise J = -(1+e)·vn / (1/ma + 1/mb) with e the mean restitution, a gets +J·n and b gets -J·n
//
// Static bodies have zero inverse mass and take no positional correction
func ResolveContact(a, b *Body, c Contact) ContactResult {
	var res ContactResult

	invA, invB := a.InverseMass(), b.InverseMass()
	invSum := invA + invB
	if invSum == 0 {
		return res
	}

	n := c.Normal
	if c.Distance <= parameter.ContactEpsilon {
		// Coincident centers, no geometric direction
		n = vmath.Right.Vec()
	} else {
		n.DivScalarIn(c.Distance)
	}

	// Positional correction: half each for two dynamic bodies, all of it for the dynamic one otherwise
	if overlap := c.Overlap(); overlap > 0 {
		switch {
		case invA > 0 && invB > 0:
			a.pos.AddScaledIn(n, overlap/2)
			b.pos.AddScaledIn(n, -overlap/2)
		case invA > 0:
			a.pos.AddScaledIn(n, overlap)
		default:
			b.pos.AddScaledIn(n, -overlap)
		}
		res.Corrected = true
	}

	// No attractive impulse
	vn := a.vel.Sub(b.vel).Dot(n)
	if vn >= 0 {
		res.Separating = true
		return res
	}

	e := (a.restitution + b.restitution) / 2
	j := -(1 + e) * vn / invSum

	a.ApplyImpulse(n.Scale(j))
	b.ApplyImpulse(n.Scale(-j))
	res.Impulse = j
	return res
}
