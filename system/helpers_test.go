package system

import (
	"testing"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/vmath"
)

const tolerance = 1e-9

// spawn registers a body with an optional collider, radius <= 0 skips the collider
func spawn(t *testing.T, world *engine.World, pos, vel vmath.Vec2, mass, radius float64, opts ...physics.BodyOption) (engine.Entity, *physics.Body) {
	t.Helper()
	b, err := physics.NewBody(pos, vel, mass, opts...)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	e, err := world.CreateBody(b)
	if err != nil {
		t.Fatalf("CreateBody failed: %v", err)
	}
	if radius > 0 {
		if err := world.AddCollider(e, radius); err != nil {
			t.Fatalf("AddCollider failed: %v", err)
		}
	}
	return e, b
}
