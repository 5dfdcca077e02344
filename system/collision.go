package system

import (
	"time"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
)

// pairKey is the canonical identity of an unordered pair, lo < hi
type pairKey struct {
	lo, hi engine.Entity
}

func makePairKey(a, b engine.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// collisionPair holds detection data for one tick, body order matches the key
type collisionPair struct {
	key     pairKey
	a, b    *physics.Body
	ra, rb  float64
	contact physics.Contact
}

// ContactEvent describes one resolved pair
type ContactEvent struct {
	A, B    engine.Entity
	Impulse float64
	Overlap float64
}

// ContactListener is notified once per resolved pair, after resolution
type ContactListener func(ev ContactEvent)

// CollisionStats counts the work done in the last tick
type CollisionStats struct {
	Bodies          int
	PairsTested     int
	Contacts        int
	Impulses        int
	BoundaryContact int
}

// CollisionSystem enforces boundaries then resolves circle contacts
type CollisionSystem struct {
	width, height float64

	listeners []ContactListener

	// Rebuilt every tick
	seen  map[pairKey]struct{}
	pairs []collisionPair
	stats CollisionStats
}

// NewCollisionSystem creates a collision system for a width x height area
func NewCollisionSystem(width, height float64) *CollisionSystem {
	return &CollisionSystem{
		width:  width,
		height: height,
		seen:   make(map[pairKey]struct{}),
		pairs:  make([]collisionPair, 0, 32),
	}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Bounds returns the simulation area size
func (s *CollisionSystem) Bounds() (float64, float64) {
	return s.width, s.height
}

// SetBounds resizes the simulation area
func (s *CollisionSystem) SetBounds(width, height float64) {
	s.width, s.height = width, height
}

// AddListener registers a contact callback
func (s *CollisionSystem) AddListener(l ContactListener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Stats returns counters from the last update
func (s *CollisionSystem) Stats() CollisionStats {
	return s.stats
}

// Update runs boundary correction, detection and resolution
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	colliders := world.Colliders()
	s.stats = CollisionStats{Bodies: len(colliders)}

	// Boundary first so detection sees corrected positions
	for _, c := range colliders {
		if c.Body.IsStatic() {
			continue
		}
		if physics.ReflectBounds(c.Body, c.Radius, s.width, s.height) {
			s.stats.BoundaryContact++
		}
	}

	s.detect(colliders)
	s.resolve()

	// Positional correction may push a body back past a wall
	for _, p := range s.pairs {
		if !p.a.IsStatic() {
			physics.ReflectBounds(p.a, p.ra, s.width, s.height)
		}
		if !p.b.IsStatic() {
			physics.ReflectBounds(p.b, p.rb, s.width, s.height)
		}
	}
}

// detect sweeps every ordered pair, the key set collapses (i,j) and (j,i) into one entry
func (s *CollisionSystem) detect(colliders []engine.Collider) {
	clear(s.seen)
	s.pairs = s.pairs[:0]

	for i := range colliders {
		for j := range colliders {
			if i == j {
				continue
			}
			s.stats.PairsTested++

			key := makePairKey(colliders[i].Entity, colliders[j].Entity)
			if _, ok := s.seen[key]; ok {
				continue
			}

			ci, cj := colliders[i], colliders[j]
			if ci.Body.IsStatic() && cj.Body.IsStatic() {
				continue
			}

			// Normalize body order to the key so the contact is identical from either side
			if ci.Entity != key.lo {
				ci, cj = cj, ci
			}
			contact, hit := physics.DetectCircles(ci.Body, cj.Body, ci.Radius, cj.Radius)
			if !hit {
				continue
			}
			s.seen[key] = struct{}{}
			s.pairs = append(s.pairs, collisionPair{key: key, a: ci.Body, b: cj.Body, ra: ci.Radius, rb: cj.Radius, contact: contact})
		}
	}
	s.stats.Contacts = len(s.pairs)
}

func (s *CollisionSystem) resolve() {
	for _, p := range s.pairs {
		res := physics.ResolveContact(p.a, p.b, p.contact)
		if res.Impulse > 0 {
			s.stats.Impulses++
		}

		if len(s.listeners) == 0 {
			continue
		}
		ev := ContactEvent{
			A:       p.key.lo,
			B:       p.key.hi,
			Impulse: res.Impulse,
			Overlap: p.contact.Overlap(),
		}
		for _, l := range s.listeners {
			l(ev)
		}
	}
}
