package engine

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/vmath"
)

var (
	ErrNilBody          = errors.New("engine: nil body")
	ErrNilSpring        = errors.New("engine: nil spring")
	ErrUnknownEntity    = errors.New("engine: unknown entity")
	ErrInvalidRadius    = errors.New("engine: collider radius must be positive and finite")
	ErrUnregisteredBody = errors.New("engine: spring endpoint is not registered")
)

// Entity is a unique identifier for a body, 0 is never issued
type Entity uint64

// SpringID identifies a registered spring
type SpringID uint64

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Collider is a body with an associated circle radius
type Collider struct {
	Entity Entity
	Body   *physics.Body
	Radius float64
}

// World is the registry handing bodies, radii and springs to the systems each tick
type World struct {
	mu           sync.RWMutex
	nextEntityID Entity
	nextSpringID SpringID

	entities []Entity // Ascending, ids are issued monotonically
	bodies   map[Entity]*physics.Body
	radii    map[Entity]float64

	springIDs []SpringID
	springs   map[SpringID]*physics.Spring

	systems []System
	tick    uint64
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		nextSpringID: 1,
		bodies:       make(map[Entity]*physics.Body),
		radii:        make(map[Entity]float64),
		springs:      make(map[SpringID]*physics.Spring),
		systems:      make([]System, 0),
	}
}

// CreateBody registers a body and returns its id
func (w *World) CreateBody(b *physics.Body) (Entity, error) {
	if b == nil {
		return 0, ErrNilBody
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.entities = append(w.entities, id)
	w.bodies[id] = b
	return id, nil
}

// Body returns the body registered under e
func (w *World) Body(e Entity) (*physics.Body, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	b, ok := w.bodies[e]
	return b, ok
}

// Entities returns all registered ids in ascending order
func (w *World) Entities() []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

// Bodies returns all registered bodies in id order
func (w *World) Bodies() []*physics.Body {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]*physics.Body, 0, len(w.entities))
	for _, e := range w.entities {
		result = append(result, w.bodies[e])
	}
	return result
}

// AddCollider associates a circle radius with a registered body
// Invalid geometry is rejected here so the per-tick sweep never sees it
func (w *World) AddCollider(e Entity, radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return errors.Wrapf(ErrInvalidRadius, "entity %d radius %v", e, radius)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.bodies[e]; !ok {
		return errors.Wrapf(ErrUnknownEntity, "entity %d", e)
	}
	w.radii[e] = radius
	return nil
}

// RemoveCollider drops the radius, the body stays registered
func (w *World) RemoveCollider(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.radii, e)
}

// Radius returns the collider radius of e
func (w *World) Radius(e Entity) (float64, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	r, ok := w.radii[e]
	return r, ok
}

// Colliders returns bodies with a radius in id order
func (w *World) Colliders() []Collider {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]Collider, 0, len(w.radii))
	for _, e := range w.entities {
		if r, ok := w.radii[e]; ok {
			result = append(result, Collider{Entity: e, Body: w.bodies[e], Radius: r})
		}
	}
	return result
}

// AddSpring registers a spring, both endpoints must already be registered bodies
func (w *World) AddSpring(s *physics.Spring) (SpringID, error) {
	if s == nil {
		return 0, ErrNilSpring
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.hasBodyUnsafe(s.A()) || !w.hasBodyUnsafe(s.B()) {
		return 0, ErrUnregisteredBody
	}

	id := w.nextSpringID
	w.nextSpringID++
	w.springIDs = append(w.springIDs, id)
	w.springs[id] = s
	return id, nil
}

// Spring returns the spring registered under id
func (w *World) Spring(id SpringID) (*physics.Spring, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.springs[id]
	return s, ok
}

// Springs returns all registered springs in id order
func (w *World) Springs() []*physics.Spring {
	w.mu.RLock()
	defer w.mu.RUnlock()

	result := make([]*physics.Spring, 0, len(w.springIDs))
	for _, id := range w.springIDs {
		result = append(result, w.springs[id])
	}
	return result
}

// RemoveSpring unregisters a spring, returns false if it was not present
func (w *World) RemoveSpring(id SpringID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.removeSpringUnsafe(id)
}

// DestroyEntity removes a body, its collider, and every spring attached to it
func (w *World) DestroyEntity(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.bodies[e]
	if !ok {
		return
	}

	for _, id := range append([]SpringID(nil), w.springIDs...) {
		s := w.springs[id]
		if s.A() == b || s.B() == b {
			w.removeSpringUnsafe(id)
		}
	}

	delete(w.bodies, e)
	delete(w.radii, e)

	i := sort.Search(len(w.entities), func(i int) bool { return w.entities[i] >= e })
	if i < len(w.entities) && w.entities[i] == e {
		w.entities = append(w.entities[:i], w.entities[i+1:]...)
	}
}

// Clear removes all bodies and springs, systems and the tick counter are kept
// Ids are not reused after a clear
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entities = nil
	w.springIDs = nil
	w.bodies = make(map[Entity]*physics.Body)
	w.radii = make(map[Entity]float64)
	w.springs = make(map[SpringID]*physics.Spring)
}

// EntityCount returns the number of bodies in the world
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

// SpringCount returns the number of registered springs
func (w *World) SpringCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.springIDs)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort keeps insertion order for equal priorities
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems in priority order as one tick
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}

	w.mu.Lock()
	w.tick++
	w.mu.Unlock()
}

// Tick returns the number of completed updates
func (w *World) Tick() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tick
}

// TotalMomentum sums momentum over dynamic bodies
func (w *World) TotalMomentum() vmath.Vec2 {
	var p vmath.Vec2
	for _, b := range w.Bodies() {
		p.AddIn(b.Momentum())
	}
	return p
}

// TotalKineticEnergy sums ½mv² over dynamic bodies
func (w *World) TotalKineticEnergy() float64 {
	var e float64
	for _, b := range w.Bodies() {
		e += b.KineticEnergy()
	}
	return e
}

// SpringEnergy sums elastic potential energy over active springs
func (w *World) SpringEnergy() float64 {
	var e float64
	for _, s := range w.Springs() {
		if s.IsActive() {
			e += s.PotentialEnergy()
		}
	}
	return e
}

// hasBodyUnsafe checks registration without locking (assumes lock is held)
func (w *World) hasBodyUnsafe(b *physics.Body) bool {
	for _, rb := range w.bodies {
		if rb == b {
			return true
		}
	}
	return false
}

// removeSpringUnsafe removes a spring without locking (assumes lock is held)
func (w *World) removeSpringUnsafe(id SpringID) bool {
	if _, ok := w.springs[id]; !ok {
		return false
	}
	delete(w.springs, id)
	for i, sid := range w.springIDs {
		if sid == id {
			w.springIDs = append(w.springIDs[:i], w.springIDs[i+1:]...)
			break
		}
	}
	return true
}
