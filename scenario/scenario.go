package scenario

import (
	"bytes"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/system"
	"github.com/lixenwraith/kinetic/vmath"
)

var (
	ErrInvalidWorld    = errors.New("scenario: invalid world settings")
	ErrDuplicateName   = errors.New("scenario: duplicate body name")
	ErrUnknownBodyName = errors.New("scenario: spring references unknown body")
)

// File is the YAML scene description
type File struct {
	World   WorldSpec    `yaml:"world"`
	Bodies  []BodySpec   `yaml:"bodies"`
	Springs []SpringSpec `yaml:"springs"`
}

// WorldSpec holds area size and global force settings
// Pointer fields distinguish an explicit zero from an omitted value
type WorldSpec struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Gravity    *float64      `yaml:"gravity"`
	Timestep   time.Duration `yaml:"timestep"`
	Integrator string        `yaml:"integrator"`
	Drag       float64       `yaml:"drag"`
	Wind       Vec           `yaml:"wind"`
}

// Vec is a two-element YAML sequence [x, y]
type Vec [2]float64

func (v Vec) Vec2() vmath.Vec2 { return vmath.V2(v[0], v[1]) }

// BodySpec describes one body, radius 0 registers no collider
type BodySpec struct {
	Name          string   `yaml:"name"`
	Position      Vec      `yaml:"position"`
	Velocity      Vec      `yaml:"velocity"`
	Mass          float64  `yaml:"mass"`
	Radius        float64  `yaml:"radius"`
	Restitution   *float64 `yaml:"restitution"`
	Static        bool     `yaml:"static"`
	TerminalSpeed float64  `yaml:"terminal_speed"`
}

// SpringSpec connects two named bodies
type SpringSpec struct {
	A          string   `yaml:"a"`
	B          string   `yaml:"b"`
	Stiffness  float64  `yaml:"stiffness"`
	Damping    *float64 `yaml:"damping"`
	RestLength *float64 `yaml:"rest_length"`
}

// Load reads and parses a scenario file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario: read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario: %s", path)
	}
	log.Printf("Loaded scenario %s: %d bodies, %d springs", path, len(f.Bodies), len(f.Springs))
	return f, nil
}

// Parse decodes YAML, rejects unknown keys, and fills defaults
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "scenario: decode")
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	w := &f.World
	if w.Width == 0 {
		w.Width = parameter.DefaultWorldWidth
	}
	if w.Height == 0 {
		w.Height = parameter.DefaultWorldHeight
	}
	if w.Gravity == nil {
		g := parameter.GravityFloat
		w.Gravity = &g
	}
	if w.Timestep == 0 {
		w.Timestep = parameter.FixedTimestep
	}
	for i := range f.Bodies {
		b := &f.Bodies[i]
		if b.Mass == 0 {
			b.Mass = parameter.DefaultMass
		}
		if b.TerminalSpeed == 0 {
			b.TerminalSpeed = parameter.DefaultTerminalSpeed
		}
	}
	for i := range f.Springs {
		s := &f.Springs[i]
		if s.Stiffness == 0 {
			s.Stiffness = parameter.DefaultSpringStiffness
		}
		if s.Damping == nil {
			d := parameter.DefaultSpringDamping
			s.Damping = &d
		}
	}
}

// Validate checks settings that would otherwise fail during Populate
// Body mass and radius are validated by the physics and engine constructors
func (f *File) Validate() error {
	w := f.World
	if !(w.Width > 0) || !(w.Height > 0) {
		return errors.Wrapf(ErrInvalidWorld, "size %vx%v", w.Width, w.Height)
	}
	if w.Timestep < 0 {
		return errors.Wrapf(ErrInvalidWorld, "timestep %v", w.Timestep)
	}
	if _, err := physics.IntegratorByName(w.Integrator); err != nil {
		return err
	}

	names := make(map[string]bool, len(f.Bodies))
	for _, b := range f.Bodies {
		if b.Name == "" {
			continue
		}
		if names[b.Name] {
			return errors.Wrapf(ErrDuplicateName, "%q", b.Name)
		}
		names[b.Name] = true
	}
	for _, s := range f.Springs {
		if !names[s.A] {
			return errors.Wrapf(ErrUnknownBodyName, "%q", s.A)
		}
		if !names[s.B] {
			return errors.Wrapf(ErrUnknownBodyName, "%q", s.B)
		}
	}
	return nil
}

// Populate registers bodies, colliders and springs in the world
// Returns named entities, a failure leaves already registered bodies in place
func (f *File) Populate(world *engine.World) (map[string]engine.Entity, error) {
	named := make(map[string]engine.Entity, len(f.Bodies))
	bodies := make(map[string]*physics.Body, len(f.Bodies))

	for i, spec := range f.Bodies {
		b, err := spec.newBody()
		if err != nil {
			return named, errors.Wrapf(err, "scenario: body %d %q", i, spec.Name)
		}
		e, err := world.CreateBody(b)
		if err != nil {
			return named, err
		}
		if spec.Radius != 0 {
			if err := world.AddCollider(e, spec.Radius); err != nil {
				return named, errors.Wrapf(err, "scenario: body %d %q", i, spec.Name)
			}
		}
		if spec.Name != "" {
			named[spec.Name] = e
			bodies[spec.Name] = b
		}
	}

	for i, spec := range f.Springs {
		a, ok := bodies[spec.A]
		if !ok {
			return named, errors.Wrapf(ErrUnknownBodyName, "%q", spec.A)
		}
		b, ok := bodies[spec.B]
		if !ok {
			return named, errors.Wrapf(ErrUnknownBodyName, "%q", spec.B)
		}

		var opts []physics.SpringOption
		if spec.RestLength != nil {
			opts = append(opts, physics.WithRestLength(*spec.RestLength))
		}
		damping := parameter.DefaultSpringDamping
		if spec.Damping != nil {
			damping = *spec.Damping
		}
		s, err := physics.NewSpring(a, b, spec.Stiffness, damping, opts...)
		if err != nil {
			return named, errors.Wrapf(err, "scenario: spring %d", i)
		}
		if _, err := world.AddSpring(s); err != nil {
			return named, errors.Wrapf(err, "scenario: spring %d", i)
		}
	}

	return named, nil
}

func (spec BodySpec) newBody() (*physics.Body, error) {
	opts := []physics.BodyOption{
		physics.WithStatic(spec.Static),
		physics.WithTerminalSpeed(spec.TerminalSpeed),
	}
	if spec.Restitution != nil {
		opts = append(opts, physics.WithRestitution(*spec.Restitution))
	}
	return physics.NewBody(spec.Position.Vec2(), spec.Velocity.Vec2(), spec.Mass, opts...)
}

// Systems groups the three pipeline systems built from world settings
type Systems struct {
	Force     *system.ForceSystem
	Motion    *system.MotionSystem
	Collision *system.CollisionSystem
}

// NewSystems builds the pipeline for this scene
func (f *File) NewSystems() (*Systems, error) {
	integrator, err := physics.IntegratorByName(f.World.Integrator)
	if err != nil {
		return nil, err
	}

	gravity := parameter.GravityFloat
	if f.World.Gravity != nil {
		gravity = *f.World.Gravity
	}

	var gens []system.ForceGenerator
	if f.World.Drag != 0 {
		gens = append(gens, system.Drag{Coefficient: f.World.Drag})
	}
	if wind := f.World.Wind.Vec2(); !wind.IsZero() {
		gens = append(gens, system.Wind{F: wind})
	}

	return &Systems{
		Force:     system.NewForceSystem(gravity, gens...),
		Motion:    system.NewMotionSystem(integrator),
		Collision: system.NewCollisionSystem(f.World.Width, f.World.Height),
	}, nil
}

// Install adds all three systems to the world
func (s *Systems) Install(world *engine.World) {
	world.AddSystem(s.Force)
	world.AddSystem(s.Motion)
	world.AddSystem(s.Collision)
}
