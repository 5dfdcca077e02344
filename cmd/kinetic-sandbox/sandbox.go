package main

import (
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/audio"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/render"
	"github.com/lixenwraith/kinetic/scenario"
	"github.com/lixenwraith/kinetic/vmath"
)

// Speed drawn at the hot end of the body color ramp
const hotSpeed = 40.0

// sandbox owns one interactive simulation session
type sandbox struct {
	scene    *scenario.File
	world    *engine.World
	systems  *scenario.Systems
	stepper  *engine.Stepper
	renderer *render.TerminalRenderer
	player   *audio.ImpactPlayer
	rng      *rand.Rand
}

// newSandbox builds the world from scene and wires the contact listener to player
// player may be nil
func newSandbox(screen tcell.Screen, scene *scenario.File, provider engine.TimeProvider, player *audio.ImpactPlayer) (*sandbox, error) {
	systems, err := scene.NewSystems()
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld()
	if _, err := scene.Populate(world); err != nil {
		return nil, err
	}
	systems.Install(world)

	if player != nil {
		systems.Collision.AddListener(player.OnContact)
	}

	return &sandbox{
		scene:    scene,
		world:    world,
		systems:  systems,
		stepper:  engine.NewStepper(provider, scene.World.Timestep, parameter.MaxStepsPerFrame),
		renderer: render.NewTerminalRenderer(screen, scene.World.Width, scene.World.Height, hotSpeed),
		player:   player,
		rng:      rand.New(rand.NewPCG(uint64(world.EntityCount()), 0x6b696e)),
	}, nil
}

// frame advances due steps and draws, returns steps taken
func (s *sandbox) frame() int {
	n := s.stepper.Advance()
	for i := 0; i < n; i++ {
		s.world.Update(s.stepper.Step())
	}
	s.renderer.RenderFrame(s.world, s.hud())
	return n
}

func (s *sandbox) hud() render.HUD {
	return render.HUD{
		Integrator:     s.systems.Motion.Integrator().Name(),
		Paused:         s.stepper.IsPaused(),
		GravityEnabled: s.systems.Force.GravityEnabled(),
		SpringsEnabled: s.systems.Force.SpringsEnabled(),
		Contacts:       s.systems.Collision.Stats().Contacts,
	}
}

// handleKey applies one key press, false means quit
func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		paused := s.stepper.TogglePause()
		log.Printf("Paused: %v", paused)
	case 's':
		s.stepper.StepOnce()
	case 'g':
		s.systems.Force.SetGravityEnabled(!s.systems.Force.GravityEnabled())
	case 'k':
		s.systems.Force.SetSpringsEnabled(!s.systems.Force.SpringsEnabled())
	case 'i':
		s.cycleIntegrator()
	case 'r':
		s.reset()
	case 'b':
		s.spawnBall()
	case 'm':
		if s.player != nil {
			s.player.SetMuted(!s.player.IsMuted())
		}
	}
	return true
}

var integratorCycle = []string{"semi-implicit-euler", "explicit-euler", "verlet"}

func (s *sandbox) cycleIntegrator() {
	current := s.systems.Motion.Integrator().Name()
	next := integratorCycle[0]
	for i, name := range integratorCycle {
		if name == current {
			next = integratorCycle[(i+1)%len(integratorCycle)]
			break
		}
	}
	integrator, err := physics.IntegratorByName(next)
	if err != nil {
		return
	}
	s.systems.Motion.SetIntegrator(integrator)
	log.Printf("Integrator: %s", next)
}

// reset restores the scene, systems and their toggles are kept
func (s *sandbox) reset() {
	s.world.Clear()
	if _, err := s.scene.Populate(s.world); err != nil {
		log.Printf("Reset failed: %v", err)
		return
	}
	log.Printf("Scene reset: %d bodies", s.world.EntityCount())
}

// spawnBall drops a body with a random horizontal velocity from the top third
func (s *sandbox) spawnBall() {
	w, h := s.scene.World.Width, s.scene.World.Height
	r := parameter.DefaultRadius
	pos := vmath.V2(r+s.rng.Float64()*(w-2*r), r+s.rng.Float64()*(h/3))
	vel := vmath.V2((s.rng.Float64()*2-1)*hotSpeed/2, 0)

	b, err := physics.NewBody(pos, vel, parameter.DefaultMass,
		physics.WithRestitution(parameter.DefaultRestitution),
		physics.WithTerminalSpeed(parameter.DefaultTerminalSpeed),
	)
	if err != nil {
		return
	}
	e, err := s.world.CreateBody(b)
	if err != nil {
		return
	}
	if err := s.world.AddCollider(e, r); err != nil {
		s.world.DestroyEntity(e)
		return
	}
	log.Printf("Spawned entity %d at %v", e, pos)
}
