package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/audio"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/scenario"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSandbox(t *testing.T) (*sandbox, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	clock := &fakeClock{now: time.Unix(0, 0)}
	sb, err := newSandbox(screen, scenario.Default(), clock, audio.NewImpactPlayer(nil))
	if err != nil {
		t.Fatalf("newSandbox failed: %v", err)
	}
	return sb, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSandboxFrameSteps(t *testing.T) {
	sb, clock := newTestSandbox(t)

	clock.advance(3 * parameter.FixedTimestep)
	if n := sb.frame(); n != 3 {
		t.Errorf("Expected 3 steps, got %d", n)
	}
	if sb.world.Tick() != 3 {
		t.Errorf("Expected tick 3, got %d", sb.world.Tick())
	}

	// A long stall is capped
	clock.advance(10 * time.Second)
	if n := sb.frame(); n != parameter.MaxStepsPerFrame {
		t.Errorf("Expected %d steps after stall, got %d", parameter.MaxStepsPerFrame, n)
	}
}

func TestSandboxPauseAndSingleStep(t *testing.T) {
	sb, clock := newTestSandbox(t)

	sb.handleKey(key(' '))
	if !sb.hud().Paused {
		t.Fatal("Expected paused after space")
	}

	clock.advance(time.Second)
	if n := sb.frame(); n != 0 {
		t.Errorf("Expected no steps while paused, got %d", n)
	}

	sb.handleKey(key('s'))
	if n := sb.frame(); n != 1 {
		t.Errorf("Expected one single step, got %d", n)
	}

	sb.handleKey(key(' '))
	if sb.hud().Paused {
		t.Error("Expected running after second space")
	}
}

func TestSandboxToggles(t *testing.T) {
	sb, _ := newTestSandbox(t)

	sb.handleKey(key('g'))
	sb.handleKey(key('k'))
	hud := sb.hud()
	if hud.GravityEnabled || hud.SpringsEnabled {
		t.Errorf("Expected gravity and springs off, got %+v", hud)
	}

	sb.handleKey(key('i'))
	if hud := sb.hud(); hud.Integrator != "explicit-euler" {
		t.Errorf("Expected explicit-euler after one cycle, got %s", hud.Integrator)
	}
	sb.handleKey(key('i'))
	sb.handleKey(key('i'))
	if hud := sb.hud(); hud.Integrator != "semi-implicit-euler" {
		t.Errorf("Expected cycle back to semi-implicit-euler, got %s", hud.Integrator)
	}

	sb.handleKey(key('m'))
	if !sb.player.IsMuted() {
		t.Error("Expected muted after m")
	}
}

func TestSandboxSpawnAndReset(t *testing.T) {
	sb, _ := newTestSandbox(t)
	initial := sb.world.EntityCount()

	sb.handleKey(key('b'))
	sb.handleKey(key('b'))
	if got := sb.world.EntityCount(); got != initial+2 {
		t.Fatalf("Expected %d bodies after spawning, got %d", initial+2, got)
	}

	w, h := sb.scene.World.Width, sb.scene.World.Height
	r := parameter.DefaultRadius
	for _, c := range sb.world.Colliders() {
		p := c.Body.Position()
		if p.X < c.Radius || p.X > w-c.Radius || p.Y < c.Radius || p.Y > h-c.Radius {
			t.Errorf("Entity %d spawned outside the area: %v (r=%v)", c.Entity, p, r)
		}
	}

	sb.handleKey(key('g'))
	sb.handleKey(key('r'))
	if got := sb.world.EntityCount(); got != initial {
		t.Errorf("Expected %d bodies after reset, got %d", initial, got)
	}
	if sb.systems.Force.GravityEnabled() {
		t.Error("Expected toggles kept across reset")
	}
}

func TestSandboxQuitKeys(t *testing.T) {
	sb, _ := newTestSandbox(t)

	quits := []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if sb.handleKey(ev) {
			t.Errorf("Expected quit for %v", ev.Name())
		}
	}
	if !sb.handleKey(key('x')) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestLoadSceneIntegratorOverride(t *testing.T) {
	scene, err := loadScene("", "verlet")
	if err != nil {
		t.Fatalf("loadScene failed: %v", err)
	}
	if scene.World.Integrator != "verlet" {
		t.Errorf("Expected verlet, got %q", scene.World.Integrator)
	}

	if _, err := loadScene("", "rk4"); err == nil {
		t.Error("Expected unknown integrator to be rejected")
	}
	if _, err := loadScene("does-not-exist.yaml", ""); err == nil {
		t.Error("Expected missing file to fail")
	}
}

func TestRunHeadless(t *testing.T) {
	sum, err := runHeadless(scenario.Default(), 120, 0)
	if err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	if sum.Ticks != 120 {
		t.Errorf("Expected 120 ticks, got %d", sum.Ticks)
	}
	if sum.Bodies != 6 {
		t.Errorf("Expected 6 bodies, got %d", sum.Bodies)
	}
	if !sum.Momentum.IsFinite() || sum.Kinetic <= 0 {
		t.Errorf("Expected finite moving state, got %+v", sum)
	}
}
