package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/vmath"
)

// HUD is the status line content supplied by the host loop
type HUD struct {
	Integrator     string
	Paused         bool
	GravityEnabled bool
	SpringsEnabled bool
	Contacts       int
}

// TerminalRenderer draws the world scaled into the screen below a one-row HUD
type TerminalRenderer struct {
	screen        tcell.Screen
	worldWidth    float64
	worldHeight   float64
	speedForColor float64
}

// NewTerminalRenderer creates a renderer for a worldWidth x worldHeight area
// speedForColor is the speed drawn at the hot end of the color ramp
func NewTerminalRenderer(screen tcell.Screen, worldWidth, worldHeight, speedForColor float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:        screen,
		worldWidth:    worldWidth,
		worldHeight:   worldHeight,
		speedForColor: speedForColor,
	}
}

// RenderFrame draws one frame and shows it
func (r *TerminalRenderer) RenderFrame(world *engine.World, hud HUD) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawBorder(defaultStyle)
	r.drawSprings(world, defaultStyle)
	r.drawBodies(world, defaultStyle)
	r.drawHud(world, hud, defaultStyle)

	r.screen.Show()
}

// field returns the drawable area inside the border, below the HUD row
func (r *TerminalRenderer) field() (x0, y0, w, h int) {
	sw, sh := r.screen.Size()
	return 1, 2, sw - 2, sh - 3
}

// ToScreen maps a world position to a cell inside the border
// ok is false when the field is too small to draw
func (r *TerminalRenderer) ToScreen(p vmath.Vec2) (x, y int, ok bool) {
	x0, y0, w, h := r.field()
	if w <= 0 || h <= 0 || r.worldWidth <= 0 || r.worldHeight <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X / r.worldWidth * float64(w)))
	cy := int(math.Floor(p.Y / r.worldHeight * float64(h)))
	cx = min(max(cx, 0), w-1)
	cy = min(max(cy, 0), h-1)
	return x0 + cx, y0 + cy, true
}

func (r *TerminalRenderer) drawBorder(defaultStyle tcell.Style) {
	sw, sh := r.screen.Size()
	style := defaultStyle.Foreground(RgbBorder)
	top, bottom := 1, sh-1
	for x := 0; x < sw; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(sw-1, y, '│', nil, style)
	}
	r.screen.SetContent(0, top, '┌', nil, style)
	r.screen.SetContent(sw-1, top, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(sw-1, bottom, '┘', nil, style)
}

// drawSprings samples each spring segment once per cell along its longer axis
func (r *TerminalRenderer) drawSprings(world *engine.World, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbSpring)
	for _, s := range world.Springs() {
		if !s.IsActive() {
			continue
		}
		ax, ay, ok := r.ToScreen(s.A().Position())
		if !ok {
			return
		}
		bx, by, _ := r.ToScreen(s.B().Position())

		steps := max(abs(bx-ax), abs(by-ay))
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			x := ax + int(math.Round(t*float64(bx-ax)))
			y := ay + int(math.Round(t*float64(by-ay)))
			r.screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBodies(world *engine.World, defaultStyle tcell.Style) {
	for _, c := range world.Colliders() {
		x, y, ok := r.ToScreen(c.Body.Position())
		if !ok {
			return
		}
		if c.Body.IsStatic() {
			r.screen.SetContent(x, y, '#', nil, defaultStyle.Foreground(RgbStatic))
			continue
		}
		glyph := 'o'
		if c.Radius >= 2 {
			glyph = '●'
		}
		color := SpeedColor(c.Body.Speed(), r.speedForColor)
		r.screen.SetContent(x, y, glyph, nil, defaultStyle.Foreground(color))
	}
}

func (r *TerminalRenderer) drawHud(world *engine.World, hud HUD, defaultStyle tcell.Style) {
	p := world.TotalMomentum()
	text := fmt.Sprintf(" tick %d  bodies %d  springs %d  contacts %d  KE %.1f  p (%.1f, %.1f)  %s  grav:%s springs:%s",
		world.Tick(), world.EntityCount(), world.SpringCount(), hud.Contacts,
		world.TotalKineticEnergy(), p.X, p.Y, hud.Integrator,
		onOff(hud.GravityEnabled), onOff(hud.SpringsEnabled))

	style := defaultStyle.Foreground(RgbHud)
	r.drawText(0, 0, text, style)

	if hud.Paused {
		sw, _ := r.screen.Size()
		label := " PAUSED "
		r.drawText(sw-len(label), 0, label, defaultStyle.Foreground(tcell.ColorBlack).Background(RgbPaused))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	sw, _ := r.screen.Size()
	for i, ch := range []rune(text) {
		if x+i >= sw {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
