package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 18)
	RgbBorder     = tcell.NewRGBColor(70, 80, 100)
	RgbStatic     = tcell.NewRGBColor(150, 150, 150)
	RgbSpring     = tcell.NewRGBColor(200, 170, 60)
	RgbHud        = tcell.NewRGBColor(0, 255, 255)
	RgbPaused     = tcell.NewRGBColor(255, 200, 0)
)

// Speed ramp endpoints, blended in HCL so midpoints stay saturated
var (
	speedSlow = colorful.Color{R: 0.25, G: 0.45, B: 1.0}
	speedFast = colorful.Color{R: 1.0, G: 0.25, B: 0.15}
)

// SpeedColor maps speed in [0, maxSpeed] onto the slow-to-fast ramp
func SpeedColor(speed, maxSpeed float64) tcell.Color {
	t := 0.0
	if maxSpeed > 0 {
		t = speed / maxSpeed
	}
	if !(t > 0) {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := speedSlow.BlendHcl(speedFast, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
