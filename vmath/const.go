package vmath

// ConstVec2 is a read-only vector for named constants
// It has no mutating methods, so modifying a constant is rejected at compile time
// Derived operations return ordinary mutable Vec2 values
type ConstVec2 struct {
	x, y float64
}

// Screen coordinates: +X right, +Y down
var (
	Zero  = ConstVec2{0, 0}
	Up    = ConstVec2{0, -1}
	Down  = ConstVec2{0, 1}
	Left  = ConstVec2{-1, 0}
	Right = ConstVec2{1, 0}
)

func (c ConstVec2) X() float64 { return c.x }
func (c ConstVec2) Y() float64 { return c.y }

// Vec returns a mutable copy
func (c ConstVec2) Vec() Vec2 {
	return Vec2{c.x, c.y}
}

func (c ConstVec2) Add(o Vec2) Vec2 { return c.Vec().Add(o) }
func (c ConstVec2) Sub(o Vec2) Vec2 { return c.Vec().Sub(o) }
func (c ConstVec2) Scale(s float64) Vec2 { return c.Vec().Scale(s) }
func (c ConstVec2) Dot(o Vec2) float64 { return c.Vec().Dot(o) }
func (c ConstVec2) Cross(o Vec2) float64 { return c.Vec().Cross(o) }
func (c ConstVec2) Magnitude() float64 { return c.Vec().Magnitude() }
func (c ConstVec2) Rotated(a float64) Vec2 { return c.Vec().Rotated(a) }
func (c ConstVec2) String() string { return c.Vec().String() }
func (c ConstVec2) Equal(v Vec2) bool { return v.X == c.x && v.Y == c.y }
