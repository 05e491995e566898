package gamemath

import "math"

// Viewport maps the ground plane onto the screen for an overhead camera.
// +Z points up the screen and +X points left, which keeps "turn left" and
// the bird's-eye left key moving toward screen-left.
type Viewport struct {
	CenterX, CenterZ float64 // world position at the middle of the screen
	Scale            float64 // screen pixels per world unit
	Width, Height    float64 // screen size in pixels
}

// ToScreen returns the screen pixel position of (x, z).
func (v Viewport) ToScreen(x, z float64) (sx, sy float64) {
	return v.Width/2 - (x-v.CenterX)*v.Scale, v.Height/2 - (z-v.CenterZ)*v.Scale
}

// HeadingOnScreen returns the unit screen direction an actor with the given
// rotation faces.
func HeadingOnScreen(rotation float64) (dx, dy float64) {
	return -math.Sin(rotation), -math.Cos(rotation)
}
