package gamemath

import (
	"math"
	"testing"
)

func TestViewport_ToScreen(t *testing.T) {
	v := Viewport{CenterX: -10, CenterZ: -5, Scale: 40, Width: 640, Height: 360}

	tests := []struct {
		name   string
		x, z   float64
		sx, sy float64
	}{
		{"center", -10, -5, 320, 180},
		{"plus_z_is_up", -10, -4, 320, 140},
		{"plus_x_is_left", -9, -5, 280, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := v.ToScreen(tt.x, tt.z)
			if !approxEqual(sx, tt.sx) || !approxEqual(sy, tt.sy) {
				t.Errorf("ToScreen(%v, %v) = (%v, %v), expected (%v, %v)", tt.x, tt.z, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

// Walking forward must move the drawn turtle the way its head points.
func TestHeadingOnScreen_MatchesMovement(t *testing.T) {
	v := Viewport{Scale: 1, Width: 0, Height: 0}

	for _, rotation := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 3, 2.5} {
		start := Pose{Rotation: rotation}
		end := CalculateMovement(start, Intent{Forward: 1}, 1)

		x0, y0 := v.ToScreen(start.X, start.Z)
		x1, y1 := v.ToScreen(end.X, end.Z)
		hx, hy := HeadingOnScreen(rotation)

		if !approxEqual((x1-x0)/WalkSpeed, hx) || !approxEqual((y1-y0)/WalkSpeed, hy) {
			t.Errorf("rotation %v: screen step (%v, %v), heading (%v, %v)", rotation, x1-x0, y1-y0, hx, hy)
		}
	}
}

func TestHeadingOnScreen_TurnLeftIsCounterClockwise(t *testing.T) {
	// Up the screen, then a quarter turn left points screen-left.
	hx, hy := HeadingOnScreen(0)
	if !approxEqual(hx, 0) || !approxEqual(hy, -1) {
		t.Errorf("HeadingOnScreen(0) = (%v, %v), expected (0, -1)", hx, hy)
	}
	hx, hy = HeadingOnScreen(TurnSpeed * (math.Pi / 2 / TurnSpeed))
	if !approxEqual(hx, -1) || !approxEqual(hy, 0) {
		t.Errorf("HeadingOnScreen(pi/2) = (%v, %v), expected (-1, 0)", hx, hy)
	}
}
