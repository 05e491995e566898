package gamemath

import "math"

// Movement tuning shared by the player, NPCs and tests.
const (
	WalkSpeed     = 0.8 // units per second
	TurnSpeed     = 2.0 // radians per second
	BirdsEyeSpeed = 0.8 // units per second
)

// KeyState is the set of movement keys held this frame.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Intent is a per-axis movement request, each axis in {-1, 0, 1}.
// Turn +1 turns left (counter-clockwise seen from above).
type Intent struct {
	Forward int
	Turn    int
}

// Pose is a position on the ground plane plus a heading in radians.
// Rotation 0 faces +Z, Rotation pi/2 faces +X.
type Pose struct {
	X        float64
	Z        float64
	Rotation float64
}

// Vector2 is a displacement on the ground plane.
type Vector2 struct {
	X float64
	Z float64
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Z)
}

// axis resolves a pair of opposing keys to -1, 0 or 1.
func axis(positive, negative bool) int {
	if positive && !negative {
		return 1
	}
	if negative && !positive {
		return -1
	}
	return 0
}

// MovementFromKeys resolves held keys into an Intent. Opposing keys cancel.
func MovementFromKeys(keys KeyState) Intent {
	return Intent{
		Forward: axis(keys.Forward, keys.Backward),
		Turn:    axis(keys.Left, keys.Right),
	}
}

// CalculateMovement advances a pose with tank steering. The heading is
// turned first and the forward step uses the new heading. Position is not
// clamped; NaN or Inf in dt propagate into the result.
func CalculateMovement(pose Pose, intent Intent, dt float64) Pose {
	rotation := pose.Rotation + float64(intent.Turn)*TurnSpeed*dt
	d := float64(intent.Forward) * WalkSpeed * dt

	return Pose{
		X:        pose.X + math.Sin(rotation)*d,
		Z:        pose.Z + math.Cos(rotation)*d,
		Rotation: rotation,
	}
}

// CalculateBirdsEyeMovement moves along fixed world axes regardless of the
// current heading. Left maps to +X to match the overhead camera. The heading
// faces the direction of travel, or 0 when no direction is held.
func CalculateBirdsEyeMovement(pose Pose, keys KeyState, dt float64) Pose {
	var moveX, moveZ float64
	if keys.Forward {
		moveZ++
	}
	if keys.Backward {
		moveZ--
	}
	if keys.Left {
		moveX++
	}
	if keys.Right {
		moveX--
	}

	rotation := 0.0
	if moveX != 0 || moveZ != 0 {
		rotation = math.Atan2(-moveX, moveZ)
	}

	step := NormalizeMovement(moveX, moveZ)
	scale := BirdsEyeSpeed * dt

	return Pose{
		X:        pose.X + step.X*scale,
		Z:        pose.Z + step.Z*scale,
		Rotation: rotation,
	}
}

// NormalizeMovement scales (x, z) down to unit length when it is longer
// than 1. Shorter vectors, including zero, are returned unchanged.
func NormalizeMovement(x, z float64) Vector2 {
	magnitude := math.Sqrt(x*x + z*z)
	if magnitude == 0 || magnitude <= 1 {
		return Vector2{X: x, Z: z}
	}
	return Vector2{X: x / magnitude, Z: z / magnitude}
}

// IsMoving reports whether the resolved intent asks for any motion.
// Opposing keys that cancel out do not count.
func IsMoving(keys KeyState) bool {
	intent := MovementFromKeys(keys)
	return intent.Forward != 0 || intent.Turn != 0
}

// IsMovingBirdsEye reports whether any movement key is held. Unlike
// IsMoving it does not cancel opposing keys, so Left+Right reports true
// even though the step displaces nothing.
func IsMovingBirdsEye(keys KeyState) bool {
	return keys.Forward || keys.Backward || keys.Left || keys.Right
}
