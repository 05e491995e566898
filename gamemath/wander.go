package gamemath

import (
	"math"
	"math/rand/v2"
)

// WanderParams tunes the wandering brain of an animal.
type WanderParams struct {
	Radius      float64 // distance from home before it heads back
	WalkChance  float64 // probability a decision walks forward
	TurnChance  float64 // probability a decision turns
	MinDecision float64 // seconds
	MaxDecision float64
	AimSlack    float64 // radians of heading error tolerated when heading home
}

// Decide picks the keys a wandering actor holds and how many seconds until
// it decides again. Outside Radius it always turns toward home and walks.
func Decide(pose Pose, homeX, homeZ float64, p WanderParams, rng *rand.Rand) (KeyState, float64) {
	dx, dz := homeX-pose.X, homeZ-pose.Z
	if math.Hypot(dx, dz) > p.Radius {
		keys := KeyState{Forward: true}
		diff := AngleDiff(pose.Rotation, math.Atan2(dx, dz))
		if diff > p.AimSlack {
			keys.Left = true
		} else if diff < -p.AimSlack {
			keys.Right = true
		}
		return keys, p.MinDecision
	}

	var keys KeyState
	if rng.Float64() < p.WalkChance {
		keys.Forward = true
	}
	if rng.Float64() < p.TurnChance {
		if rng.IntN(2) == 0 {
			keys.Left = true
		} else {
			keys.Right = true
		}
	}

	wait := p.MinDecision
	if p.MaxDecision > p.MinDecision {
		wait += rng.Float64() * (p.MaxDecision - p.MinDecision)
	}
	return keys, wait
}

// AngleDiff returns the signed shortest rotation from a to b, in [-pi, pi].
// Positive means b lies to the left of a.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
