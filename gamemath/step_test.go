package gamemath

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStep_Tank(t *testing.T) {
	pose := Pose{X: 1, Z: 2, Rotation: 0.5}
	keys := KeyState{Forward: true, Left: true}

	got := Step(pose, keys, false, 0.1)
	want := CalculateMovement(pose, MovementFromKeys(keys), 0.1)
	assertPose(t, got, want)
}

func TestStep_BirdsEyeKeepsHeadingWhenIdle(t *testing.T) {
	tests := []struct {
		name string
		keys KeyState
	}{
		{"no_keys", KeyState{}},
		{"left_right_cancel", KeyState{Left: true, Right: true}},
		{"all_cancel", KeyState{Forward: true, Backward: true, Left: true, Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := Pose{X: -3, Z: 4, Rotation: 1.25}
			assertPose(t, Step(pose, tt.keys, true, 0.1), pose)
		})
	}
}

func TestStep_BirdsEyeFacesTravel(t *testing.T) {
	pose := Pose{Rotation: 2}
	got := Step(pose, KeyState{Backward: true}, true, 1)
	assertPose(t, got, Pose{X: 0, Z: -BirdsEyeSpeed, Rotation: -math.Pi})
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"same", 1, 1, 0},
		{"left_quarter", 0, math.Pi / 2, math.Pi / 2},
		{"right_quarter", 0, -math.Pi / 2, -math.Pi / 2},
		{"wraps_positive", 3 * math.Pi / 4, -3 * math.Pi / 4, math.Pi / 2},
		{"wraps_negative", -3 * math.Pi / 4, 3 * math.Pi / 4, -math.Pi / 2},
		{"many_turns", 0, 4*math.Pi + 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleDiff(tt.a, tt.b); !approxEqual(got, tt.expected) {
				t.Errorf("AngleDiff(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

var testWander = WanderParams{
	Radius:      3,
	WalkChance:  0.5,
	TurnChance:  0.5,
	MinDecision: 1,
	MaxDecision: 2,
	AimSlack:    0.2,
}

func TestDecide_HeadsHome(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name     string
		pose     Pose
		expected KeyState
	}{
		// Home is at the origin; +X is rotation pi/2.
		{"facing_home", Pose{X: -5, Rotation: math.Pi / 2}, KeyState{Forward: true}},
		{"home_to_the_left", Pose{X: -5, Rotation: 0}, KeyState{Forward: true, Left: true}},
		{"home_to_the_right", Pose{X: -5, Rotation: math.Pi}, KeyState{Forward: true, Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, wait := Decide(tt.pose, 0, 0, testWander, rng)
			if keys != tt.expected {
				t.Errorf("Decide() keys = %+v, expected %+v", keys, tt.expected)
			}
			if wait != testWander.MinDecision {
				t.Errorf("Decide() wait = %v, expected %v", wait, testWander.MinDecision)
			}
		})
	}
}

func TestDecide_WandersNearHome(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	walked, turned := 0, 0

	for i := 0; i < 200; i++ {
		keys, wait := Decide(Pose{X: 1}, 0, 0, testWander, rng)
		if wait < testWander.MinDecision || wait > testWander.MaxDecision {
			t.Fatalf("wait = %v, expected within [%v, %v]", wait, testWander.MinDecision, testWander.MaxDecision)
		}
		if keys.Backward {
			t.Fatal("wandering never walks backward")
		}
		if keys.Left && keys.Right {
			t.Fatal("wandering never holds both turn keys")
		}
		if keys.Forward {
			walked++
		}
		if keys.Left || keys.Right {
			turned++
		}
	}

	if walked == 0 || walked == 200 {
		t.Errorf("walked %d of 200 decisions, expected a mix", walked)
	}
	if turned == 0 || turned == 200 {
		t.Errorf("turned %d of 200 decisions, expected a mix", turned)
	}
}
