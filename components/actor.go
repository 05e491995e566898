package components

import (
	"github.com/automoto/cooter/gamemath"
	"github.com/yohamta/donburi"
)

// ActorData is anything that walks the ground plane with the shared
// integrator: the turtle and the wandering animals.
type ActorData struct {
	Pose      gamemath.Pose
	Keys      gamemath.KeyState // keys held this frame, real or synthesized
	Radius    float64           // collision half-size in world units
	Moving    bool
	WalkPhase float64 // seconds spent moving, drives the leg wobble
}

var Actor = donburi.NewComponentType[ActorData]()
