package systems

import (
	"math"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held keys into turtle motion using the current
// steering mode.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	actor := components.Actor.Get(playerEntry)

	if GetAction(input, cfg.ActionToggleSteering).JustPressed {
		ToggleSteering(e)
	}

	if IsDialogueActive(e) {
		actor.Keys = gamemath.KeyState{}
		actor.Moving = false
		return
	}

	actor.Keys = MovementKeys(input)
	birdsEye := player.Steering == cfg.SteeringBirdsEye
	before := actor.WalkPhase
	stepActor(e, playerEntry, birdsEye, GetOrCreateFrame(e).Dt, tags.ResolvSolid, tags.ResolvNPC)

	// One footstep each time the walk cycle crosses an interval boundary.
	if interval := cfg.Movement.StepInterval; actor.Moving && interval > 0 &&
		math.Floor(actor.WalkPhase/interval) > math.Floor(before/interval) {
		PlaySFX(e, cfg.SoundStep)
	}
}

// stepActor integrates one actor for dt seconds and resolves collisions.
// With dt = 0 nothing moves and the actor stops animating.
func stepActor(e *ecs.ECS, entry *donburi.Entry, birdsEye bool, dt float64, blocking ...string) {
	actor := components.Actor.Get(entry)
	realm := CurrentRealm(e)
	if realm == nil || dt <= 0 {
		actor.Moving = false
		return
	}

	if birdsEye {
		actor.Moving = gamemath.IsMovingBirdsEye(actor.Keys)
	} else {
		actor.Moving = gamemath.IsMoving(actor.Keys)
	}

	next := gamemath.Step(actor.Pose, actor.Keys, birdsEye, dt)
	obj := components.Object.Get(entry)
	moveActor(realm, obj.Object, actor, next, blocking...)

	if actor.Moving {
		actor.WalkPhase += dt
	}
}

// CurrentSteering returns the player's steering mode, or the configured
// default when no player exists yet.
func CurrentSteering(e *ecs.ECS) cfg.SteeringMode {
	if entry, ok := tags.Player.First(e.World); ok {
		return components.Player.Get(entry).Steering
	}
	return cfg.Movement.DefaultSteering
}

// ToggleSteering flips between tank and bird's-eye steering and remembers
// the choice in the saved settings.
func ToggleSteering(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Steering == cfg.SteeringBirdsEye {
		player.Steering = cfg.SteeringTank
	} else {
		player.Steering = cfg.SteeringBirdsEye
	}

	if svc := GetServices(e); svc != nil && svc.Settings != nil {
		svc.Settings.Steering = player.Steering.Key()
		SaveSettings(svc)
	}
	ShowHint(e, "Steering: "+player.Steering.String())
	PlaySFX(e, cfg.SoundMenuSelect)
}
