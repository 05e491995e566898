package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var npcRand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xc0073e))

// UpdateNPCs runs every animal's wander brain and moves it with the same
// tank integrator the turtle uses.
func UpdateNPCs(e *ecs.ECS) {
	dt := GetOrCreateFrame(e).Dt
	params := gamemath.WanderParams{
		Radius:      cfg.NPC.WanderRadius,
		WalkChance:  cfg.NPC.WalkChance,
		TurnChance:  cfg.NPC.TurnChance,
		MinDecision: cfg.NPC.MinDecisionTime,
		MaxDecision: cfg.NPC.MaxDecisionTime,
		AimSlack:    cfg.NPC.AimSlack,
	}

	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		npc := components.NPC.Get(entry)
		actor := components.Actor.Get(entry)

		if npc.Hover != nil {
			v, _, _ := npc.Hover.Update(float32(dt))
			npc.HoverOffset = float64(v)
		}

		if npc.Talking {
			actor.Keys = gamemath.KeyState{}
			actor.Moving = false
			return
		}

		npc.DecisionIn -= dt
		if npc.DecisionIn <= 0 {
			actor.Keys, npc.DecisionIn = gamemath.Decide(actor.Pose, npc.HomeX, npc.HomeZ, params, npcRand)
			debugf("%s the %s holds %+v for %.1fs", npc.Name, npc.Animal, actor.Keys, npc.DecisionIn)
		}

		stepActor(e, entry, false, dt, tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvNPC)
	})
}
