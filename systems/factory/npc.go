package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNPC spawns a wandering animal that bobs in place using a looping
// tween sequence.
func CreateNPC(ecs *ecs.ECS, realm *assets.Realm, spawn assets.NPCSpawn) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)

	obj := bodyAt(realm, spawn.X, spawn.Z, cfg.Movement.NPCRadius, "character", tags.ResolvNPC)
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	half := float32(cfg.NPC.HoverPeriod / 2)
	height := float32(cfg.NPC.HoverHeight)
	hover := gween.NewSequence()
	hover.Add(
		gween.New(0, -height, half, ease.InOutSine),
		gween.New(-height, 0, half, ease.InOutSine),
	)
	hover.SetLoop(-1)

	components.NPC.SetValue(npc, components.NPCData{
		Name:     spawn.Name,
		Animal:   spawn.Animal,
		Dialogue: spawn.Dialogue,
		HomeX:    spawn.X,
		HomeZ:    spawn.Z,
		Hover:    hover,
	})
	components.Actor.SetValue(npc, components.ActorData{
		Pose:   gamemath.Pose{X: spawn.X, Z: spawn.Z},
		Radius: cfg.Movement.NPCRadius,
	})

	addToSpace(ecs, obj)
	return npc
}
