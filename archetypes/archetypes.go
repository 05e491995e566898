package archetypes

import (
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Object,
	)
	NPC = newArchetype(
		tags.NPC,
		components.NPC,
		components.Actor,
		components.Object,
	)
	Grain = newArchetype(
		tags.Grain,
		components.Grain,
		components.Object,
	)
	Rock = newArchetype(
		tags.Rock,
		components.Object,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Realm = newArchetype(
		components.Realm,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
