package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRock(ecs *ecs.ECS, realm *assets.Realm, area assets.Rect) *donburi.Entry {
	rock := archetypes.Rock.Spawn(ecs)

	obj := rectBody(realm, area, tags.ResolvSolid)
	obj.Data = rock // Link for O(1) lookup

	components.Object.SetValue(rock, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return rock
}
