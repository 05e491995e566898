package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the turtle at (x, z) facing +Z.
func CreatePlayer(ecs *ecs.ECS, realm *assets.Realm, x, z float64, name string, steering cfg.SteeringMode) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := bodyAt(realm, x, z, cfg.Movement.PlayerRadius)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Name:     name,
		Steering: steering,
	})
	components.Actor.SetValue(player, components.ActorData{
		Pose:   gamemath.Pose{X: x, Z: z},
		Radius: cfg.Movement.PlayerRadius,
	})

	addToSpace(ecs, obj)
	return player
}
