package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePortal creates a realm gate. Gates with no grain requirement start
// unlocked.
func CreatePortal(ecs *ecs.ECS, realm *assets.Realm, spawn assets.PortalSpawn) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	obj := rectBody(realm, spawn.Area, tags.ResolvPortal)
	obj.Data = portal

	components.Object.SetValue(portal, components.ObjectData{Object: obj})
	components.Portal.SetValue(portal, components.PortalData{
		Name:           spawn.Name,
		Target:         spawn.Target,
		RequiredGrains: spawn.RequiredGrains,
		Area:           spawn.Area,
		Unlocked:       spawn.RequiredGrains <= 0,
	})

	addToSpace(ecs, obj)
	return portal
}
