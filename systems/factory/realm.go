package factory

import (
	"fmt"

	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRealmState registers the loaded realms and marks start as current.
func CreateRealmState(ecs *ecs.ECS, realms map[string]*assets.Realm, start string) (*donburi.Entry, error) {
	current, ok := realms[start]
	if !ok {
		return nil, fmt.Errorf("unknown start realm %q", start)
	}

	entry := archetypes.Realm.Spawn(ecs)
	components.Realm.Set(entry, &components.RealmData{
		Current: current,
		Realms:  realms,
	})
	return entry, nil
}

// PopulateRealm builds the collision space and every entity of realm,
// skipping grains already collected, and returns the player.
func PopulateRealm(ecs *ecs.ECS, realm *assets.Realm, collected func(grainID string) bool, name string, steering cfg.SteeringMode) *donburi.Entry {
	CreateSpace(ecs, realm.PixelWidth, realm.PixelHeight, 16, 16)

	for _, rock := range realm.Rocks {
		CreateRock(ecs, realm, rock)
	}
	for _, portal := range realm.Portals {
		CreatePortal(ecs, realm, portal)
	}
	for _, grain := range realm.Grains {
		if collected != nil && collected(grain.ID) {
			continue
		}
		CreateGrain(ecs, realm, grain)
	}
	for _, npc := range realm.NPCs {
		CreateNPC(ecs, realm, npc)
	}

	return CreatePlayer(ecs, realm, realm.Spawn.X, realm.Spawn.Z, name, steering)
}
