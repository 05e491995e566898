package systems

import (
	"fmt"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePortals unlocks gates once enough grains are held and moves the
// turtle through an unlocked gate it steps into. A locked gate shows its
// price once per visit.
func UpdatePortals(e *ecs.ECS) {
	grains := 0
	if svc := GetServices(e); svc != nil && svc.Inventory != nil {
		grains = svc.Inventory.Grains()
	}

	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		portal.Unlocked = grains >= portal.RequiredGrains
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	inside := map[*donburi.Entry]bool{}
	for _, obj := range touching(playerObj.Object, tags.ResolvPortal) {
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			inside[entry] = true
		}
	}

	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		entered := inside[entry] && !portal.Occupied
		portal.Occupied = inside[entry]
		if !entered {
			return
		}

		if !portal.Unlocked {
			PlaySFX(e, cfg.SoundPortalLocked)
			ShowHint(e, fmt.Sprintf(cfg.Message.LockedPortalFmt, portal.RequiredGrains))
			return
		}

		PlaySFX(e, cfg.SoundPortal)
		RequestRealm(e, portal.Target)
	})
}
