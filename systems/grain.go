package systems

import (
	"fmt"
	"log"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrains pulses the Time Grains and collects the ones the turtle
// walks over.
func UpdateGrains(e *ecs.ECS) {
	dt := float32(GetOrCreateFrame(e).Dt)
	tags.Grain.Each(e.World, func(entry *donburi.Entry) {
		grain := components.Grain.Get(entry)
		if grain.Pulse != nil {
			v, _, _ := grain.Pulse.Update(dt)
			grain.Scale = float64(v)
		}
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	realm := CurrentRealm(e)
	if realm == nil {
		return
	}
	svc := GetServices(e)

	playerObj := components.Object.Get(playerEntry)
	for _, obj := range touching(playerObj.Object, tags.ResolvGrain) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		grain := components.Grain.Get(entry)

		if svc != nil && svc.Inventory != nil && svc.Inventory.MarkCollected(realm.Name, grain.ID) {
			if err := svc.Inventory.AddGrains(grain.Value); err != nil {
				log.Printf("Warning: Could not credit grain %s: %v", grain.ID, err)
			}
		}

		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj)
		}
		e.World.Remove(entry.Entity())

		PlaySFX(e, cfg.SoundGrain)
		ShowHint(e, fmt.Sprintf("+%d Time Grain", grain.Value))
		debugf("collected grain %s in %s", grain.ID, realm.Name)
	}
}
