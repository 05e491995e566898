package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGrain(ecs *ecs.ECS, realm *assets.Realm, spawn assets.GrainSpawn) *donburi.Entry {
	grain := archetypes.Grain.Spawn(ecs)

	obj := bodyAt(realm, spawn.X, spawn.Z, cfg.Grain.Size/2, tags.ResolvGrain)
	obj.Data = grain
	components.Object.SetValue(grain, components.ObjectData{Object: obj})

	half := float32(cfg.Grain.PulsePeriod / 2)
	lo, hi := float32(cfg.Grain.PulseMin), float32(cfg.Grain.PulseMax)
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(lo, hi, half, ease.OutQuad),
		gween.New(hi, lo, half, ease.InQuad),
	)
	pulse.SetLoop(-1)

	components.Grain.SetValue(grain, components.GrainData{
		ID:    spawn.ID,
		Value: spawn.Value,
		X:     spawn.X,
		Z:     spawn.Z,
		Pulse: pulse,
		Scale: cfg.Grain.PulseMin,
	})

	addToSpace(ecs, obj)
	return grain
}
