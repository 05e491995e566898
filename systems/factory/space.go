package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the realm's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// bodyAt builds a square collision body centered on a world position.
func bodyAt(realm *assets.Realm, x, z, radius float64, tags ...string) *resolv.Object {
	px, py := realm.ToPixels(x, z)
	size := 2 * radius * realm.PixelsPerUnit
	obj := resolv.NewObject(px-size/2, py-size/2, size, size, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	return obj
}

// rectBody builds a collision body covering a world rectangle.
func rectBody(realm *assets.Realm, r assets.Rect, tags ...string) *resolv.Object {
	ppu := realm.PixelsPerUnit
	px, py := realm.ToPixels(r.MaxX, r.MaxZ)
	w := (r.MaxX - r.MinX) * ppu
	h := (r.MaxZ - r.MinZ) * ppu
	obj := resolv.NewObject(px, py, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
