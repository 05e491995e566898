package systems

import (
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	"github.com/automoto/cooter/gamemath"
	"github.com/solarlune/resolv"
)

// moveActor moves an actor's body toward next, one axis at a time, stopping
// at anything carrying a blocking tag. The realm bounds clamp the target
// first. The resolved body center is written back as the actor's pose.
func moveActor(realm *assets.Realm, obj *resolv.Object, actor *components.ActorData, next gamemath.Pose, blocking ...string) {
	next.X, next.Z = realm.Clamp(next.X, next.Z, actor.Radius)

	// World axes are mirrored in pixel space.
	dx := -(next.X - actor.Pose.X) * realm.PixelsPerUnit
	dy := -(next.Z - actor.Pose.Z) * realm.PixelsPerUnit

	if dx != 0 && !blocked(obj, dx, 0, blocking) {
		obj.X += dx
		obj.Update()
	}
	if dy != 0 && !blocked(obj, 0, dy, blocking) {
		obj.Y += dy
		obj.Update()
	}

	x, z := realm.FromPixels(obj.X+obj.W/2, obj.Y+obj.H/2)
	actor.Pose = gamemath.Pose{X: x, Z: z, Rotation: next.Rotation}
}

// blocked reports whether moving obj by (dx, dy) would overlap a blocking
// object it does not already overlap. Resolv's cell query is coarse, so the
// candidates are confirmed with an exact rectangle test.
func blocked(obj *resolv.Object, dx, dy float64, blocking []string) bool {
	check := obj.Check(dx, dy, blocking...)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		if other == obj || overlaps(obj, 0, 0, other) {
			continue
		}
		if overlaps(obj, dx, dy, other) {
			return true
		}
	}
	return false
}

func overlaps(obj *resolv.Object, dx, dy float64, other *resolv.Object) bool {
	return obj.X+dx < other.X+other.W && obj.X+dx+obj.W > other.X &&
		obj.Y+dy < other.Y+other.H && obj.Y+dy+obj.H > other.Y
}

// touching returns the objects with any of the given tags that overlap obj.
func touching(obj *resolv.Object, tags ...string) []*resolv.Object {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.Objects {
		if other != obj && overlaps(obj, 0, 0, other) {
			out = append(out, other)
		}
	}
	return out
}
