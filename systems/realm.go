package systems

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/systems/factory"
	"github.com/automoto/cooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CurrentRealm returns the realm being played, or nil before one is loaded.
func CurrentRealm(e *ecs.ECS) *assets.Realm {
	entry, ok := components.Realm.First(e.World)
	if !ok {
		return nil
	}
	return components.Realm.Get(entry).Current
}

// RequestRealm schedules a switch to the named realm at the end of the frame.
func RequestRealm(e *ecs.ECS, name string) {
	if entry, ok := components.Realm.First(e.World); ok {
		components.Realm.Get(entry).Pending = name
	}
}

// EnterRealm tears down the current realm's entities and builds the named
// one around a fresh player and camera.
func EnterRealm(e *ecs.ECS, name string) {
	entry, ok := components.Realm.First(e.World)
	if !ok {
		return
	}
	state := components.Realm.Get(entry)
	realm, ok := state.Realms[name]
	if !ok {
		debugf("realm %q does not exist", name)
		return
	}

	steering := CurrentSteering(e)
	clearRealm(e)

	state.Current = realm
	state.Pending = ""

	playerName := ""
	var collected func(string) bool
	if svc := GetServices(e); svc != nil {
		if svc.Settings != nil {
			playerName = svc.Settings.PlayerName
		}
		if svc.Inventory != nil {
			collected = func(id string) bool { return svc.Inventory.IsCollected(realm.Name, id) }
		}
	}

	factory.PopulateRealm(e, realm, collected, playerName, steering)
	factory.CreateCamera(e, realm.Spawn.X, realm.Spawn.Z)
	ResetDialogue(e)

	if loop, ok := cfg.Sound.RealmLoops[realm.Name]; ok {
		StartLoop(e, loop)
	}
	debugf("entered realm %s", realm.Name)
}

// UpdateRealm applies a pending realm switch. It runs last so no system sees
// a half-built realm.
func UpdateRealm(e *ecs.ECS) {
	entry, ok := components.Realm.First(e.World)
	if !ok {
		return
	}
	state := components.Realm.Get(entry)
	if state.Pending == "" {
		return
	}

	if svc := GetServices(e); svc != nil {
		SubmitScore(svc, time.Now())
	}
	Autosave(e)
	EnterRealm(e, state.Pending)
}

// clearRealm removes every entity that belongs to a single realm.
func clearRealm(e *ecs.ECS) {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) { doomed = append(doomed, entry) }

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Player, tags.NPC, tags.Grain, tags.Rock, tags.Portal} {
		tag.Each(e.World, collect)
	}
	components.Space.Each(e.World, collect)
	components.Camera.Each(e.World, collect)

	for _, entry := range doomed {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

// DrawRealm renders the ground, grid, rocks and portals.
func DrawRealm(e *ecs.ECS, screen *ebiten.Image) {
	realm := CurrentRealm(e)
	view, ok := cameraViewport(e, screen)
	if realm == nil || !ok {
		return
	}

	drawWorldRect(screen, view, realm.Bounds, cfg.Palette.Ground)

	// One grid line per world unit
	b := realm.Bounds
	for x := math.Ceil(b.MinX); x <= b.MaxX; x++ {
		x0, y0 := view.ToScreen(x, b.MinZ)
		x1, y1 := view.ToScreen(x, b.MaxZ)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.Palette.GridLine, false)
	}
	for z := math.Ceil(b.MinZ); z <= b.MaxZ; z++ {
		x0, y0 := view.ToScreen(b.MinX, z)
		x1, y1 := view.ToScreen(b.MaxX, z)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.Palette.GridLine, false)
	}

	for _, rock := range realm.Rocks {
		drawWorldRect(screen, view, rock, cfg.Palette.Rock)
	}

	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		c := cfg.Palette.PortalLock
		if portal.Unlocked {
			c = cfg.Palette.Portal
		}
		drawWorldRect(screen, view, portal.Area, c)
	})
}

func drawWorldRect(screen *ebiten.Image, view gamemath.Viewport, r assets.Rect, c color.Color) {
	x, y := view.ToScreen(r.MaxX, r.MaxZ)
	w := (r.MaxX - r.MinX) * view.Scale
	h := (r.MaxZ - r.MinZ) * view.Scale
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
