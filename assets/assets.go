package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:realms
	realmFS embed.FS
)

// Rect is an axis-aligned area on the ground plane in world units.
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, z float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinZ + r.MaxZ) / 2
}

// Contains reports whether (x, z) lies inside r, edges included.
func (r Rect) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

type PlayerSpawn struct {
	X, Z float64
}

type GrainSpawn struct {
	ID    string
	X, Z  float64
	Value int
}

type NPCSpawn struct {
	Name     string
	Animal   string
	Dialogue string
	X, Z     float64
}

type PortalSpawn struct {
	Name           string
	Target         string
	RequiredGrains int
	Area           Rect
}

// Realm is a Tiled map converted to world units. Tiled's pixel axes run
// opposite to the world's, so x = -px/ppu and z = -py/ppu.
type Realm struct {
	Name          string
	PixelsPerUnit float64
	PixelWidth    int
	PixelHeight   int
	Bounds        Rect
	Spawn         PlayerSpawn
	Rocks         []Rect
	Grains        []GrainSpawn
	NPCs          []NPCSpawn
	Portals       []PortalSpawn
}

// ToPixels maps a world position into Tiled pixel space, which is also the
// collision space.
func (r *Realm) ToPixels(x, z float64) (px, py float64) {
	return -x * r.PixelsPerUnit, -z * r.PixelsPerUnit
}

// FromPixels is the inverse of ToPixels.
func (r *Realm) FromPixels(px, py float64) (x, z float64) {
	return -px / r.PixelsPerUnit, -py / r.PixelsPerUnit
}

// Clamp keeps (x, z) inside the realm bounds shrunk by margin.
func (r *Realm) Clamp(x, z, margin float64) (float64, float64) {
	x = max(r.Bounds.MinX+margin, min(r.Bounds.MaxX-margin, x))
	z = max(r.Bounds.MinZ+margin, min(r.Bounds.MaxZ-margin, z))
	return x, z
}

// Portal returns the portal leading to target, if any.
func (r *Realm) Portal(target string) (PortalSpawn, bool) {
	for _, p := range r.Portals {
		if p.Target == target {
			return p, true
		}
	}
	return PortalSpawn{}, false
}

type RealmLoader struct {
	fsys          fs.FS
	dir           string
	pixelsPerUnit float64
}

// NewRealmLoader reads the embedded realms.
func NewRealmLoader(pixelsPerUnit float64) *RealmLoader {
	return &RealmLoader{fsys: realmFS, dir: "realms", pixelsPerUnit: pixelsPerUnit}
}

// MustLoadRealms loads every .tmx file in the realm directory, keyed by
// file name without extension.
func (l *RealmLoader) MustLoadRealms() map[string]*Realm {
	realms, err := l.LoadRealms()
	if err != nil {
		panic(err)
	}
	return realms
}

func (l *RealmLoader) LoadRealms() (map[string]*Realm, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("read realms directory: %w", err)
	}

	realms := make(map[string]*Realm)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		realm, err := l.LoadRealm(path.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		realms[realm.Name] = realm
	}

	if len(realms) == 0 {
		return nil, fmt.Errorf("no realm files found in %s", l.dir)
	}
	return realms, nil
}

func (l *RealmLoader) LoadRealm(realmPath string) (*Realm, error) {
	if l.pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load realm %s: pixels per unit must be positive", realmPath)
	}

	realmMap, err := tiled.LoadFile(realmPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load realm %s: %w", realmPath, err)
	}

	ppu := l.pixelsPerUnit
	realm := &Realm{
		Name:          strings.TrimSuffix(path.Base(realmPath), ".tmx"),
		PixelsPerUnit: ppu,
		PixelWidth:    realmMap.Width * realmMap.TileWidth,
		PixelHeight:   realmMap.Height * realmMap.TileHeight,
		Rocks:         []Rect{},
		Grains:        []GrainSpawn{},
		NPCs:          []NPCSpawn{},
		Portals:       []PortalSpawn{},
	}
	realm.Bounds = pixelRect(0, 0, float64(realm.PixelWidth), float64(realm.PixelHeight), ppu)

	spawnFound := false
	for _, og := range realmMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				realm.Spawn = PlayerSpawn{X: -o.X / ppu, Z: -o.Y / ppu}
				spawnFound = true
				break
			}
		case "Rocks":
			for _, o := range og.Objects {
				realm.Rocks = append(realm.Rocks, pixelRect(o.X, o.Y, o.Width, o.Height, ppu))
			}
		case "Grains":
			for _, o := range og.Objects {
				value := o.Properties.GetInt("value")
				if value <= 0 {
					value = 1
				}
				id := o.Name
				if id == "" {
					id = strconv.FormatUint(uint64(o.ID), 10)
				}
				realm.Grains = append(realm.Grains, GrainSpawn{
					ID:    id,
					X:     -o.X / ppu,
					Z:     -o.Y / ppu,
					Value: value,
				})
			}
		case "NPCs":
			for _, o := range og.Objects {
				realm.NPCs = append(realm.NPCs, NPCSpawn{
					Name:     o.Name,
					Animal:   o.Properties.GetString("animal"),
					Dialogue: o.Properties.GetString("dialogue"),
					X:        -o.X / ppu,
					Z:        -o.Y / ppu,
				})
			}
		case "Portals":
			for _, o := range og.Objects {
				target := o.Properties.GetString("target")
				if target == "" {
					return nil, fmt.Errorf("load realm %s: portal %q has no target", realmPath, o.Name)
				}
				realm.Portals = append(realm.Portals, PortalSpawn{
					Name:           o.Name,
					Target:         target,
					RequiredGrains: o.Properties.GetInt("requiredGrains"),
					Area:           pixelRect(o.X, o.Y, o.Width, o.Height, ppu),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load realm %s: no player spawn point defined", realmPath)
	}

	// Deterministic order for tests and debug overlays.
	sort.Slice(realm.Grains, func(i, j int) bool { return realm.Grains[i].ID < realm.Grains[j].ID })

	return realm, nil
}

// pixelRect converts a Tiled rectangle into world units. Both axes flip, so
// the pixel max corner becomes the world min corner.
func pixelRect(px, py, w, h, ppu float64) Rect {
	return Rect{
		MinX: -(px + w) / ppu,
		MinZ: -(py + h) / ppu,
		MaxX: -px / ppu,
		MaxZ: -py / ppu,
	}
}
