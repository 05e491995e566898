package assets

import (
	"math"
	"testing"
	"testing/fstest"
)

const ppu = 16

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadRealms_Embedded(t *testing.T) {
	realms, err := NewRealmLoader(ppu).LoadRealms()
	if err != nil {
		t.Fatalf("LoadRealms() error = %v", err)
	}

	for _, name := range []string{"meadow", "clocktower"} {
		realm, ok := realms[name]
		if !ok {
			t.Fatalf("realm %q missing", name)
		}
		if !realm.Bounds.Contains(realm.Spawn.X, realm.Spawn.Z) {
			t.Errorf("%s spawn %+v outside bounds %+v", name, realm.Spawn, realm.Bounds)
		}
		for _, p := range realm.Portals {
			if _, ok := realms[p.Target]; !ok {
				t.Errorf("%s portal %q targets unknown realm %q", name, p.Name, p.Target)
			}
			if p.Area.Contains(realm.Spawn.X, realm.Spawn.Z) {
				t.Errorf("%s spawn sits inside portal %q", name, p.Name)
			}
		}
		for _, rock := range realm.Rocks {
			if rock.Contains(realm.Spawn.X, realm.Spawn.Z) {
				t.Errorf("%s spawn sits inside rock %+v", name, rock)
			}
		}
	}
}

func TestLoadRealm_Meadow(t *testing.T) {
	realm, err := NewRealmLoader(ppu).LoadRealm("realms/meadow.tmx")
	if err != nil {
		t.Fatalf("LoadRealm() error = %v", err)
	}

	if realm.Name != "meadow" {
		t.Errorf("Name = %q, expected meadow", realm.Name)
	}
	if realm.PixelWidth != 640 || realm.PixelHeight != 480 {
		t.Errorf("pixel size = %dx%d, expected 640x480", realm.PixelWidth, realm.PixelHeight)
	}
	if !approx(realm.Bounds.MinX, -40) || !approx(realm.Bounds.MaxX, 0) ||
		!approx(realm.Bounds.MinZ, -30) || !approx(realm.Bounds.MaxZ, 0) {
		t.Errorf("Bounds = %+v, expected x in [-40, 0], z in [-30, 0]", realm.Bounds)
	}
	if !approx(realm.Spawn.X, -20) || !approx(realm.Spawn.Z, -25) {
		t.Errorf("Spawn = %+v, expected (-20, -25)", realm.Spawn)
	}
	if len(realm.Grains) != 8 {
		t.Errorf("len(Grains) = %d, expected 8", len(realm.Grains))
	}
	if len(realm.NPCs) != 4 {
		t.Errorf("len(NPCs) = %d, expected 4", len(realm.NPCs))
	}

	portal, ok := realm.Portal("clocktower")
	if !ok {
		t.Fatal("meadow has no portal to clocktower")
	}
	if portal.RequiredGrains != 8 {
		t.Errorf("RequiredGrains = %d, expected 8", portal.RequiredGrains)
	}
}

func TestPixelRect_FlipsAxes(t *testing.T) {
	r := pixelRect(32, 16, 16, 32, 16)
	expected := Rect{MinX: -3, MinZ: -3, MaxX: -2, MaxZ: -1}
	if r != expected {
		t.Errorf("pixelRect() = %+v, expected %+v", r, expected)
	}
}

func TestRealm_PixelRoundTrip(t *testing.T) {
	realm := &Realm{PixelsPerUnit: 16}
	px, py := realm.ToPixels(-2.5, -4)
	if !approx(px, 40) || !approx(py, 64) {
		t.Errorf("ToPixels() = (%v, %v), expected (40, 64)", px, py)
	}
	x, z := realm.FromPixels(px, py)
	if !approx(x, -2.5) || !approx(z, -4) {
		t.Errorf("FromPixels() = (%v, %v), expected (-2.5, -4)", x, z)
	}
}

func TestRealm_Clamp(t *testing.T) {
	realm := &Realm{Bounds: Rect{MinX: -10, MinZ: -10, MaxX: 0, MaxZ: 0}}

	tests := []struct {
		name         string
		x, z         float64
		wantX, wantZ float64
	}{
		{"inside", -5, -5, -5, -5},
		{"past_max", 3, 1, -0.5, -0.5},
		{"past_min", -20, -11, -9.5, -9.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := realm.Clamp(tt.x, tt.z, 0.5)
			if !approx(x, tt.wantX) || !approx(z, tt.wantZ) {
				t.Errorf("Clamp(%v, %v) = (%v, %v), expected (%v, %v)", tt.x, tt.z, x, z, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestLoadRealm_Errors(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Rocks">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>`
	portalNoTarget := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="8" y="8"/>
 </objectgroup>
 <objectgroup id="2" name="Portals">
  <object id="2" name="broken" x="32" y="32" width="16" height="16"/>
 </objectgroup>
</map>`

	fsys := fstest.MapFS{
		"realms/nospawn.tmx":  {Data: []byte(noSpawn)},
		"realms/noportal.tmx": {Data: []byte(portalNoTarget)},
	}
	loader := &RealmLoader{fsys: fsys, dir: "realms", pixelsPerUnit: ppu}

	for _, p := range []string{"realms/nospawn.tmx", "realms/noportal.tmx", "realms/missing.tmx"} {
		t.Run(p, func(t *testing.T) {
			if _, err := loader.LoadRealm(p); err == nil {
				t.Errorf("LoadRealm(%s) error = nil", p)
			}
		})
	}

	if _, err := (&RealmLoader{fsys: fsys, dir: "realms"}).LoadRealm("realms/nospawn.tmx"); err == nil {
		t.Error("LoadRealm() with zero pixels per unit returned nil error")
	}
}
