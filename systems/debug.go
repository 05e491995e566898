package systems

import (
	"image/color"
	"log"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debugf logs only when verbose logging is on.
func debugf(format string, args ...any) {
	if cfg.Debug.Verbose {
		log.Printf("[debug] "+format, args...)
	}
}

// DrawDebug outlines every collision object when collider drawing is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawCollider {
		return
	}

	view, ok := cameraViewport(e, screen)
	realm := CurrentRealm(e)
	if !ok || realm == nil {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Collision space is in Tiled pixels; the top-left pixel corner is
		// the world max corner.
		maxX, maxZ := realm.FromPixels(obj.X, obj.Y)
		x, y := view.ToScreen(maxX, maxZ)
		w := obj.W / realm.PixelsPerUnit * view.Scale
		h := obj.H / realm.PixelsPerUnit * view.Scale

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvNPC):
			c = color.RGBA{255, 0, 255, 255}
		case obj.HasTags(tags.ResolvGrain):
			c = color.RGBA{255, 255, 0, 255}
		case obj.HasTags(tags.ResolvPortal):
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}
}
