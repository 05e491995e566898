package systems

import (
	"github.com/automoto/cooter/components"
	"github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.ZoomTween != nil {
		zoom, done := camera.ZoomTween.Update(float32(GetOrCreateFrame(e).Dt))
		camera.Zoom = float64(zoom)
		if done {
			camera.ZoomTween = nil
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pose := components.Actor.Get(playerEntry).Pose

	// Keep the view inside the realm where the realm is larger than the screen.
	targetX, targetZ := pose.X, pose.Z
	if realm := CurrentRealm(e); realm != nil {
		scale := config.Camera.PixelsPerUnit * max(camera.Zoom, 0.01)
		halfW := float64(config.C.Width) / 2 / scale
		halfH := float64(config.C.Height) / 2 / scale
		targetX = clampAxis(targetX, realm.Bounds.MinX+halfW, realm.Bounds.MaxX-halfW)
		targetZ = clampAxis(targetZ, realm.Bounds.MinZ+halfH, realm.Bounds.MaxZ-halfH)
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetZ - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis clamps v into [lo, hi], or centers it when the range is inverted.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return max(lo, min(hi, v))
}

// cameraViewport returns the world-to-screen mapping for this frame.
func cameraViewport(e *ecs.ECS, screen *ebiten.Image) (gamemath.Viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return gamemath.Viewport{
		CenterX: camera.Position.X,
		CenterZ: camera.Position.Y,
		Scale:   config.Camera.PixelsPerUnit * zoom,
		Width:   float64(screen.Bounds().Dx()),
		Height:  float64(screen.Bounds().Dy()),
	}, true
}
