package factory

import (
	"github.com/automoto/cooter/archetypes"
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centers the camera on (x, z) and zooms in from
// cfg.Camera.ZoomFrom.
func CreateCamera(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position:  math.Vec2{X: x, Y: z},
		Zoom:      cfg.Camera.ZoomFrom,
		ZoomTween: gween.New(float32(cfg.Camera.ZoomFrom), 1, float32(cfg.Camera.ZoomDuration), ease.OutCubic),
	})
	return camera
}
