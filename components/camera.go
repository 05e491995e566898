package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData follows the player in world units. Position.X is world x and
// Position.Y is world z.
type CameraData struct {
	Position  math.Vec2
	Zoom      float64
	ZoomTween *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
