package components

import (
	"github.com/automoto/cooter/assets"
	"github.com/yohamta/donburi"
)

type PortalData struct {
	Name           string
	Target         string
	RequiredGrains int
	Area           assets.Rect
	Unlocked       bool
	Occupied       bool // player was inside last frame
}

var Portal = donburi.NewComponentType[PortalData]()
