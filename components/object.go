package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the collision space. Positions are in
// realm pixels, not world units.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the realm's collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
