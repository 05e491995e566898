package components

import (
	"github.com/automoto/cooter/assets"
	"github.com/yohamta/donburi"
)

type RealmData struct {
	Current *assets.Realm
	Realms  map[string]*assets.Realm
	Pending string // realm to switch to at the end of the frame
}

var Realm = donburi.NewComponentType[RealmData]()
