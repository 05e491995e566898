package scenes

import (
	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/components"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what every scene shares for the lifetime of the process.
type Session struct {
	Services *components.ServicesData
	Realms   map[string]*assets.Realm
	Quit     func() // saves and exits the process
}
