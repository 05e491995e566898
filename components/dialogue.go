package components

import (
	"github.com/yohamta/donburi"
)

// DialogueData is the singleton conversation and hint box state.
type DialogueData struct {
	Active    bool
	Speaker   *donburi.Entry
	ScriptID  string
	Line      int
	Nearby    *donburi.Entry // closest animal within talking range
	Hint      string
	HintTimer float64 // seconds left on screen
}

var Dialogue = donburi.NewComponentType[DialogueData]()
