package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NPCData is a wandering animal. Its brain picks a new KeyState every few
// seconds and steers back toward home when it strays too far.
type NPCData struct {
	Name         string
	Animal       string
	Dialogue     string
	HomeX, HomeZ float64
	DecisionIn   float64 // seconds until the next brain decision
	Talking      bool    // frozen while its dialogue is open
	Hover        *gween.Sequence
	HoverOffset  float64 // pixels, applied when drawing
}

var NPC = donburi.NewComponentType[NPCData]()
