package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GrainData is a Time Grain waiting to be picked up.
type GrainData struct {
	ID    string
	Value int
	X, Z  float64
	Pulse *gween.Sequence
	Scale float64
}

var Grain = donburi.NewComponentType[GrainData]()
