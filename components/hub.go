package components

import (
	cfg "github.com/automoto/cooter/config"
	"github.com/yohamta/donburi"
)

// HubResult is the outcome of a wallet job finished off the game thread.
type HubResult struct {
	Status string
	Sound  cfg.SoundID
	Err    error
}

// HubData tracks the hub panel overlay. Status is the last wallet or
// market outcome shown at the bottom of the panel.
type HubData struct {
	Open    bool
	Status  string
	Dirty   bool // panel contents need rebuilding
	Busy    bool // a wallet job is in flight
	Results chan HubResult
}

var Hub = donburi.NewComponentType[HubData]()
