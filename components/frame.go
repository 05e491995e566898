package components

import (
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/synth"
	"github.com/yohamta/donburi"
)

// FrameData carries the frame delta every gameplay system integrates with.
// Timers run on gameplay time, so they stop while the game is paused.
type FrameData struct {
	Clock  *gamemath.FrameClock
	Dt     float64
	Timers *synth.Scheduler
}

var Frame = donburi.NewComponentType[FrameData]()
