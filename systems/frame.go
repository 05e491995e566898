package systems

import (
	"time"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/synth"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame ticks the frame clock. It must run after UpdatePause and
// UpdateHub so a frozen frame reports dt = 0, and before anything that
// integrates motion.
func UpdateFrame(e *ecs.ECS) {
	frame := GetOrCreateFrame(e)
	frame.Clock.SetPaused(IsGameplayPaused(e))
	frame.Dt = frame.Clock.Tick(time.Now())
	frame.Timers.Advance(frame.Dt)
}

// GetOrCreateFrame returns the singleton Frame component, creating if needed.
func GetOrCreateFrame(e *ecs.ECS) *components.FrameData {
	if _, ok := components.Frame.First(e.World); !ok {
		clock := gamemath.NewFrameClock()
		clock.MaxDelta = cfg.Movement.MaxFrameDelta

		ent := e.World.Entry(e.World.Create(components.Frame))
		components.Frame.SetValue(ent, components.FrameData{
			Clock:  clock,
			Timers: synth.NewScheduler(),
		})
	}

	ent, _ := components.Frame.First(e.World)
	return components.Frame.Get(ent)
}
