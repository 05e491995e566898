package gamemath

import "time"

// MaxFrameDelta caps the step handed to the integrators so a stalled or
// backgrounded frame does not teleport actors.
const MaxFrameDelta = 0.1

// FrameClock converts wall-clock frame times into clamped deltas.
type FrameClock struct {
	MaxDelta float64

	last    time.Time
	started bool
	paused  bool
}

// NewFrameClock returns a clock capped at MaxFrameDelta.
func NewFrameClock() *FrameClock {
	return &FrameClock{MaxDelta: MaxFrameDelta}
}

// Tick records a frame at now and returns the seconds since the previous
// frame, clamped to [0, MaxDelta]. The first tick, and every tick while
// paused, returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.paused {
		c.last = now
		return 0
	}
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}

// SetPaused pauses or resumes the clock. Resuming restarts delta tracking
// so the time spent paused is not replayed.
func (c *FrameClock) SetPaused(paused bool) {
	if c.paused && !paused {
		c.started = false
	}
	c.paused = paused
}

// Paused reports whether the clock is paused.
func (c *FrameClock) Paused() bool {
	return c.paused
}
