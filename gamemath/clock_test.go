package gamemath

import (
	"testing"
	"time"
)

func TestFrameClock_Tick(t *testing.T) {
	base := time.Unix(1000, 0)
	c := NewFrameClock()

	if dt := c.Tick(base); dt != 0 {
		t.Fatalf("first tick = %v, expected 0", dt)
	}
	if dt := c.Tick(base.Add(16 * time.Millisecond)); !approxEqual(dt, 0.016) {
		t.Errorf("tick = %v, expected 0.016", dt)
	}
	if dt := c.Tick(base.Add(5 * time.Second)); dt != MaxFrameDelta {
		t.Errorf("long frame = %v, expected cap %v", dt, MaxFrameDelta)
	}
	if dt := c.Tick(base); dt != 0 {
		t.Errorf("clock going backwards = %v, expected 0", dt)
	}
}

func TestFrameClock_Pause(t *testing.T) {
	base := time.Unix(1000, 0)
	c := NewFrameClock()
	c.Tick(base)

	c.SetPaused(true)
	if !c.Paused() {
		t.Fatal("expected clock to be paused")
	}
	if dt := c.Tick(base.Add(50 * time.Millisecond)); dt != 0 {
		t.Errorf("paused tick = %v, expected 0", dt)
	}

	c.SetPaused(false)
	if dt := c.Tick(base.Add(2 * time.Second)); dt != 0 {
		t.Errorf("first tick after resume = %v, expected 0", dt)
	}
	if dt := c.Tick(base.Add(2*time.Second + 20*time.Millisecond)); !approxEqual(dt, 0.02) {
		t.Errorf("tick after resume = %v, expected 0.02", dt)
	}
}
