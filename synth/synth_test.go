package synth

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDuration(t *testing.T) {
	notes := []Note{
		{Offset: 0, Duration: 0.2},
		{Offset: 0.5, Duration: 0.1},
		{Offset: 0.1, Duration: 0.3},
	}
	if got := Duration(notes); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Duration() = %v, expected 0.6", got)
	}
	if got := Duration(nil); got != 0 {
		t.Errorf("Duration(nil) = %v, expected 0", got)
	}
}

func TestOscillate(t *testing.T) {
	tests := []struct {
		name     string
		wave     Waveform
		phase    float64
		expected float64
	}{
		{"sine_zero", WaveSine, 0, 0},
		{"sine_quarter", WaveSine, 0.25, 1},
		{"square_first_half", WaveSquare, 0.1, 1},
		{"square_second_half", WaveSquare, 0.6, -1},
		{"triangle_start", WaveTriangle, 0, 1},
		{"triangle_middle", WaveTriangle, 0.5, -1},
		{"wraps_phase", WaveSine, 3.25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oscillate(tt.wave, tt.phase); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("oscillate(%v, %v) = %v, expected %v", tt.wave, tt.phase, got, tt.expected)
			}
		})
	}
}

func TestRender_Length(t *testing.T) {
	env := Envelope{SampleRate: 1000}
	notes := []Note{{Offset: 0.1, Frequency: 100, Duration: 0.2, Volume: 1}}

	pcm := Render(notes, env)
	if expected := 300 * BytesPerFrame; len(pcm) != expected {
		t.Fatalf("len(Render()) = %d, expected %d", len(pcm), expected)
	}

	// Leading offset is silence.
	for i := 0; i < 100*BytesPerFrame; i++ {
		if pcm[i] != 0 {
			t.Fatalf("byte %d = %d, expected silence before the note", i, pcm[i])
		}
	}
}

func TestRender_StereoAndClipped(t *testing.T) {
	env := Envelope{SampleRate: 1000}
	notes := []Note{
		{Frequency: 10, Duration: 0.1, Volume: 1, Wave: WaveSquare},
		{Frequency: 10, Duration: 0.1, Volume: 1, Wave: WaveSquare},
	}

	pcm := Render(notes, env)
	left := int16(binary.LittleEndian.Uint16(pcm[0:]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:]))
	if left != right {
		t.Errorf("channels differ: left=%d right=%d", left, right)
	}
	if left != math.MaxInt16 {
		t.Errorf("summed square = %d, expected clip at %d", left, math.MaxInt16)
	}
}

func TestRender_Envelope(t *testing.T) {
	env := Envelope{SampleRate: 1000, Attack: 0.05, Release: 0.05}
	notes := []Note{{Frequency: 10, Duration: 0.2, Volume: 1, Wave: WaveSquare}}

	pcm := Render(notes, env)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Errorf("first sample = %d, expected 0 at attack start", first)
	}
	mid := int16(binary.LittleEndian.Uint16(pcm[10*BytesPerFrame:]))
	if mid <= 0 || mid >= math.MaxInt16 {
		t.Errorf("sample during attack = %d, expected partial gain", mid)
	}
}

func TestRender_Empty(t *testing.T) {
	if pcm := Render(nil, Envelope{SampleRate: 44100}); pcm != nil {
		t.Errorf("Render(nil) = %d bytes, expected nil", len(pcm))
	}
	if pcm := Render([]Note{{Duration: 1, Volume: 1}}, Envelope{}); pcm != nil {
		t.Errorf("Render() with zero sample rate = %d bytes, expected nil", len(pcm))
	}
}

func TestScheduler_After(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(0.5, func() { fired++ })

	s.Advance(0.3)
	if fired != 0 {
		t.Fatalf("fired early after 0.3s")
	}
	s.Advance(0.3)
	if fired != 1 {
		t.Fatalf("fired = %d after 0.6s, expected 1", fired)
	}
	s.Advance(1)
	if fired != 1 {
		t.Errorf("one-shot task fired %d times", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestScheduler_Every(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.Every(1, func() { fired++ })

	for i := 0; i < 10; i++ {
		s.Advance(0.5)
	}
	if fired != 5 {
		t.Errorf("fired = %d after 5s, expected 5", fired)
	}

	// A long stall fires once, not once per missed interval.
	s.Advance(10)
	if fired != 6 {
		t.Errorf("fired = %d after stall, expected 6", fired)
	}

	if !s.Cancel(id) {
		t.Fatal("Cancel() = false for a pending task")
	}
	s.Advance(5)
	if fired != 6 {
		t.Errorf("cancelled task fired")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() = true")
	}
}

func TestScheduler_OrderAndCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	var order []string
	var late TaskID

	s.After(0.2, func() { order = append(order, "b") })
	s.After(0.1, func() {
		order = append(order, "a")
		s.Cancel(late)
	})
	late = s.After(0.3, func() { order = append(order, "c") })

	s.Advance(1)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, expected [a b]", order)
	}
}

func TestScheduler_IgnoresNonPositiveDt(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0, func() { fired = true })

	s.Advance(0)
	s.Advance(-1)
	if fired {
		t.Error("task ran without time advancing")
	}
	s.Advance(0.016)
	if !fired {
		t.Error("zero-delay task did not run on next frame")
	}
}

func TestScheduler_Reset(t *testing.T) {
	s := NewScheduler()
	s.After(1, func() {})
	s.Every(1, func() {})
	s.Advance(0.5)

	s.Reset()
	if s.Pending() != 0 || s.Now() != 0 {
		t.Errorf("after Reset() Pending()=%d Now()=%v", s.Pending(), s.Now())
	}
}
