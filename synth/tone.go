// Package synth renders short PCM cues from note lists and schedules
// timed audio work against frame time.
package synth

import (
	"encoding/binary"
	"math"
)

// Waveform selects the oscillator shape of a note.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
)

// Note is one oscillator envelope placed relative to the start of a cue.
type Note struct {
	Offset    float64 // seconds after the cue starts
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
	Wave      Waveform
}

// Envelope is the output format and the linear attack/release ramps
// applied to every note.
type Envelope struct {
	SampleRate int
	Attack     float64 // seconds
	Release    float64 // seconds
}

// BytesPerFrame is the size of one 16-bit stereo frame.
const BytesPerFrame = 4

// Duration returns the end time of the last note in seconds.
func Duration(notes []Note) float64 {
	end := 0.0
	for _, n := range notes {
		end = math.Max(end, n.Offset+n.Duration)
	}
	return end
}

// oscillate returns the waveform value in [-1, 1] at phase (in cycles).
func oscillate(w Waveform, phase float64) float64 {
	_, frac := math.Modf(phase)
	switch w {
	case WaveSquare:
		if frac < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(frac-0.5) - 1
	}
	return math.Sin(2 * math.Pi * frac)
}

// gain is the envelope multiplier at t seconds into a note of length d.
func (e Envelope) gain(t, d float64) float64 {
	g := 1.0
	if e.Attack > 0 && t < e.Attack {
		g = t / e.Attack
	}
	if e.Release > 0 && d-t < e.Release {
		g = math.Min(g, (d-t)/e.Release)
	}
	return math.Max(0, g)
}

// Render mixes notes into signed 16-bit little-endian stereo PCM, the
// format ebiten's audio players read. Overlapping notes are summed and
// clipped.
func Render(notes []Note, env Envelope) []byte {
	if env.SampleRate <= 0 || len(notes) == 0 {
		return nil
	}

	rate := float64(env.SampleRate)
	frames := 0
	for _, n := range notes {
		frames = max(frames, int(n.Offset*rate)+int(n.Duration*rate))
	}
	if frames <= 0 {
		return nil
	}
	mix := make([]float64, frames)

	for _, n := range notes {
		if n.Duration <= 0 || n.Volume <= 0 {
			continue
		}
		start := int(n.Offset * rate)
		length := int(n.Duration * rate)
		for i := 0; i < length && start+i < frames; i++ {
			if start+i < 0 {
				continue
			}
			t := float64(i) / rate
			mix[start+i] += oscillate(n.Wave, t*n.Frequency) * n.Volume * env.gain(t, n.Duration)
		}
	}

	out := make([]byte, frames*BytesPerFrame)
	for i, v := range mix {
		s := int16(math.Round(math.Max(-1, math.Min(1, v)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame+2:], uint16(s))
	}
	return out
}
