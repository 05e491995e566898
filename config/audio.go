package config

import "github.com/automoto/cooter/synth"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// World sounds
	SoundGrain
	SoundStep
	SoundPortal
	SoundPortalLocked
	// NPC sounds
	SoundTalk
	SoundHoot
	// Hub sounds
	SoundMint
	SoundError
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// LoopID represents a looping ambience or music bed
type LoopID int

const (
	LoopNone LoopID = iota
	LoopMenu
	LoopMeadow
	LoopClocktower
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	AttackSeconds   float64 // envelope ramp-in
	ReleaseSeconds  float64 // envelope ramp-out
	FadeSeconds     float64 // music fade-out length
	FadeSteps       int
}

// SoundConfig maps cue IDs to their note sequences
type SoundConfig struct {
	SFX         map[SoundID][]synth.Note
	Loops       map[LoopID][]synth.Note
	LoopLengths map[LoopID]float64 // seconds before a loop repeats
	RealmLoops  map[string]LoopID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   0.8,
		AttackSeconds:   0.01,
		ReleaseSeconds:  0.05,
		FadeSeconds:     0.8,
		FadeSteps:       16,
	}

	Sound = SoundConfig{
		SFX: map[SoundID][]synth.Note{
			SoundGrain: {
				{Offset: 0, Frequency: 880, Duration: 0.08, Volume: 0.6, Wave: synth.WaveSine},
				{Offset: 0.07, Frequency: 1320, Duration: 0.12, Volume: 0.5, Wave: synth.WaveSine},
			},
			SoundStep: {
				{Offset: 0, Frequency: 110, Duration: 0.04, Volume: 0.2, Wave: synth.WaveTriangle},
			},
			SoundPortal: {
				{Offset: 0, Frequency: 330, Duration: 0.15, Volume: 0.5, Wave: synth.WaveTriangle},
				{Offset: 0.12, Frequency: 440, Duration: 0.15, Volume: 0.5, Wave: synth.WaveTriangle},
				{Offset: 0.24, Frequency: 660, Duration: 0.3, Volume: 0.5, Wave: synth.WaveTriangle},
			},
			SoundPortalLocked: {
				{Offset: 0, Frequency: 160, Duration: 0.2, Volume: 0.4, Wave: synth.WaveSquare},
			},
			SoundTalk: {
				{Offset: 0, Frequency: 520, Duration: 0.05, Volume: 0.3, Wave: synth.WaveSquare},
			},
			SoundHoot: {
				{Offset: 0, Frequency: 392, Duration: 0.25, Volume: 0.5, Wave: synth.WaveSine},
				{Offset: 0.3, Frequency: 349, Duration: 0.35, Volume: 0.5, Wave: synth.WaveSine},
			},
			SoundMint: {
				{Offset: 0, Frequency: 523, Duration: 0.1, Volume: 0.5, Wave: synth.WaveSine},
				{Offset: 0.1, Frequency: 659, Duration: 0.1, Volume: 0.5, Wave: synth.WaveSine},
				{Offset: 0.2, Frequency: 784, Duration: 0.1, Volume: 0.5, Wave: synth.WaveSine},
				{Offset: 0.3, Frequency: 1047, Duration: 0.3, Volume: 0.5, Wave: synth.WaveSine},
			},
			SoundError: {
				{Offset: 0, Frequency: 200, Duration: 0.12, Volume: 0.4, Wave: synth.WaveSquare},
				{Offset: 0.13, Frequency: 150, Duration: 0.18, Volume: 0.4, Wave: synth.WaveSquare},
			},
			SoundMenuNavigate: {
				{Offset: 0, Frequency: 660, Duration: 0.04, Volume: 0.3, Wave: synth.WaveSquare},
			},
			SoundMenuSelect: {
				{Offset: 0, Frequency: 880, Duration: 0.06, Volume: 0.4, Wave: synth.WaveSquare},
				{Offset: 0.06, Frequency: 1175, Duration: 0.08, Volume: 0.4, Wave: synth.WaveSquare},
			},
		},
		Loops: map[LoopID][]synth.Note{
			LoopMenu: {
				{Offset: 0, Frequency: 262, Duration: 0.4, Volume: 0.3, Wave: synth.WaveTriangle},
				{Offset: 0.5, Frequency: 330, Duration: 0.4, Volume: 0.3, Wave: synth.WaveTriangle},
				{Offset: 1.0, Frequency: 392, Duration: 0.4, Volume: 0.3, Wave: synth.WaveTriangle},
				{Offset: 1.5, Frequency: 330, Duration: 0.4, Volume: 0.3, Wave: synth.WaveTriangle},
			},
			LoopMeadow: {
				{Offset: 0, Frequency: 196, Duration: 0.8, Volume: 0.2, Wave: synth.WaveSine},
				{Offset: 1.0, Frequency: 247, Duration: 0.8, Volume: 0.2, Wave: synth.WaveSine},
				{Offset: 2.0, Frequency: 294, Duration: 0.8, Volume: 0.2, Wave: synth.WaveSine},
				{Offset: 3.0, Frequency: 247, Duration: 0.8, Volume: 0.2, Wave: synth.WaveSine},
			},
			LoopClocktower: {
				{Offset: 0, Frequency: 220, Duration: 0.1, Volume: 0.25, Wave: synth.WaveTriangle},
				{Offset: 0.5, Frequency: 165, Duration: 0.1, Volume: 0.25, Wave: synth.WaveTriangle},
				{Offset: 1.0, Frequency: 220, Duration: 0.1, Volume: 0.25, Wave: synth.WaveTriangle},
				{Offset: 1.5, Frequency: 165, Duration: 0.1, Volume: 0.25, Wave: synth.WaveTriangle},
			},
		},
		LoopLengths: map[LoopID]float64{
			LoopMenu:       2.0,
			LoopMeadow:     4.0,
			LoopClocktower: 2.0,
		},
		RealmLoops: map[string]LoopID{
			"meadow":     LoopMeadow,
			"clocktower": LoopClocktower,
		},
	}
}
