package systems

import (
	"bytes"
	"log"
	"sync"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/synth"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXCache     map[cfg.SoundID][]byte
	globalLoopCache    map[cfg.LoopID][]byte
	globalMusicPlayer  *audio.Player
	globalMusicLoop    cfg.LoopID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalAudioTimers  *synth.Scheduler
	globalFadeTask     synth.TaskID
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFXCache = make(map[cfg.SoundID][]byte)
		globalLoopCache = make(map[cfg.LoopID][]byte)
		globalAudioTimers = synth.NewScheduler()
	})
}

func envelope() synth.Envelope {
	return synth.Envelope{
		SampleRate: cfg.Audio.SampleRate,
		Attack:     cfg.Audio.AttackSeconds,
		Release:    cfg.Audio.ReleaseSeconds,
	}
}

// PreloadAllSFX renders every cue at startup so the first play does not
// stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		sfxPCM(id)
	}
}

func sfxPCM(id cfg.SoundID) []byte {
	if pcm, ok := globalSFXCache[id]; ok {
		return pcm
	}
	pcm := synth.Render(cfg.Sound.SFX[id], envelope())
	globalSFXCache[id] = pcm
	return pcm
}

// loopPCM renders a loop padded with silence to its configured length.
func loopPCM(id cfg.LoopID) []byte {
	if pcm, ok := globalLoopCache[id]; ok {
		return pcm
	}
	pcm := synth.Render(cfg.Sound.Loops[id], envelope())
	length := cfg.Sound.LoopLengths[id]
	if want := int(length*float64(cfg.Audio.SampleRate)) * synth.BytesPerFrame; want > len(pcm) {
		pcm = append(pcm, make([]byte, want-len(pcm))...)
	}
	globalLoopCache[id] = pcm
	return pcm
}

// UpdateAudio processes pending SFX and advances music fades
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	globalAudioTimers.Advance(1 / float64(ebiten.TPS()))

	// Process pending SFX from the ECS audio data (if exists)
	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 || soundID == cfg.SoundNone {
		return
	}

	pcm := sfxPCM(soundID)
	if len(pcm) == 0 {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// StartLoop starts a looping music bed, replacing the current one.
func StartLoop(e *ecs.ECS, id cfg.LoopID) {
	initGlobalAudio()

	// Already playing this loop
	if globalMusicPlayer != nil && globalMusicLoop == id {
		return
	}
	StopLoop(e)

	pcm := loopPCM(id)
	if len(pcm) == 0 {
		return
	}

	player, err := globalAudioContext.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		log.Printf("Warning: Could not start loop %d: %v", id, err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicLoop = id
}

// StopLoop immediately stops the current music bed
func StopLoop(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTask != 0 {
		globalAudioTimers.Cancel(globalFadeTask)
		globalFadeTask = 0
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicLoop = cfg.LoopNone
	}
}

// FadeOutMusic lowers the music bed to silence over cfg.Audio.FadeSeconds
// and then stops it.
func FadeOutMusic(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicPlayer == nil || globalFadeTask != 0 {
		return
	}
	steps := max(cfg.Audio.FadeSteps, 1)
	start := globalMusicVolume
	player := globalMusicPlayer
	step := 0

	globalFadeTask = globalAudioTimers.Every(cfg.Audio.FadeSeconds/float64(steps), func() {
		step++
		if step >= steps {
			StopLoop(e)
			return
		}
		player.SetVolume(start * float64(steps-step) / float64(steps))
	})
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTask == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
