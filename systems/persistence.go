package systems

import (
	"errors"
	"log"
	"time"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/store"
	"github.com/automoto/cooter/wallet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DefaultSettings returns the preferences used before anything is saved.
func DefaultSettings() store.Settings {
	return store.Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Steering:    cfg.Movement.DefaultSteering.Key(),
		PlayerName:  cfg.Store.DefaultPlayerName,
	}
}

// OpenServices builds the long-lived stores and chain clients. When gdata
// is unavailable everything runs in memory and nothing survives a restart.
// Unreadable saves are logged and replaced by defaults.
func OpenServices(appName string) *components.ServicesData {
	var kv store.KV
	gkv, err := store.OpenGdata(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		kv = store.NewMemoryKV()
	} else {
		kv = gkv
	}

	svc := &components.ServicesData{
		KV:          kv,
		Inventory:   store.NewInventory(kv),
		Leaderboard: store.NewLeaderboard(kv, cfg.Store.LeaderboardSize),
		Market:      store.NewMarketplace(kv),
	}

	var loadErrs []error
	if err := svc.Inventory.Load(); err != nil {
		loadErrs = append(loadErrs, err)
	}
	if err := svc.Leaderboard.Load(); err != nil {
		loadErrs = append(loadErrs, err)
	}
	if err := svc.Market.Load(); err != nil {
		loadErrs = append(loadErrs, err)
	}
	settings, err := store.LoadSettings(kv, DefaultSettings())
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	svc.Settings = &settings
	if err := errors.Join(loadErrs...); err != nil {
		log.Printf("Warning: Could not load saved game: %v", err)
	}

	svc.Market.Seed(cfg.Store.SeedListings)

	svc.Provider = wallet.NewWSProvider(cfg.Wallet.RPCURL, seconds(cfg.Wallet.CallTimeout))
	svc.Wallet = wallet.New(svc.Provider)
	svc.Minter = wallet.NewMinter(svc.Wallet, cfg.Wallet.ContractTo, cfg.Wallet.MintCost)

	return svc
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ApplySettings pushes saved preferences into the audio globals and window.
func ApplySettings(s *store.Settings) {
	if s == nil {
		return
	}
	music, sfx := s.EffectiveVolumes()
	SetMusicVolume(music)
	SetSFXVolume(sfx)
	ebiten.SetFullscreen(s.Fullscreen)
}

// GetServices returns the services attached to this scene, or nil.
func GetServices(e *ecs.ECS) *components.ServicesData {
	entry, ok := components.Services.First(e.World)
	if !ok {
		return nil
	}
	return components.Services.Get(entry)
}

// AttachServices stores svc in the scene world and schedules autosave on
// the gameplay clock.
func AttachServices(e *ecs.ECS, svc *components.ServicesData) {
	if svc == nil {
		return
	}
	entry := e.World.Entry(e.World.Create(components.Services))
	components.Services.SetValue(entry, *svc)

	if cfg.Store.AutosaveSeconds > 0 {
		GetOrCreateFrame(e).Timers.Every(cfg.Store.AutosaveSeconds, func() {
			Autosave(e)
		})
	}
}

// SaveSettings writes the current preferences.
func SaveSettings(svc *components.ServicesData) {
	if svc == nil || svc.Settings == nil {
		return
	}
	if err := store.SaveSettings(svc.KV, *svc.Settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// SaveAll writes every store. It keeps going after a failure and returns
// all errors joined.
func SaveAll(svc *components.ServicesData) error {
	if svc == nil {
		return nil
	}
	var errs []error
	if err := svc.Inventory.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := svc.Leaderboard.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := svc.Market.Save(); err != nil {
		errs = append(errs, err)
	}
	if svc.Settings != nil {
		if err := store.SaveSettings(svc.KV, *svc.Settings); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Autosave saves the scene's services and logs failures.
func Autosave(e *ecs.ECS) {
	svc := GetServices(e)
	if svc == nil {
		return
	}
	if err := SaveAll(svc); err != nil {
		log.Printf("Warning: Autosave failed: %v", err)
		return
	}
	debugf("autosaved")
}

// SubmitScore records the player's grain total on the leaderboard.
func SubmitScore(svc *components.ServicesData, at time.Time) {
	if svc == nil || svc.Settings == nil || svc.Leaderboard == nil {
		return
	}
	if svc.Leaderboard.Submit(svc.Settings.PlayerName, svc.Inventory.Grains(), at) {
		debugf("leaderboard: %s now has %d grains", svc.Settings.PlayerName, svc.Inventory.Grains())
	}
}

// Shutdown saves everything and closes the chain connection.
func Shutdown(svc *components.ServicesData) {
	if svc == nil {
		return
	}
	SubmitScore(svc, time.Now())
	if err := SaveAll(svc); err != nil {
		log.Printf("Warning: Could not save on exit: %v", err)
	}
	if svc.Provider != nil {
		if err := svc.Provider.Close(); err != nil {
			log.Printf("Warning: Could not close RPC connection: %v", err)
		}
	}
}
