package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional on-disk overlay for the compiled-in defaults.
// Zero values leave the matching default untouched.
type File struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	Movement struct {
		Steering      string  `yaml:"steering"` // "tank" or "birds_eye"
		MaxFrameDelta float64 `yaml:"max_frame_delta"`
	} `yaml:"movement"`

	Camera struct {
		PixelsPerUnit   float64 `yaml:"pixels_per_unit"`
		FollowSmoothing float64 `yaml:"follow_smoothing"`
	} `yaml:"camera"`

	Realm struct {
		Start string `yaml:"start"`
	} `yaml:"realm"`

	Wallet struct {
		RPCURL      string  `yaml:"rpc_url"`
		CallTimeout float64 `yaml:"call_timeout"`
		MintCost    int     `yaml:"mint_cost"`
		ContractTo  string  `yaml:"contract_to"`
	} `yaml:"wallet"`

	Audio struct {
		MusicVolume *float64 `yaml:"music_volume"`
		SFXVolume   *float64 `yaml:"sfx_volume"`
	} `yaml:"audio"`

	Debug struct {
		Verbose      bool `yaml:"verbose"`
		DrawCollider bool `yaml:"draw_collider"`
	} `yaml:"debug"`
}

// LoadFile reads and parses a YAML overlay.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if f.Window.Width < 0 || f.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative")
	}
	if _, err := ParseSteering(f.Movement.Steering); err != nil {
		return err
	}
	if f.Movement.MaxFrameDelta < 0 {
		return fmt.Errorf("max_frame_delta must not be negative")
	}
	if f.Wallet.MintCost < 0 {
		return fmt.Errorf("mint_cost must not be negative")
	}
	if v := f.Audio.MusicVolume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("music_volume must be within [0, 1]")
	}
	if v := f.Audio.SFXVolume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("sfx_volume must be within [0, 1]")
	}
	return nil
}

// ParseSteering maps a config or flag value to a SteeringMode. Empty
// input yields the default.
func ParseSteering(s string) (SteeringMode, error) {
	switch s {
	case "":
		return Movement.DefaultSteering, nil
	case "tank":
		return SteeringTank, nil
	case "birds_eye", "birdseye":
		return SteeringBirdsEye, nil
	}
	return SteeringTank, fmt.Errorf("unknown steering mode %q", s)
}

// Apply copies every non-zero field of f onto the global configuration.
func Apply(f *File) {
	if f == nil {
		return
	}

	if f.Window.Width > 0 {
		C.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		C.Height = f.Window.Height
	}

	if f.Movement.Steering != "" {
		Movement.DefaultSteering, _ = ParseSteering(f.Movement.Steering)
	}
	if f.Movement.MaxFrameDelta > 0 {
		Movement.MaxFrameDelta = f.Movement.MaxFrameDelta
	}

	if f.Camera.PixelsPerUnit > 0 {
		Camera.PixelsPerUnit = f.Camera.PixelsPerUnit
	}
	if f.Camera.FollowSmoothing > 0 {
		Camera.FollowSmoothing = f.Camera.FollowSmoothing
	}

	if f.Realm.Start != "" {
		Realm.Start = f.Realm.Start
	}

	if f.Wallet.RPCURL != "" {
		Wallet.RPCURL = f.Wallet.RPCURL
	}
	if f.Wallet.CallTimeout > 0 {
		Wallet.CallTimeout = f.Wallet.CallTimeout
	}
	if f.Wallet.MintCost > 0 {
		Wallet.MintCost = f.Wallet.MintCost
	}
	if f.Wallet.ContractTo != "" {
		Wallet.ContractTo = f.Wallet.ContractTo
	}

	if f.Audio.MusicVolume != nil {
		Audio.DefaultMusicVol = *f.Audio.MusicVolume
	}
	if f.Audio.SFXVolume != nil {
		Audio.DefaultSFXVol = *f.Audio.SFXVolume
	}

	Debug.Verbose = Debug.Verbose || f.Debug.Verbose
	Debug.DrawCollider = Debug.DrawCollider || f.Debug.DrawCollider
}
