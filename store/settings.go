package store

const settingsKey = "settings"

// Settings are the player preferences persisted between runs.
type Settings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
	Steering    string  `json:"steering"` // "tank" or "birds_eye"
	PlayerName  string  `json:"playerName"`
}

// LoadSettings returns the stored settings, or def when none were saved.
func LoadSettings(kv KV, def Settings) (Settings, error) {
	s := def
	if err := loadJSON(kv, settingsKey, &s); err != nil {
		return def, err
	}
	if s.PlayerName == "" {
		s.PlayerName = def.PlayerName
	}
	if s.Steering == "" {
		s.Steering = def.Steering
	}
	return s, nil
}

func SaveSettings(kv KV, s Settings) error {
	return saveJSON(kv, settingsKey, s)
}

// EffectiveVolumes applies the mute flag.
func (s Settings) EffectiveVolumes() (music, sfx float64) {
	if s.Muted {
		return 0, 0
	}
	return s.MusicVolume, s.SFXVolume
}
