package store

import "testing"

func TestLoadSettings_Defaults(t *testing.T) {
	def := Settings{MusicVolume: 0.5, SFXVolume: 0.8, Steering: "tank", PlayerName: "Turtle"}

	got, err := LoadSettings(NewMemoryKV(), def)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != def {
		t.Errorf("LoadSettings() = %+v, expected defaults %+v", got, def)
	}
}

func TestSettings_RoundTripKeepsDefaultsForBlankFields(t *testing.T) {
	kv := NewMemoryKV()
	def := Settings{MusicVolume: 0.5, SFXVolume: 0.8, Steering: "tank", PlayerName: "Turtle"}

	if err := SaveSettings(kv, Settings{MusicVolume: 0.2, Muted: true, Steering: "birds_eye"}); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err := LoadSettings(kv, def)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.MusicVolume != 0.2 || !got.Muted || got.Steering != "birds_eye" {
		t.Errorf("LoadSettings() = %+v, saved fields not restored", got)
	}
	if got.PlayerName != "Turtle" {
		t.Errorf("PlayerName = %q, expected default", got.PlayerName)
	}
}

func TestSettings_EffectiveVolumes(t *testing.T) {
	tests := []struct {
		name       string
		s          Settings
		music, sfx float64
	}{
		{"unmuted", Settings{MusicVolume: 0.4, SFXVolume: 0.9}, 0.4, 0.9},
		{"muted", Settings{MusicVolume: 0.4, SFXVolume: 0.9, Muted: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			music, sfx := tt.s.EffectiveVolumes()
			if music != tt.music || sfx != tt.sfx {
				t.Errorf("EffectiveVolumes() = (%v, %v), expected (%v, %v)", music, sfx, tt.music, tt.sfx)
			}
		})
	}
}
