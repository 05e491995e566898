package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the settings overlay state. The values being
// edited live in the saved store.Settings.
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	ShowingControls bool // True when displaying controls screen
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
