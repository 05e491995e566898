package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/automoto/cooter/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	// Handle controls screen separately
	if menu.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionPause).JustPressed {
			menu.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	selected := navigateMenu(e, input, int(menu.SelectedOption), numSettingsOptions)
	menu.SelectedOption = components.SettingsMenuOption(selected)

	settings := editedSettings(e)

	// Turning doubles as left/right in menus
	if GetAction(input, cfg.ActionTurnLeft).JustPressed {
		adjustValue(e, menu, settings, -1)
	}
	if GetAction(input, cfg.ActionTurnRight).JustPressed {
		adjustValue(e, menu, settings, +1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, menu, settings)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed || GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(e, menu)
	}
}

// editedSettings returns the saved preferences, or a scratch copy when the
// scene has no services.
func editedSettings(e *ecs.ECS) *store.Settings {
	if svc := GetServices(e); svc != nil && svc.Settings != nil {
		return svc.Settings
	}
	s := DefaultSettings()
	return &s
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, menu *components.SettingsMenuData, s *store.Settings, direction int) {
	switch menu.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		ApplySettings(s)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		ApplySettings(s)
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute, components.SettingsOptFullscreen:
		handleSelect(e, menu, s)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := findClosestStepIndex(current, steps) + direction
	idx = max(0, min(len(steps)-1, idx))
	return steps[idx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, menu *components.SettingsMenuData, s *store.Settings) {
	switch menu.SelectedOption {
	case components.SettingsOptMute:
		s.Muted = !s.Muted
		ApplySettings(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		s.Fullscreen = !s.Fullscreen
		ApplySettings(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptControls:
		menu.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, menu)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, menu *components.SettingsMenuData) {
	menu.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveSettings(GetServices(e))
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	if menu.ShowingControls {
		drawControlsScreen(e, screen, width, height)
		return
	}

	fontFace := fonts.GoBold.Get()
	titleFont := fonts.GoTitle.Get()

	title := "SETTINGS"
	titleX := centeredX(width, text.BoundString(titleFont, title).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFont, titleX, 40, cfg.Menu.TitleColor)

	settings := editedSettings(e)
	itemHeight := cfg.SettingsMenu.MenuItemHeight
	itemGap := cfg.SettingsMenu.MenuItemGap
	totalMenuHeight := float64(numSettingsOptions) * (itemHeight + itemGap)
	startY := (height-totalMenuHeight)/2 + 10

	for i := 0; i < numSettingsOptions; i++ {
		opt := components.SettingsMenuOption(i)
		y := startY + float64(i)*(itemHeight+itemGap)

		textColor := cfg.Pause.TextColorNormal
		if opt == menu.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		text.Draw(screen, label, fontFace, int(width/2)-150, int(y+itemHeight), textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+20, int(y+itemHeight), textColor)
		}
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.GoSmall.Get()
	hintX := centeredX(width, text.BoundString(hintFont, hint).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// drawControlsScreen renders the controls/button mapping screen
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.GoRegular.Get()
	titleFont := fonts.GoTitle.Get()
	smallFont := fonts.GoSmall.Get()

	title := "CONTROLS"
	titleX := centeredX(width, text.BoundString(titleFont, title).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFont, titleX, 40, cfg.Menu.TitleColor)

	startY := 80.0
	lineHeight := 20.0
	labelX := int(width/2) - 120
	valueX := int(width/2) + 10

	for i, mapping := range getControlMappings(input.LastInputMethod) {
		y := startY + float64(i)*lineHeight
		text.Draw(screen, mapping.Action, fontFace, labelX, int(y), cfg.Pause.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, valueX, int(y), cfg.Pause.TextColorSelected)
	}

	hint := getBackHint(input.LastInputMethod)
	hintX := centeredX(width, text.BoundString(smallFont, hint).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, smallFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getControlMappings returns control mappings for the given input method
func getControlMappings(method components.InputMethod) []controlMapping {
	switch method {
	case components.InputPlayStation:
		return []controlMapping{
			{"Walk", "Left Stick Up/Down"},
			{"Turn", "Left Stick Left/Right"},
			{"Talk", "Cross"},
			{"Steering", "Triangle"},
			{"Hub", "Share"},
			{"Pause", "Options"},
		}
	case components.InputXbox:
		return []controlMapping{
			{"Walk", "Left Stick Up/Down"},
			{"Turn", "Left Stick Left/Right"},
			{"Talk", "A"},
			{"Steering", "Y"},
			{"Hub", "Back"},
			{"Pause", "Start"},
		}
	default: // Keyboard
		return []controlMapping{
			{"Walk", "W / S or Up / Down"},
			{"Turn", "A / D or Left / Right"},
			{"Talk", "E"},
			{"Steering", "C"},
			{"Hub", "Tab"},
			{"Pause", "Esc / P"},
		}
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getBackHint returns the hint for going back
func getBackHint(method components.InputMethod) string {
	if method == components.InputKeyboard {
		return "Press any key to go back"
	}
	return "Press any button to go back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *store.Settings, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music Volume", formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := max(0, min(10, int(volume*10)))
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}

// OpenSettings shows the settings overlay with the first option selected.
func OpenSettings(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	menu.IsOpen = true
	menu.ShowingControls = false
	menu.SelectedOption = components.SettingsOptMusicVolume
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
