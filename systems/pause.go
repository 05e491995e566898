package systems

import (
	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause menu and runs its options. It must run after
// UpdateInput and before UpdateHub, which shares the Escape key.
func UpdatePause(e *ecs.ECS) {
	if IsHubOpen(e) || IsSettingsOpen(e) {
		return
	}
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		setPaused(e, pause, !pause.IsPaused)
		// Escape also means "back"; nothing else may see it this frame.
		return
	}
	if !pause.IsPaused {
		return
	}

	selected := navigateMenu(e, input, int(pause.SelectedOption), int(components.MenuExit)+1)
	pause.SelectedOption = components.PauseMenuOption(selected)

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	PlaySFX(e, cfg.SoundMenuSelect)
	switch pause.SelectedOption {
	case components.MenuResume:
		setPaused(e, pause, false)
	case components.MenuSteering:
		ToggleSteering(e)
	case components.MenuSettings:
		OpenSettings(e)
	case components.MenuExit:
		pause.ExitRequested = true
	}
}

func setPaused(e *ecs.ECS, pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		PauseMusic(e)
		Autosave(e)
		return
	}
	ResumeMusic(e)
}

// navigateMenu moves selected up or down with wrap-around and returns it.
func navigateMenu(e *ecs.ECS, input *components.InputData, selected, count int) int {
	if count <= 0 {
		return 0
	}
	step := 0
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		step++
	}
	if step == 0 {
		return selected
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
	return ((selected+step)%count + count) % count
}

// DrawPause dims the realm and lists the pause options.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	rowHeight := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (height - float64(len(cfg.Pause.MenuOptions))*rowHeight) / 2
	face := fonts.GoBold.Get()

	for i, option := range cfg.Pause.MenuOptions {
		opt := components.PauseMenuOption(i)
		label := option
		if opt == components.MenuSteering {
			label += ": " + CurrentSteering(e).String()
		}

		c := cfg.Pause.TextColorNormal
		if opt == pause.SelectedOption {
			c = cfg.Pause.TextColorSelected
		}

		x := centeredX(width, text.BoundString(face, label).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
		y := int(top + float64(i)*rowHeight + cfg.Pause.MenuItemHeight)
		text.Draw(screen, label, face, x, y, c)
	}

	hint := getPauseHint(getOrCreateInput(e).LastInputMethod)
	hintFace := fonts.GoSmall.Get()
	hintX := centeredX(width, text.BoundString(hintFace, hint).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, hintFace, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// IsGameplayPaused reports whether the world is frozen, either by the pause
// menu or by the hub panel.
func IsGameplayPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused || IsHubOpen(e)
}

// WithGameplayChecks wraps a system so it skips frozen frames.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsGameplayPaused(e) {
			return
		}
		system(e)
	}
}

func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{SelectedOption: components.MenuResume})
	}
	return components.Pause.Get(entry)
}
