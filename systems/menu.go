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

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// quit is called for the Exit option and the back action.
func NewUpdateMenu(sceneChanger SceneChanger, createRealmScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(cfg.Menu.MenuOptions)
		if numOptions == 0 {
			return
		}

		menu.SelectedIndex = navigateMenu(e, input, menu.SelectedIndex, numOptions)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuExplore:
				FadeOutMusic(e)
				sceneChanger.ChangeScene(createRealmScene())
			case components.MainMenuSettings:
				OpenSettings(e)
			case components.MainMenuExit:
				quit()
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.GoTitle.Get()
	title := "COOTER"
	titleX := centeredX(width, text.BoundString(titleFont, title).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	subtitle := "a turtle's walk through time"
	subFont := fonts.GoSmall.Get()
	subX := centeredX(width, text.BoundString(subFont, subtitle).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, subtitle, subFont, subX, int(cfg.Menu.TitleY)+24, cfg.Menu.TextColorNormal)

	menuFont := fonts.GoBold.Get()
	for i, label := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		x := centeredX(width, text.BoundString(menuFont, label).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintX := centeredX(width, text.BoundString(subFont, hint).Dx()) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, subFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

func centeredX(width float64, textWidth int) int {
	return int((width - float64(textWidth)) / 2)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
