package systems

import (
	"fmt"

	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudPanelWidth = 170
)

// DrawHUD renders grains, realm, steering mode and wallet in the top-left
// corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lines := []string{}

	if realm := CurrentRealm(e); realm != nil {
		lines = append(lines, "Realm: "+realm.Name)
	}

	svc := GetServices(e)
	if svc != nil && svc.Inventory != nil {
		lines = append(lines, fmt.Sprintf("Time Grains: %d", svc.Inventory.Grains()))
	}
	lines = append(lines, "Steering: "+CurrentSteering(e).String())

	if svc != nil && svc.Wallet != nil && svc.Wallet.Connected() {
		lines = append(lines, "Wallet: "+shortAddress(svc.Wallet.Address()))
	}

	h := float32(len(lines)*hudLineHeight + 8)
	vector.FillRect(screen, hudMargin-4, hudMargin-4, hudPanelWidth, h, cfg.Message.BoxColor, false)

	face := fonts.GoRegular.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.Message.TextColor)
	}

	hint := "Tab: Hub   C: Steering   Esc: Pause"
	small := fonts.GoSmall.Get()
	w := text.BoundString(small, hint).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, hint, small, screen.Bounds().Dx()-w-hudMargin, hudMargin+8, cfg.Message.TextColor)
}
