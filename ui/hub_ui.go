package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/cooter/store"
	"github.com/automoto/cooter/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorMuted   = color.RGBA{180, 180, 180, 255}
	colorHeading = color.RGBA{200, 230, 200, 255}
	colorGold    = color.RGBA{255, 220, 90, 255}
	colorStatus  = color.RGBA{255, 200, 140, 255}
)

// HubUI is the Tab overlay: leaderboard, wallet, owned tokens and the
// grain marketplace.
type HubUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	grainsLabel    *widget.Label
	walletLabel    *widget.Label
	statusLabel    *widget.Label
	mintButton     *widget.Button
	leaderboardBox *widget.Container
	tokensBox      *widget.Container
	marketBox      *widget.Container

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHubUI builds the hub panel for the scene e.
func NewHubUI(e *ecs.ECS) *HubUI {
	h := &HubUI{ecs: e}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HubUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	h.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 9}
}

func (h *HubUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 20, 18, 230})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	content.AddChild(h.label("TURTLE HUB", h.titleFace, colorWhite))
	h.grainsLabel = h.label("", h.normalFace, colorGold)
	content.AddChild(h.grainsLabel)

	columns := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	columns.AddChild(h.buildLeaderboardPanel())
	columns.AddChild(h.buildWalletPanel())
	columns.AddChild(h.buildMarketPanel())
	content.AddChild(columns)

	h.statusLabel = h.label("", h.smallFace, colorStatus)
	content.AddChild(h.statusLabel)
	content.AddChild(h.label("Tab or Esc to close", h.smallFace, colorMuted))

	rootContainer.AddChild(content)
	h.UI = &ebitenui.UI{Container: rootContainer}
}

func (h *HubUI) panel() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{25, 40, 36, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 200)),
	)
}

func (h *HubUI) column() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
}

func (h *HubUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (h *HubUI) buildLeaderboardPanel() *widget.Container {
	p := h.panel()
	p.AddChild(h.label("LEADERBOARD", h.smallFace, colorHeading))
	h.leaderboardBox = h.column()
	p.AddChild(h.leaderboardBox)
	return p
}

func (h *HubUI) buildWalletPanel() *widget.Container {
	p := h.panel()
	p.AddChild(h.label("WALLET", h.smallFace, colorHeading))
	h.walletLabel = h.label("", h.smallFace, colorWhite)
	p.AddChild(h.walletLabel)

	buttons := h.row()
	buttons.AddChild(h.button("Connect", 60, func() { systems.HubConnect(h.ecs) }))
	h.mintButton = h.button("Mint", 60, func() { systems.HubMint(h.ecs) })
	buttons.AddChild(h.mintButton)
	p.AddChild(buttons)

	p.AddChild(h.label("YOUR TOKENS", h.smallFace, colorHeading))
	h.tokensBox = h.column()
	p.AddChild(h.tokensBox)
	return p
}

func (h *HubUI) buildMarketPanel() *widget.Container {
	p := h.panel()
	p.AddChild(h.label("MARKET", h.smallFace, colorHeading))
	h.marketBox = h.column()
	p.AddChild(h.marketBox)
	p.AddChild(h.button("Claim proceeds", 100, func() { systems.HubClaim(h.ecs) }))
	return p
}

func (h *HubUI) label(s string, face text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &face, &widget.LabelColor{Idle: c}),
	)
}

func (h *HubUI) button(s string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 16)),
		widget.ButtonOpts.Image(h.buttonImage()),
		widget.ButtonOpts.Text(s, &h.smallFace, &widget.ButtonTextColor{
			Idle:     colorWhite,
			Hover:    color.RGBA{255, 255, 200, 255},
			Disabled: color.RGBA{110, 110, 110, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (h *HubUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{50, 80, 70, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{70, 110, 95, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{35, 60, 50, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Update rebuilds stale panel contents and runs the widget tree.
func (h *HubUI) Update() {
	hub := systems.GetOrCreateHub(h.ecs)
	if hub.Dirty {
		h.Refresh()
		hub.Dirty = false
	}
	h.UI.Update()
}

func (h *HubUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

// Refresh copies service state into the widgets.
func (h *HubUI) Refresh() {
	svc := systems.GetServices(h.ecs)
	hub := systems.GetOrCreateHub(h.ecs)
	h.statusLabel.Label = hub.Status
	if svc == nil {
		return
	}

	player := svc.Settings.PlayerName
	h.grainsLabel.Label = fmt.Sprintf("%s carries %d Time Grains", player, svc.Inventory.Grains())

	if svc.Wallet.Connected() {
		h.walletLabel.Label = "Connected: " + svc.Wallet.Address()
	} else {
		h.walletLabel.Label = "Not connected"
	}
	if textWidget := h.mintButton.Text(); textWidget != nil {
		textWidget.Label = fmt.Sprintf("Mint (%d)", svc.Minter.Cost())
	}
	h.mintButton.GetWidget().Disabled = hub.Busy || !svc.Wallet.Connected() || svc.Inventory.Grains() < svc.Minter.Cost()

	h.refreshLeaderboard(svc.Leaderboard.Entries(), player)
	h.refreshTokens(svc.Inventory.Tokens())
	h.refreshMarket(svc.Market.Listings(), player)

	h.UI.Container.RequestRelayout()
}

func (h *HubUI) refreshLeaderboard(entries []store.Entry, player string) {
	h.leaderboardBox.RemoveChildren()
	if len(entries) == 0 {
		h.leaderboardBox.AddChild(h.label("No journeys yet", h.smallFace, colorMuted))
		return
	}
	for i, entry := range entries {
		c := colorWhite
		if entry.Name == player {
			c = colorGold
		}
		h.leaderboardBox.AddChild(h.label(fmt.Sprintf("%2d. %-12s %d", i+1, entry.Name, entry.Grains), h.smallFace, c))
	}
}

func (h *HubUI) refreshTokens(tokens []string) {
	h.tokensBox.RemoveChildren()
	if len(tokens) == 0 {
		h.tokensBox.AddChild(h.label("None", h.smallFace, colorMuted))
		return
	}
	for _, tokenID := range tokens {
		r := h.row()
		r.AddChild(h.label(tokenID, h.smallFace, colorWhite))
		r.AddChild(h.button("List", 36, func() { systems.HubList(h.ecs, tokenID) }))
		h.tokensBox.AddChild(r)
	}
}

func (h *HubUI) refreshMarket(listings []store.Listing, player string) {
	h.marketBox.RemoveChildren()
	if len(listings) == 0 {
		h.marketBox.AddChild(h.label("Nothing for sale", h.smallFace, colorMuted))
		return
	}
	for _, l := range listings {
		r := h.row()
		r.AddChild(h.label(fmt.Sprintf("%s (%s) %dg", l.TokenID, l.Seller, l.Price), h.smallFace, colorWhite))
		id := l.ID
		if l.Seller == player {
			r.AddChild(h.button("Cancel", 44, func() { systems.HubCancel(h.ecs, id) }))
		} else {
			r.AddChild(h.button("Buy", 36, func() { systems.HubBuy(h.ecs, id) }))
		}
		h.marketBox.AddChild(r)
	}
}
