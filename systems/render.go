package systems

import (
	"image/color"
	"math"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/automoto/cooter/gamemath"
	"github.com/automoto/cooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	walkWobbleHz     = 3.0
	walkWobbleAmount = 0.08 // fraction of the shell radius
	headScale        = 0.42
)

// DrawGrains renders every uncollected Time Grain, scaled by its pulse.
func DrawGrains(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	tags.Grain.Each(e.World, func(entry *donburi.Entry) {
		grain := components.Grain.Get(entry)
		x, y := view.ToScreen(grain.X, grain.Z)
		r := cfg.Grain.Size / 2 * view.Scale * grain.Scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), cfg.Palette.Grain, true) //nolint:staticcheck // TODO: migrate to FillCircle
	})
}

// DrawActors renders the animals and then the turtle on top.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		npc := components.NPC.Get(entry)
		body, ok := cfg.Palette.Animals[npc.Animal]
		if !ok {
			body = cfg.Palette.Shell
		}
		x, y := drawActor(screen, view, components.Actor.Get(entry), npc.HoverOffset, body, cfg.Palette.ShellRim)

		face := fonts.GoSmall.Get()
		w := text.BoundString(face, npc.Name).Dx() //nolint:staticcheck // TODO: migrate to text/v2
		r := components.Actor.Get(entry).Radius * view.Scale
		text.Draw(screen, npc.Name, face, int(x)-w/2, int(y-r-6), cfg.Message.TextColor)
	})

	if entry, ok := tags.Player.First(e.World); ok {
		drawActor(screen, view, components.Actor.Get(entry), 0, cfg.Palette.Shell, cfg.Palette.ShellRim)
	}
}

// drawActor draws a round body with a head poking out along its heading and
// returns the body's screen center.
func drawActor(screen *ebiten.Image, view gamemath.Viewport, actor *components.ActorData, lift float64, body, rim color.RGBA) (float64, float64) {
	x, y := view.ToScreen(actor.Pose.X, actor.Pose.Z)
	y += lift
	r := actor.Radius * view.Scale

	wobble := 0.0
	if actor.Moving {
		wobble = math.Sin(actor.WalkPhase*2*math.Pi*walkWobbleHz) * walkWobbleAmount
	}

	dx, dy := gamemath.HeadingOnScreen(actor.Pose.Rotation)
	// Perpendicular sway gives the waddle.
	hx := x + dx*r*(1+headScale*0.5) - dy*r*wobble
	hy := y + dy*r*(1+headScale*0.5) + dx*r*wobble

	vector.DrawFilledCircle(screen, float32(hx), float32(hy), float32(r*headScale), cfg.Palette.Head, true) //nolint:staticcheck // TODO: migrate to FillCircle
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), rim, true)                          //nolint:staticcheck // TODO: migrate to FillCircle
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*(0.78+wobble)), body, true)          //nolint:staticcheck // TODO: migrate to FillCircle
	return x, y
}
