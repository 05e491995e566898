package systems

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/automoto/cooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dialogueWrapColumns = 90

// UpdateDialogue opens, advances and closes conversations with animals and
// ages the hint box.
func UpdateDialogue(e *ecs.ECS) {
	state := getOrCreateDialogue(e)
	input := getOrCreateInput(e)

	if state.HintTimer > 0 {
		state.HintTimer -= GetOrCreateFrame(e).Dt
		if state.HintTimer <= 0 {
			state.Hint = ""
			state.HintTimer = 0
		}
	}

	interact := GetAction(input, cfg.ActionInteract).JustPressed

	if state.Active {
		if interact {
			advanceDialogue(e, state)
		}
		return
	}

	state.Nearby = nearestNPC(e, cfg.NPC.TalkRadius)
	if state.Nearby == nil || !interact {
		return
	}

	npc := components.NPC.Get(state.Nearby)
	script, ok := cfg.Dialogues[npc.Dialogue]
	if !ok || len(script.Lines) == 0 {
		log.Printf("Warning: %s has unknown dialogue %q", npc.Name, npc.Dialogue)
		ShowHint(e, npc.Name+" has nothing to say.")
		return
	}

	state.Active = true
	state.Speaker = state.Nearby
	state.ScriptID = npc.Dialogue
	state.Line = 0
	npc.Talking = true
	faceEachOther(e, state.Speaker)
	PlaySFX(e, script.Sound)
}

func advanceDialogue(e *ecs.ECS, state *components.DialogueData) {
	script := cfg.Dialogues[state.ScriptID]
	state.Line++
	if state.Line < len(script.Lines) {
		PlaySFX(e, cfg.SoundTalk)
		return
	}

	if state.Speaker != nil && state.Speaker.Valid() {
		components.NPC.Get(state.Speaker).Talking = false
	}

	svc := GetServices(e)
	if script.Bounty > 0 && svc != nil && svc.Inventory != nil && svc.Inventory.ClaimBounty(state.ScriptID) {
		if err := svc.Inventory.AddGrains(script.Bounty); err != nil {
			log.Printf("Warning: Could not pay bounty for %s: %v", state.ScriptID, err)
		} else {
			PlaySFX(e, cfg.SoundGrain)
			ShowHint(e, fmt.Sprintf("%s gave you %d Time Grains", script.Speaker, script.Bounty))
		}
	}

	state.Active = false
	state.Speaker = nil
	state.ScriptID = ""
	state.Line = 0
}

// nearestNPC returns the closest animal within radius of the turtle.
func nearestNPC(e *ecs.ECS, radius float64) *donburi.Entry {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	p := components.Actor.Get(playerEntry).Pose

	var best *donburi.Entry
	bestDist := radius
	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		n := components.Actor.Get(entry).Pose
		if d := math.Hypot(n.X-p.X, n.Z-p.Z); d <= bestDist {
			best, bestDist = entry, d
		}
	})
	return best
}

// faceEachOther turns the speaker and the turtle toward each other.
func faceEachOther(e *ecs.ECS, speaker *donburi.Entry) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Actor.Get(playerEntry)
	npc := components.Actor.Get(speaker)

	dx, dz := player.Pose.X-npc.Pose.X, player.Pose.Z-npc.Pose.Z
	npc.Pose.Rotation = math.Atan2(dx, dz)
	player.Pose.Rotation = math.Atan2(-dx, -dz)
}

// IsDialogueActive reports whether a conversation is on screen.
func IsDialogueActive(e *ecs.ECS) bool {
	return getOrCreateDialogue(e).Active
}

// ShowHint flashes a short message above the HUD.
func ShowHint(e *ecs.ECS, msg string) {
	state := getOrCreateDialogue(e)
	state.Hint = msg
	state.HintTimer = cfg.Message.HintDuration
}

// ResetDialogue closes any conversation (call on realm change).
func ResetDialogue(e *ecs.ECS) {
	state := getOrCreateDialogue(e)
	state.Active = false
	state.Speaker = nil
	state.Nearby = nil
	state.ScriptID = ""
	state.Line = 0
}

// DrawDialogue renders the conversation box, the talk prompt and hints.
func DrawDialogue(e *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateDialogue(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	switch {
	case state.Active:
		script := cfg.Dialogues[state.ScriptID]
		if state.Line < len(script.Lines) {
			lines := wrapText(script.Lines[state.Line], dialogueWrapColumns)
			drawMessageBox(screen, width, height, script.Speaker, lines)
		}
	case state.Nearby != nil && state.Nearby.Valid():
		npc := components.NPC.Get(state.Nearby)
		drawMessageBox(screen, width, height, "", []string{npc.Name + ": " + cfg.Message.InteractHint})
	}

	if state.Hint != "" {
		face := fonts.GoRegular.Get()
		bounds := text.BoundString(face, state.Hint) //nolint:staticcheck // TODO: migrate to text/v2
		pad := cfg.Message.BoxPadding
		boxW := float64(bounds.Dx()) + pad*2
		boxH := float64(bounds.Dy()) + pad*2
		boxX := (width - boxW) / 2
		boxY := 36.0
		vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Message.BoxColor, false)
		text.Draw(screen, state.Hint, face, int(boxX+pad), int(boxY+pad)+bounds.Dy(), cfg.Message.TextColor)
	}
}

func drawMessageBox(screen *ebiten.Image, width, height float64, speaker string, lines []string) {
	face := fonts.GoRegular.Get()
	lineHeight := float64(face.Metrics().Height.Ceil())
	pad := cfg.Message.BoxPadding

	rows := len(lines)
	if speaker != "" {
		rows++
	}
	boxH := float64(rows)*lineHeight + pad*2
	boxY := height - boxH - cfg.Message.BottomMargin
	boxX := cfg.Message.BottomMargin
	boxW := width - cfg.Message.BottomMargin*2

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Message.BoxColor, false)

	y := boxY + pad + lineHeight
	if speaker != "" {
		text.Draw(screen, speaker, face, int(boxX+pad), int(y), cfg.Message.NameColor)
		y += lineHeight
	}
	for _, line := range lines {
		text.Draw(screen, line, face, int(boxX+pad), int(y), cfg.Message.TextColor)
		y += lineHeight
	}
}

// wrapText breaks s into lines of at most cols characters at word
// boundaries. Words longer than cols get their own line.
func wrapText(s string, cols int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > cols {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// getOrCreateDialogue returns the singleton Dialogue component
func getOrCreateDialogue(e *ecs.ECS) *components.DialogueData {
	entry, ok := components.Dialogue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Dialogue))
	}
	return components.Dialogue.Get(entry)
}
