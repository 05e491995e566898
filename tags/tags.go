package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	NPC    = donburi.NewTag().SetName("NPC")
	Grain  = donburi.NewTag().SetName("Grain")
	Rock   = donburi.NewTag().SetName("Rock")
	Portal = donburi.NewTag().SetName("Portal")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvNPC    = "npc"
	ResolvGrain  = "grain"
	ResolvPortal = "portal"
)
