package config

// Dialogue is the script an animal NPC speaks when the turtle talks to it
type Dialogue struct {
	Speaker string
	Lines   []string
	Bounty  int // grains awarded the first time the dialogue is finished
	Sound   SoundID
}

// Dialogues maps the Tiled "dialogue" property to a script
var Dialogues map[string]Dialogue

func init() {
	Dialogues = map[string]Dialogue{
		"owl_riddle": {
			Speaker: "Owl",
			Lines: []string{
				"Hoo! A turtle with time on its shell.",
				"I run but never walk, I have hands but cannot clap. What am I?",
				"A clock, of course. Take these grains, slow one.",
			},
			Bounty: 3,
			Sound:  SoundHoot,
		},
		"rabbit_hurry": {
			Speaker: "Rabbit",
			Lines: []string{
				"Late, late, always late!",
				"Grains of time fall all over the meadow. Pick them up before they melt.",
			},
			Bounty: 1,
			Sound:  SoundTalk,
		},
		"fox_portal": {
			Speaker: "Fox",
			Lines: []string{
				"The tower portal hums when it is fed enough grains.",
				"Bring it what it asks and it will let you through.",
			},
			Bounty: 0,
			Sound:  SoundTalk,
		},
		"frog_pond": {
			Speaker: "Frog",
			Lines: []string{
				"Ribbit. The clocktower ticks backwards at midnight.",
				"What has a face but no eyes? Think on it.",
			},
			Bounty: 2,
			Sound:  SoundTalk,
		},
		"owl_tower": {
			Speaker: "Elder Owl",
			Lines: []string{
				"You found the tower. Few turtles are this patient.",
				"Mint your journey in the hub if you wish it remembered.",
			},
			Bounty: 5,
			Sound:  SoundHoot,
		},
	}
}
