package components

import (
	cfg "github.com/automoto/cooter/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name     string
	Steering cfg.SteeringMode
}

var Player = donburi.NewComponentType[PlayerData]()
