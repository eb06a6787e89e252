package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ShootCooldown int // frames until the next shot
	Jumps         int
	SpikeTicks    int // ticks spent touching spikes
	WaterTicks    int // ticks spent submerged
	OnSpike       bool
}

var Player = donburi.NewComponentType[PlayerData]()
