package components

import (
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Sounds are
// queued by the collision effects sink and counted once drained.
type AudioData struct {
	PendingSFX []cfg.SoundID
	Played     map[cfg.SoundID]int
}

var Audio = donburi.NewComponentType[AudioData]()
