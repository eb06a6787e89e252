package systems

import (
	"github.com/automoto/doomerang-physics/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio drains pending SFX into the played counters. There is no
// playback backend; the counters are what replays and reports read.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		audioData.Played[soundID]++
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
