package config

import "github.com/automoto/doomerang-physics/physics"

// Type aliases so systems can name sounds and particles through config
// without importing the collision core.
type SoundID = physics.SoundID
type CaretKind = physics.CaretKind

// Re-export the sounds the collision core emits.
const (
	SoundHeadBump   = physics.SoundHeadBump
	SoundBlockBreak = physics.SoundBlockBreak
	SoundLand       = physics.SoundLand
)

// Sounds emitted by entity logic rather than by collision.
const (
	SoundJump  SoundID = 15
	SoundShoot SoundID = 33
	SoundSpike SoundID = 16
)

// Re-export particle kinds.
const (
	CaretNone                  = physics.CaretNone
	CaretBubble                = physics.CaretBubble
	CaretProjectileDissipation = physics.CaretProjectileDissipation
	CaretShoot                 = physics.CaretShoot
	CaretLittleParticles       = physics.CaretLittleParticles
)

// SoundConfig names sound IDs for reports.
type SoundConfig struct {
	Names map[SoundID]string
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundHeadBump:   "head_bump",
			SoundBlockBreak: "block_break",
			SoundJump:       "jump",
			SoundSpike:      "spike",
			SoundLand:       "land",
			SoundShoot:      "shoot",
		},
	}
}

// SoundName returns the report name of id.
func SoundName(id SoundID) string {
	if name, ok := Sound.Names[id]; ok {
		return name
	}
	return "unknown"
}
