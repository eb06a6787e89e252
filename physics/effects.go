package physics

// SoundID identifies a legacy sample played on impacts.
type SoundID uint8

const (
	SoundHeadBump   SoundID = 3
	SoundBlockBreak SoundID = 12
	SoundLand       SoundID = 23
)

// CaretKind is the small transient particle effect spawned by a collision.
type CaretKind uint8

const (
	CaretNone CaretKind = iota
	CaretBubble
	CaretProjectileDissipation
	CaretShoot
	CaretLittleParticles
)

// Effects receives fire-and-forget notifications from the resolvers. The core
// never inspects what an implementation does with them.
type Effects interface {
	PlaySFX(id SoundID)
	CreateCaret(x, y int32, kind CaretKind, dir Direction)
}

// NopEffects discards every notification.
type NopEffects struct{}

func (NopEffects) PlaySFX(SoundID)                                {}
func (NopEffects) CreateCaret(int32, int32, CaretKind, Direction) {}
