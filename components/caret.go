package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
)

// CaretData is a short-lived particle spawned by collisions and bullets.
type CaretData struct {
	X, Y            int32
	Kind            physics.CaretKind
	Direction       physics.Direction
	FramesRemaining int
}

var Caret = donburi.NewComponentType[CaretData]()
