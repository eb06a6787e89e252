package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/yohamta/donburi"
)

// BodyData is the collision-relevant state shared by players, NPCs and
// bullets. Positions and speeds are sub-pixels.
type BodyData struct {
	X, Y       int32
	VelX, VelY int32

	Hit     fixed.Rect[uint32] // hit extents from the anchor
	Display fixed.Rect[uint32]

	Flags     physics.Flag // rebuilt by every collision pass
	Cond      physics.Condition
	Direction physics.Direction

	HitRectSize      int
	OffsetX, OffsetY int32 // tile-origin bias
	SolidTile44      bool
}

var Body = donburi.NewComponentType[BodyData]()
