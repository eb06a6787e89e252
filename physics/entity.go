package physics

import "github.com/automoto/doomerang-physics/shared/fixed"

// PhysicalEntity is what TickMapCollisions needs from a player, NPC or
// bullet. Positions and velocities are sub-pixel int32 values. Hit bounds are
// extents measured outward from the entity anchor.
type PhysicalEntity interface {
	X() int32
	Y() int32
	VelX() int32
	VelY() int32
	SetX(x int32)
	SetY(y int32)
	SetVelX(vx int32)
	SetVelY(vy int32)

	HitBounds() fixed.Rect[uint32]
	DisplayBounds() fixed.Rect[uint32]
	Flags() *Flag
	Cond() *Condition
	Direction() Direction
	IsPlayer() bool

	// HitRectSize selects how far the neighbourhood scan reaches. Values are
	// clamped to [1, 4].
	HitRectSize() int
}

// Tile44Ignorer lets an entity opt in to treating attribute 0x44 as solid.
// Entities that do not implement it ignore 0x44.
type Tile44Ignorer interface {
	IgnoreTile44() bool
}

// ControllerState exposes held directions so a player pressing into a wall
// keeps its clamped horizontal speed. Entities without it never do.
type ControllerState interface {
	LeftPressed() bool
	RightPressed() bool
}

// AnchorOffset biases the tile origin for entities whose anchor is not the
// point the scan should centre on. Entities without it use (0, 0).
type AnchorOffset interface {
	OffsetX() int32
	OffsetY() int32
}

func ignoresTile44(e PhysicalEntity) bool {
	if t, ok := e.(Tile44Ignorer); ok {
		return t.IgnoreTile44()
	}
	return true
}

func leftPressed(e PhysicalEntity) bool {
	if c, ok := e.(ControllerState); ok {
		return c.LeftPressed()
	}
	return false
}

func rightPressed(e PhysicalEntity) bool {
	if c, ok := e.(ControllerState); ok {
		return c.RightPressed()
	}
	return false
}

func anchorOffset(e PhysicalEntity) (int32, int32) {
	if a, ok := e.(AnchorOffset); ok {
		return a.OffsetX(), a.OffsetY()
	}
	return 0, 0
}
