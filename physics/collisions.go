// Package physics resolves entities against the static tile grid. It is a
// deterministic, integer-only port of a classic side-scroller collision model:
// each call repositions one entity, clamps its velocity and rebuilds its
// collision Flag bitset from the tiles around it.
package physics

import "github.com/automoto/doomerang-physics/shared/fixed"

// AttributeMap resolves tile coordinates to attribute bytes. Coordinates
// outside the map must return 0.
type AttributeMap interface {
	Attribute(x, y int32) uint8
}

// State is the read-only world an entity is resolved against.
type State struct {
	Map      AttributeMap
	TileSize fixed.TileSize

	// WaterLevel is the sub-pixel y below which every entity counts as
	// submerged, regardless of tiles.
	WaterLevel int32

	// Effects receives impact sounds and particles. Nil discards them.
	Effects Effects
}

func (st *State) effects() Effects {
	if st.Effects == nil {
		return NopEffects{}
	}
	return st.Effects
}

// TileOrigin returns the tile the neighbourhood scan for e starts from.
func TileOrigin(st *State, e PhysicalEntity) (int32, int32) {
	unit := st.TileSize.Unit()
	ox, oy := anchorOffset(e)
	return (e.X() + ox) / unit, (e.Y() + oy) / unit
}

// TickMapCollisions clears e's flags, then scans the leading Offsets entries
// around e in table order and runs the resolver each tile's attribute selects.
// The result depends only on e, the map and the water level.
func TickMapCollisions(st *State, e PhysicalEntity) {
	e.Flags().Reset()

	if st.Map != nil && st.TileSize.Valid() {
		tx, ty := TileOrigin(st, e)
		count := ScanCount(e.HitRectSize(), st.TileSize)
		for _, off := range Offsets[:count] {
			x, y := tx+off.DX, ty+off.DY
			d := lookupDispatch(st.Map.Attribute(x, y), e.IsPlayer())
			if d.kind == resolveNone {
				continue
			}
			resolve(st, e, d, x, y)
		}
	}

	if e.Y()-int32(e.HitBounds().Top) > st.WaterLevel {
		e.Flags().SetInWater()
	}
}
