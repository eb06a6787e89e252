package physics

import "github.com/automoto/doomerang-physics/shared/gamemath"

// SlopeShape identifies one of the twelve ramp formulas.
type SlopeShape uint8

const (
	SlopeUpperLeftHigh SlopeShape = iota
	SlopeUpperLeftLow
	SlopeUpperRightLow
	SlopeUpperRightHigh
	SlopeLowerLeftHigh
	SlopeLowerLeftLow
	SlopeLowerRightLow
	SlopeLowerRightHigh
	SlopeUpperLeft
	SlopeUpperRight
	SlopeLowerLeft
	SlopeLowerRight
)

// slope pairs a ramp surface with the flags a hit sets. Ceiling ramps push
// the entity's top edge down; floor ramps push its bottom edge up. Floor ramps
// also mark which half of the tile the entity was scanned against, whether or
// not it ends up touching the surface.
type slope struct {
	ramp    gamemath.Ramp
	ceiling bool
	hit     Flag
	marker  Flag
}

var slopes = [...]slope{
	SlopeUpperLeftHigh:  {ramp: gamemath.Ramp{Sign: -1, Divisor: 2, Offset: 1}, ceiling: true, hit: FlagHitUpperLeftSlope},
	SlopeUpperLeftLow:   {ramp: gamemath.Ramp{Sign: -1, Divisor: 2, Offset: -1}, ceiling: true, hit: FlagHitUpperLeftSlope},
	SlopeUpperRightLow:  {ramp: gamemath.Ramp{Sign: 1, Divisor: 2, Offset: -1}, ceiling: true, hit: FlagHitUpperRightSlope},
	SlopeUpperRightHigh: {ramp: gamemath.Ramp{Sign: 1, Divisor: 2, Offset: 1}, ceiling: true, hit: FlagHitUpperRightSlope},
	SlopeLowerLeftHigh:  {ramp: gamemath.Ramp{Sign: 1, Divisor: 2, Offset: -1}, hit: FlagHitLeftSlope, marker: FlagHitLeftHigherHalf},
	SlopeLowerLeftLow:   {ramp: gamemath.Ramp{Sign: 1, Divisor: 2, Offset: 1}, hit: FlagHitLeftSlope, marker: FlagHitLeftLowerHalf},
	SlopeLowerRightLow:  {ramp: gamemath.Ramp{Sign: -1, Divisor: 2, Offset: 1}, hit: FlagHitRightSlope, marker: FlagHitRightLowerHalf},
	SlopeLowerRightHigh: {ramp: gamemath.Ramp{Sign: -1, Divisor: 2, Offset: -1}, hit: FlagHitRightSlope, marker: FlagHitRightHigherHalf},

	// The full-height ceiling ramps only ever report a top-wall hit.
	SlopeUpperLeft:  {ramp: gamemath.Ramp{Sign: -1, Divisor: 1}, ceiling: true},
	SlopeUpperRight: {ramp: gamemath.Ramp{Sign: 1, Divisor: 1}, ceiling: true},
	SlopeLowerLeft:  {ramp: gamemath.Ramp{Sign: 1, Divisor: 1, Offset: -1}, hit: FlagHitLeftSlope, marker: FlagHitLeftHigherHalf},
	SlopeLowerRight: {ramp: gamemath.Ramp{Sign: -1, Divisor: 1, Offset: -1}, hit: FlagHitRightSlope, marker: FlagHitRightHigherHalf},
}

// SurfaceY returns the sub-pixel height of the ramp surface at x for tile
// (tx, ty) on a map whose tile edge is unit sub-pixels.
func (s SlopeShape) SurfaceY(tx, ty, x, unit int32) int32 {
	return slopes[s].ramp.SurfaceY(tx, ty, x, unit)
}

// Ceiling reports whether the shape is a ceiling ramp.
func (s SlopeShape) Ceiling() bool {
	return slopes[s].ceiling
}

// testSlopeHit resolves ramp tile (tx, ty). Seams between neighbouring ramp
// tiles are not blended: the entity anchor must be strictly inside this
// tile's horizontal span.
func testSlopeHit(st *State, e PhysicalEntity, shape SlopeShape, tx, ty int32) {
	sl := slopes[shape]
	unit := st.TileSize.Unit()
	half := unit / 2
	hb := e.HitBounds()
	top, bottom := int32(hb.Top), int32(hb.Bottom)

	blockLeft := (tx*2 - 1) * half
	blockRight := (tx*2 + 1) * half

	e.Flags().Set(sl.marker)

	if e.X() >= blockRight || e.X() <= blockLeft {
		return
	}

	surface := sl.ramp.SurfaceY(tx, ty, e.X(), unit)

	if sl.ceiling {
		blockTop := (ty*2 - 1) * half
		if e.Y()-top >= surface || e.Y()+bottom <= blockTop {
			return
		}

		e.SetY(gamemath.SnapBelow(surface, top))
		if e.IsPlayer() && !e.Cond().Hidden() && e.VelY() < headBumpSpeed {
			headBump(st, e)
		}
		if e.VelY() < 0 {
			e.SetVelY(0)
		}
		e.Flags().Set(FlagHitTopWall | sl.hit)
		return
	}

	blockBottom := (ty*2 + 1) * half
	if e.Y()+bottom <= surface || e.Y()-top >= blockBottom {
		return
	}

	e.SetY(gamemath.SnapAbove(surface, bottom))
	if e.IsPlayer() && e.VelY() > heavyLandingSpeed {
		st.effects().PlaySFX(SoundLand)
	}
	if e.VelY() > 0 {
		e.SetVelY(0)
	}
	e.Flags().Set(FlagHitBottomWall | sl.hit)
}
