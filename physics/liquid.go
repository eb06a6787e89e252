package physics

import "fmt"

// Water, spike and force margins are expressed in legacy 16px-tile pixels and
// scaled by TileSize.Mult.
const (
	waterMarginPlayer    = 5
	waterMarginNonPlayer = 6
	spikeReach           = 0x800
	spikeMarginX         = 4
	spikeMarginY         = 3
	forceMargin          = 6
)

// testHitWater sets FlagInWater when the entity overlaps the water tile. It
// never moves the entity.
func testHitWater(st *State, e PhysicalEntity, tx, ty int32) {
	unit := st.TileSize.Unit()
	mult := st.TileSize.Mult()

	boundsX := int32(waterMarginNonPlayer) * mult
	boundsUp := int32(waterMarginNonPlayer) * mult
	boundsDown := int32(waterMarginNonPlayer) * mult
	if e.IsPlayer() {
		boundsX = waterMarginPlayer * mult
		boundsUp = waterMarginPlayer * mult
		boundsDown = 0
	}

	hb := e.HitBounds()
	top, bottom, right := int32(hb.Top), int32(hb.Bottom), int32(hb.Right)

	if e.X()-right < tx*unit+boundsX &&
		e.X()+right > tx*unit-boundsX &&
		e.Y()-top < ty*unit+boundsUp &&
		e.Y()+bottom > ty*unit-boundsDown {
		e.Flags().SetInWater()
	}
}

// testHitSpike sets FlagHitBySpike when the entity anchor is near the spike
// tile. The reach is fixed and ignores the entity's hit bounds. Submerged
// spikes also report water.
func testHitSpike(st *State, e PhysicalEntity, tx, ty int32, water bool) {
	mult := st.TileSize.Mult()

	if e.X()-spikeReach < (tx*16+spikeMarginX)*mult &&
		e.X()+spikeReach > (tx*16-spikeMarginX)*mult &&
		e.Y()-spikeReach < (ty*16+spikeMarginY)*mult &&
		e.Y()+spikeReach > (ty*16-spikeMarginY)*mult {
		e.Flags().SetHitBySpike()
		if water {
			e.Flags().Set(FlagInWater | FlagBloodyDroplets)
		}
	}
}

// testHitForce sets the conveyor flag for dir when the entity overlaps the
// force tile.
func testHitForce(st *State, e PhysicalEntity, tx, ty int32, dir Direction, water bool) {
	mult := st.TileSize.Mult()
	hb := e.HitBounds()
	left, top, right, bottom := int32(hb.Left), int32(hb.Top), int32(hb.Right), int32(hb.Bottom)

	if e.X()-left < (tx*16+forceMargin)*mult &&
		e.X()+right > (tx*16-forceMargin)*mult &&
		e.Y()-top < (ty*16+forceMargin)*mult &&
		e.Y()+bottom > (ty*16-forceMargin)*mult {
		setForce(e.Flags(), dir, water)
	}
}

// setForce records a conveyor push. A FacingPlayer direction here means the
// dispatch table is corrupt.
func setForce(f *Flag, dir Direction, water bool) {
	switch dir {
	case DirectionLeft:
		f.SetForceLeft()
	case DirectionUp:
		f.SetForceUp()
	case DirectionRight:
		f.SetForceRight()
	case DirectionBottom:
		f.SetForceDown()
	default:
		panic(fmt.Sprintf("physics: invalid force direction %v", dir))
	}

	if water {
		f.SetInWater()
	}
}
