package physics

// Margins shrink the block faces so a wall hit needs real vertical overlap and
// a floor or ceiling hit needs real horizontal overlap. The player gets a
// taller vertical margin than other entities.
const (
	blockMarginX           = 0x600
	blockMarginYPlayer     = 0x800
	blockMarginYNonPlayer  = 0x600
	playerWallSpeedClamp   = 0x180
	headBumpSpeed          = -0x200
	heavyLandingSpeed      = 0x400
	platformCatchBandDepth = 0x400
)

// testBlockHit resolves a fully solid tile at tile coordinates (tx, ty).
func testBlockHit(st *State, e PhysicalEntity, tx, ty int32) {
	marginY := int32(blockMarginYNonPlayer)
	if e.IsPlayer() {
		marginY = blockMarginYPlayer
	}

	half := st.TileSize.HalfUnit()
	hb := e.HitBounds()
	top, bottom, right := int32(hb.Top), int32(hb.Bottom), int32(hb.Right)

	centerX := tx * 2 * half
	centerY := ty * 2 * half
	blockTop := (ty*2 - 1) * half
	blockBottom := (ty*2 + 1) * half
	blockLeft := (tx*2 - 1) * half
	blockRight := (tx*2 + 1) * half

	if e.Y()-top < blockBottom-marginY && e.Y()+bottom > blockTop+marginY {
		// Left edge of the entity against the block's right face.
		if e.X()-right < blockRight && e.X()-right > centerX {
			e.SetX(blockRight + right)
			if e.IsPlayer() {
				if e.VelX() < -playerWallSpeedClamp {
					e.SetVelX(-playerWallSpeedClamp)
				}
				if !leftPressed(e) && e.VelX() < 0 {
					e.SetVelX(0)
				}
			}
			e.Flags().SetHitLeftWall()
		}

		if e.X()+right > blockLeft && e.X()+right < centerX {
			e.SetX(blockLeft - right)
			if e.IsPlayer() {
				if e.VelX() > playerWallSpeedClamp {
					e.SetVelX(playerWallSpeedClamp)
				}
				if !rightPressed(e) && e.VelX() > 0 {
					e.SetVelX(0)
				}
			}
			e.Flags().SetHitRightWall()
		}
	}

	if e.X()-right < blockRight-blockMarginX && e.X()+right > blockLeft+blockMarginX {
		if e.Y()-top < blockBottom && e.Y()-top > centerY {
			e.SetY(blockBottom + top)
			if e.IsPlayer() {
				if !e.Cond().Hidden() && e.VelY() < headBumpSpeed {
					headBump(st, e)
				}
				if e.VelY() < 0 {
					e.SetVelY(0)
				}
			} else {
				e.SetVelY(0)
			}
			e.Flags().SetHitTopWall()
		}

		if e.Y()+bottom > blockTop && e.Y()+bottom < centerY {
			landOn(st, e, blockTop)
		}
	}
}

// testPlatformHit resolves a one-way platform. Only an entity whose feet are
// inside a thin band at the top of the tile is caught, so it can be jumped
// through from below and walked through sideways.
func testPlatformHit(st *State, e PhysicalEntity, tx, ty int32) {
	half := st.TileSize.HalfUnit()
	hb := e.HitBounds()
	bottom, right := int32(hb.Bottom), int32(hb.Right)

	blockTop := (ty*2 - 1) * half
	blockLeft := (tx*2 - 1) * half
	blockRight := (tx*2 + 1) * half

	if e.X()-right < blockRight &&
		e.X()+right > blockLeft &&
		e.Y()+bottom > blockTop &&
		e.Y()+bottom < blockTop+platformCatchBandDepth {
		landOn(st, e, blockTop)
	}
}

// landOn stands e on a flat floor whose surface is at surfaceY.
func landOn(st *State, e PhysicalEntity, surfaceY int32) {
	e.SetY(surfaceY - int32(e.HitBounds().Bottom))
	if e.IsPlayer() {
		if e.VelY() > heavyLandingSpeed {
			st.effects().PlaySFX(SoundLand)
		}
		if e.VelY() > 0 {
			e.SetVelY(0)
		}
	} else {
		e.SetVelY(0)
	}
	e.Flags().SetHitBottomWall()
}

// headBump plays the ceiling impact sound and throws two particles from the
// top of the entity's hit box.
func headBump(st *State, e PhysicalEntity) {
	fx := st.effects()
	fx.PlaySFX(SoundHeadBump)
	y := e.Y() - int32(e.HitBounds().Top)
	fx.CreateCaret(e.X(), y, CaretLittleParticles, DirectionLeft)
	fx.CreateCaret(e.X(), y, CaretLittleParticles, DirectionLeft)
}
