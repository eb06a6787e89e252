package gamemath

// Ramp describes one of the piecewise-linear slope surfaces that cross a
// single tile. The surface height at horizontal position x is
//
//	tileY*unit + Sign*(x - tileX*unit)/Divisor + Offset*quarter
//
// Sign is +1 for a surface that descends (y grows) to the right and -1 for one
// that rises. Divisor is 2 for the half-height ramps and 1 for the full ones.
// Offset picks the high (-1) or low (+1) half for floor ramps and the reverse
// for ceiling ramps.
type Ramp struct {
	Sign    int32
	Divisor int32
	Offset  int32
}

// SurfaceY returns the sub-pixel y of the ramp surface at x for the tile at
// (tileX, tileY). Integer division truncates toward zero, which matters for
// positions left of the tile centre.
func (r Ramp) SurfaceY(tileX, tileY, x, unit int32) int32 {
	quarter := unit / 4
	return tileY*unit + r.Sign*((x-tileX*unit)/r.Divisor) + r.Offset*quarter
}

// SnapAbove returns the anchor y that puts an entity's bottom edge on surfaceY.
func SnapAbove(surfaceY, bottom int32) int32 {
	return surfaceY - bottom
}

// SnapBelow returns the anchor y that puts an entity's top edge on surfaceY.
func SnapBelow(surfaceY, top int32) int32 {
	return surfaceY + top
}
