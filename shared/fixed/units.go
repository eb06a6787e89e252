// Package fixed holds the scaled-integer conventions shared by the collision
// core and the simulation harness. Every position and velocity in the engine
// is an int32 counted in sub-pixels (1/512 of a display pixel).
//
// Two tile-relative scales recur in the collision math and are easy to mix up:
//
//	TileSize.Unit()     = px * 0x200  full tile, used by slope/water/force math
//	TileSize.HalfUnit() = px * 0x100  half tile, used by block/platform math
//
// Keep conversions in this file so the rest of the code never multiplies by a
// bare 0x200.
package fixed

// SubPixel is the number of sub-pixel units per display pixel.
const SubPixel int32 = 0x200

// TileSize is the edge length of a map tile in display pixels. Only 8 and 16
// are valid.
type TileSize int32

const (
	Tile8x8   TileSize = 8
	Tile16x16 TileSize = 16
)

// Valid reports whether t is one of the supported tile sizes.
func (t TileSize) Valid() bool {
	return t == Tile8x8 || t == Tile16x16
}

// Pixels returns the tile edge in display pixels.
func (t TileSize) Pixels() int32 {
	return int32(t)
}

// Unit returns the tile edge in sub-pixels.
func (t TileSize) Unit() int32 {
	return int32(t) * SubPixel
}

// HalfUnit returns half a tile edge in sub-pixels.
func (t TileSize) HalfUnit() int32 {
	return int32(t) * 0x100
}

// QuarterUnit returns a quarter tile edge in sub-pixels.
func (t TileSize) QuarterUnit() int32 {
	return t.HalfUnit() / 2
}

// Mult scales legacy 16px-tile pixel margins to this tile size.
func (t TileSize) Mult() int32 {
	return t.Unit() / 16
}

// ScanScale is the multiplier applied to the squared hit-rect size when
// choosing how many neighbourhood offsets to scan. 8x8 maps need four times
// as many tiles to cover the same area.
func (t TileSize) ScanScale() int {
	if t == Tile8x8 {
		return 4
	}
	return 1
}

// FromPixels converts display pixels to sub-pixels.
func FromPixels(px int32) int32 {
	return px * SubPixel
}

// ToPixels converts sub-pixels to whole display pixels, truncating toward zero.
func ToPixels(sub int32) int32 {
	return sub / SubPixel
}

// TileCenter returns the sub-pixel coordinate of the centre of tile index i.
func (t TileSize) TileCenter(i int32) int32 {
	return i * t.Unit()
}
