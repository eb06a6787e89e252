package physics

import (
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/automoto/doomerang-physics/shared/gamemath"
)

// TileOffset is a (dx, dy) displacement in tiles from the entity's tile.
type TileOffset struct {
	DX, DY int32
}

// Offsets is the neighbourhood scan order. Position in the table is the scan
// priority:
//
//	     -3 -2 -1  0  1  2  3  4
//	   +------------------------
//	-3 | 37 44 45 46 47 48 49 50
//	-2 | 38 26 32 33 34 35 36 51
//	-1 | 39 27 10 14 15 16 18 52
//	 0 | 40 28 11  1  2  5 19 53
//	 1 | 41 29 12  3  4  6 20 54
//	 2 | 42 30 13  8  9  7 21 55
//	 3 | 43 31 22 23 24 25 17 56
//	 4 | 57 58 59 60 61 62 63 64
//
// Later resolvers may overwrite positions set by earlier ones, so the table
// must be walked in this order and never re-sorted.
var Offsets = [64]TileOffset{
	{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}, {2, 1}, {2, 2}, {0, 2},
	{1, 2}, {-1, -1}, {-1, 0}, {-1, 1}, {-1, 2}, {0, -1}, {1, -1}, {2, -1},
	{3, 3}, {3, -1}, {3, 0}, {3, 1}, {3, 2}, {-1, 3}, {0, 3}, {1, 3},
	{2, 3}, {-2, -2}, {-2, -1}, {-2, 0}, {-2, 1}, {-2, 2}, {-2, 3}, {-1, -2},
	{0, -2}, {1, -2}, {2, -2}, {3, -2}, {-3, -3}, {-3, -2}, {-3, -1}, {-3, 0},
	{-3, 1}, {-3, 2}, {-3, 3}, {-2, -3}, {-1, -3}, {0, -3}, {1, -3}, {2, -3},
	{3, -3}, {4, -3}, {4, -2}, {4, -1}, {4, 0}, {4, 1}, {4, 2}, {4, 3},
	{-3, 4}, {-2, 4}, {-1, 4}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4},
}

// ScanCount returns how many leading Offsets entries an entity with the given
// hit-rect size scans on a map with tile size ts.
func ScanCount(hitRectSize int, ts fixed.TileSize) int {
	n := gamemath.Clamp(hitRectSize, 1, 4)
	return n * n * ts.ScanScale()
}
