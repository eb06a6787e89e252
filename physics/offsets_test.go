package physics

import (
	"testing"

	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/stretchr/testify/assert"
)

func TestOffsetsAreUnique(t *testing.T) {
	seen := make(map[TileOffset]bool)
	for i, off := range Offsets {
		assert.False(t, seen[off], "offset %d (%d, %d) repeated", i, off.DX, off.DY)
		seen[off] = true
		assert.True(t, off.DX >= -3 && off.DX <= 4, "offset %d dx out of range", i)
		assert.True(t, off.DY >= -3 && off.DY <= 4, "offset %d dy out of range", i)
	}
	assert.Len(t, seen, 64)
}

func TestOffsetsNearestBlockFirst(t *testing.T) {
	for i, off := range Offsets[:9] {
		assert.True(t, off.DX >= 0 && off.DX <= 2 && off.DY >= 0 && off.DY <= 2,
			"offset %d (%d, %d) is outside the leading 3x3 block", i, off.DX, off.DY)
	}
	assert.Equal(t, TileOffset{0, 0}, Offsets[0])
	assert.Equal(t, TileOffset{4, 4}, Offsets[63])
}

func TestScanCount(t *testing.T) {
	tests := []struct {
		size int
		ts   fixed.TileSize
		want int
	}{
		{0, fixed.Tile16x16, 1},
		{1, fixed.Tile16x16, 1},
		{2, fixed.Tile16x16, 4},
		{3, fixed.Tile16x16, 9},
		{4, fixed.Tile16x16, 16},
		{9, fixed.Tile16x16, 16},
		{1, fixed.Tile8x8, 4},
		{2, fixed.Tile8x8, 16},
		{4, fixed.Tile8x8, 64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScanCount(tt.size, tt.ts), "size %d tile %d", tt.size, tt.ts)
	}
}
