package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileSizeUnits(t *testing.T) {
	tests := []struct {
		name    string
		size    TileSize
		unit    int32
		half    int32
		quarter int32
		mult    int32
		scan    int
	}{
		{"16x16", Tile16x16, 0x2000, 0x1000, 0x800, 0x200, 1},
		{"8x8", Tile8x8, 0x1000, 0x800, 0x400, 0x100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.size.Valid())
			assert.Equal(t, tt.unit, tt.size.Unit())
			assert.Equal(t, tt.half, tt.size.HalfUnit())
			assert.Equal(t, tt.quarter, tt.size.QuarterUnit())
			assert.Equal(t, tt.mult, tt.size.Mult())
			assert.Equal(t, tt.scan, tt.size.ScanScale())
		})
	}

	assert.False(t, TileSize(12).Valid())
}

func TestPixelConversion(t *testing.T) {
	assert.Equal(t, int32(0x2000), FromPixels(16))
	assert.Equal(t, int32(16), ToPixels(0x2000))
	assert.Equal(t, int32(-1), ToPixels(-0x3ff))
	assert.Equal(t, int32(3*0x2000), Tile16x16.TileCenter(3))
}

func TestRect(t *testing.T) {
	r := NewRectSize[int32](10, 20, 30, 40)
	assert.Equal(t, Rect[int32]{Left: 10, Top: 20, Right: 40, Bottom: 60}, r)
	assert.Equal(t, int32(30), r.Width())
	assert.Equal(t, int32(40), r.Height())

	hit := NewRect[uint32](0x600, 0x800, 0x600, 0x800)
	l, tp, rt, b := Extents(hit)
	assert.Equal(t, []int32{0x600, 0x800, 0x600, 0x800}, []int32{l, tp, rt, b})

	assert.True(t, PointInX(hit, 0x1000, 0x1000+0x5ff))
	assert.False(t, PointInX(hit, 0x1000, 0x1000+0x600))
	assert.True(t, PointInY(hit, 0, -0x7ff))
	assert.False(t, PointInY(hit, 0, 0x800))
}
