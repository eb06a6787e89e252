package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		speed    int32
		friction int32
		want     int32
	}{
		{"positive", 0x200, 0x33, 0x1cd},
		{"negative", -0x200, 0x33, -0x1cd},
		{"within friction", 0x20, 0x33, 0},
		{"negative within friction", -0x33, 0x33, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyFriction(tt.speed, tt.friction))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, int32(0x5ff), ClampSpeed(0x900, 0x5ff))
	assert.Equal(t, int32(-0x5ff), ClampSpeed(-0x900, 0x5ff))
	assert.Equal(t, int32(0x100), ClampSpeed(0x100, 0x5ff))
	assert.Equal(t, 4, Clamp(9, 1, 4))
	assert.Equal(t, 1, Clamp(-2, 1, 4))
}

func TestAxisDirection(t *testing.T) {
	assert.Equal(t, int32(-1), AxisDirection(true, false))
	assert.Equal(t, int32(1), AxisDirection(false, true))
	assert.Equal(t, int32(0), AxisDirection(true, true))
	assert.Equal(t, int32(0), AxisDirection(false, false))
}

func TestRampSurfaceY(t *testing.T) {
	const unit = 0x2000 // 16px tile
	tileX, tileY := int32(2), int32(3)
	center := tileX * unit

	descending := Ramp{Sign: 1, Divisor: 2, Offset: -1}
	assert.Equal(t, tileY*unit-0x800, descending.SurfaceY(tileX, tileY, center, unit))
	assert.Equal(t, tileY*unit-0x800+0x400, descending.SurfaceY(tileX, tileY, center+0x800, unit))

	rising := Ramp{Sign: -1, Divisor: 1}
	assert.Equal(t, tileY*unit-0x800, rising.SurfaceY(tileX, tileY, center+0x800, unit))
	assert.Equal(t, tileY*unit+0x800, rising.SurfaceY(tileX, tileY, center-0x800, unit))

	// Truncation toward zero: -3/2 == -1, so the surface sits one unit higher
	// than floor division would put it.
	assert.Equal(t, tileY*unit-1, descending.SurfaceY(tileX, tileY, center-3, unit)+0x800)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, int32(0x10800), SnapAbove(0x11000, 0x800))
	assert.Equal(t, int32(0x11800), SnapBelow(0x11000, 0x800))
}
