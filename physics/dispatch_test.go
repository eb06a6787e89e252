package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchPlayerAndNPCDiffer(t *testing.T) {
	tests := []struct {
		attrib uint8
		player resolverKind
		npc    resolverKind
	}{
		{0x00, resolveNone, resolveNone},
		{AttrWater, resolveWater, resolveWater},
		{AttrNPCSolid, resolveNone, resolveBlock},
		{AttrNPCWaterSolid, resolveNone, resolveBlockWater},
		{AttrSolidShootable, resolveBlock, resolveBlock},
		{AttrSolid, resolveBlock, resolveBlock},
		{AttrSpike, resolveSpike, resolveNone},
		{AttrBreakable, resolveBlock, resolveBlock},
		{AttrTile44, resolveBlock44, resolveBlock44},
		{AttrPlayerSolid, resolveBlock, resolveNone},
		{AttrPlatform, resolvePlatform, resolvePlatform},
		{AttrWaterBack, resolveWater, resolveWater},
		{AttrWaterSolid, resolveBlockWater, resolveBlockWater},
		{AttrWaterSpike, resolveSpike, resolveWater},
		{AttrWaterNPCSolid, resolveNone, resolveBlockWater},
		{0x58, resolveNone, resolveNone},
		{0x59, resolveNone, resolveNone},
		{0x5e, resolveNone, resolveNone},
		{0x84, resolveNone, resolveNone},
		{0xff, resolveNone, resolveNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.player, lookupDispatch(tt.attrib, true).kind, "player 0x%02x", tt.attrib)
		assert.Equal(t, tt.npc, lookupDispatch(tt.attrib, false).kind, "npc 0x%02x", tt.attrib)
	}
}

func TestDispatchWaterSpikeForPlayer(t *testing.T) {
	d := lookupDispatch(AttrWaterSpike, true)
	assert.True(t, d.water)

	d = lookupDispatch(AttrSpike, true)
	assert.False(t, d.water)
}

func TestDispatchSlopes(t *testing.T) {
	shapes := map[uint8]SlopeShape{
		0x50: SlopeUpperLeftHigh,
		0x51: SlopeUpperLeftLow,
		0x52: SlopeUpperRightLow,
		0x53: SlopeUpperRightHigh,
		0x54: SlopeLowerLeftHigh,
		0x55: SlopeLowerLeftLow,
		0x56: SlopeLowerRightLow,
		0x57: SlopeLowerRightHigh,
		0x5a: SlopeUpperLeft,
		0x5b: SlopeUpperRight,
		0x5c: SlopeLowerLeft,
		0x5d: SlopeLowerRight,
	}

	for code, shape := range shapes {
		for _, player := range []bool{true, false} {
			d := lookupDispatch(code, player)
			assert.Equal(t, resolveSlope, d.kind, "0x%02x", code)
			assert.Equal(t, shape, d.slope, "0x%02x", code)
			assert.False(t, d.water, "0x%02x", code)

			d = lookupDispatch(code|AttrSubmerged, player)
			assert.Equal(t, resolveSlope, d.kind, "0x%02x", code|AttrSubmerged)
			assert.Equal(t, shape, d.slope, "0x%02x", code|AttrSubmerged)
			assert.True(t, d.water, "0x%02x", code|AttrSubmerged)
		}
	}
}

func TestDispatchForces(t *testing.T) {
	dirs := []Direction{DirectionLeft, DirectionUp, DirectionRight, DirectionBottom}
	for i, dir := range dirs {
		code := AttrForceBase + uint8(i)

		d := lookupDispatch(code, true)
		assert.Equal(t, resolveForce, d.kind)
		assert.Equal(t, dir, d.dir)
		assert.False(t, d.water)

		d = lookupDispatch(code|AttrSubmerged, false)
		assert.Equal(t, resolveForce, d.kind)
		assert.Equal(t, dir, d.dir)
		assert.True(t, d.water)
	}
}

func TestBuildDispatchTableFirstRuleWins(t *testing.T) {
	table := buildDispatchTable([]dispatchRule{
		{forPlayer, []uint8{0x10}, dispatchEntry{kind: resolveSpike}},
		{forAny, []uint8{0x10, 0x11}, dispatchEntry{kind: resolveWater}},
	})

	assert.Equal(t, resolveSpike, table[1][0x10].kind)
	assert.Equal(t, resolveWater, table[0][0x10].kind)
	assert.Equal(t, resolveWater, table[1][0x11].kind)
	assert.Equal(t, resolveNone, table[1][0x12].kind)
}
