package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagBits(t *testing.T) {
	assert.Equal(t, Flag(0x01), FlagHitLeftWall)
	assert.Equal(t, Flag(0x08), FlagHitBottomWall)
	assert.Equal(t, Flag(0x100), FlagInWater)
	assert.Equal(t, Flag(0x400), FlagHitBySpike)
	assert.Equal(t, Flag(0x1000), FlagForceLeft)
	assert.Equal(t, Flag(0x8000), FlagForceDown)
	assert.Equal(t, Flag(0x80000), FlagHitRightHigherHalf)
}

func TestFlagSetAndReset(t *testing.T) {
	var f Flag
	assert.False(t, f.InWater())

	f.SetInWater()
	f.SetHitTopWall()
	assert.True(t, f.InWater())
	assert.True(t, f.HitTopWall())
	assert.False(t, f.HitBottomWall())
	assert.True(t, f.Has(FlagInWater|FlagHitTopWall))
	assert.False(t, f.Has(FlagInWater|FlagHitBottomWall))
	assert.True(t, f.Any(FlagAnyWall))

	f.Reset()
	assert.Equal(t, Flag(0), f)
}

func TestFlagNamedAccessors(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Flag)
		get  func(Flag) bool
		bit  Flag
	}{
		{"hit left wall", (*Flag).SetHitLeftWall, Flag.HitLeftWall, FlagHitLeftWall},
		{"hit right wall", (*Flag).SetHitRightWall, Flag.HitRightWall, FlagHitRightWall},
		{"hit upper left slope", (*Flag).SetHitUpperLeftSlope, Flag.HitUpperLeftSlope, FlagHitUpperLeftSlope},
		{"weapon hit block", (*Flag).SetWeaponHitBlock, Flag.WeaponHitBlock, FlagWeaponHitBlock},
		{"hit by spike", (*Flag).SetHitBySpike, Flag.HitBySpike, FlagHitBySpike},
		{"force up", (*Flag).SetForceUp, Flag.ForceUp, FlagForceUp},
		{"left lower half", (*Flag).SetHitLeftLowerHalf, Flag.HitLeftLowerHalf, FlagHitLeftLowerHalf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			tt.set(&f)
			assert.True(t, tt.get(f))
			assert.Equal(t, tt.bit, f)
		})
	}
}

func TestCondition(t *testing.T) {
	var c Condition
	c.SetAlive(true)
	c.SetHidden(true)
	assert.True(t, c.Alive())
	assert.True(t, c.Hidden())

	c.SetHidden(false)
	assert.False(t, c.Hidden())
	assert.True(t, c.Alive())
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("down")
	assert.True(t, ok)
	assert.Equal(t, DirectionBottom, d)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
	assert.Equal(t, "facing-player", DirectionFacingPlayer.String())
}
