package systems

import (
	"testing"

	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tileBreakable uint8 = 1

func breakableLevel(tx, ty int32) *components.LevelData {
	m := leveldata.NewAttributeMap(12, 8)
	m.Attrib[tileBreakable] = physics.AttrBreakable
	m.SetTile(tx, ty, tileBreakable)
	return &components.LevelData{
		Attributes: m,
		Collision:  &physics.State{Map: m, TileSize: fixed.Tile16x16},
	}
}

func TestBreakBlocksAsymmetricBullet(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	tests := []struct {
		name  string
		flag  physics.Flag
		x     int32
		block int32
	}{
		// Pushed off the right face of tile 5 (0xb000) by the right extent.
		{"left wall", physics.FlagHitLeftWall, 0xb000 + 0x800, 5},
		// Pushed off the left face of tile 7 (0xd000) by the right extent.
		{"right wall", physics.FlagHitRightWall, 0xd000 - 0x800, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := breakableLevel(tt.block, 4)
			body := &components.BodyData{
				X:     tt.x,
				Y:     0x8000,
				Hit:   fixed.NewRect[uint32](0x100, 0x400, 0x800, 0x400),
				Flags: tt.flag,
			}

			breakBlocks(e, level, body)

			assert.Equal(t, uint8(0), level.Attributes.Tile(tt.block, 4))
			assert.Equal(t, 1, level.BlocksBroken)
			assert.True(t, body.Flags.WeaponHitBlock())
		})
	}
}

func TestBreakBlocksIgnoresSolidTiles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := breakableLevel(5, 4)
	level.Attributes.Attrib[tileBreakable] = physics.AttrSolid

	body := &components.BodyData{
		X:     0xb000 + 0x400,
		Y:     0x8000,
		Hit:   fixed.NewRect[uint32](0x400, 0x400, 0x400, 0x400),
		Flags: physics.FlagHitLeftWall,
	}
	breakBlocks(e, level, body)

	assert.Equal(t, tileBreakable, level.Attributes.Tile(5, 4))
	assert.Zero(t, level.BlocksBroken)
	assert.False(t, body.Flags.WeaponHitBlock())
}
