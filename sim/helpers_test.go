package sim

import (
	"testing"

	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/stretchr/testify/require"
)

const (
	tileSolid uint8 = iota + 1
	tileBreakable
)

// boxLevel is a 20x12 room of 16px tiles with a floor on row 10 and walls on
// columns 0 and 19. The spawn stands on the floor at tile (3, 9).
func boxLevel() *leveldata.CollisionData {
	m := leveldata.NewAttributeMap(20, 12)
	m.Attrib[tileSolid] = physics.AttrSolid
	m.Attrib[tileBreakable] = physics.AttrBreakable
	for x := int32(0); x < 20; x++ {
		m.SetTile(x, 0, tileSolid)
		m.SetTile(x, 10, tileSolid)
		m.SetTile(x, 11, tileSolid)
	}
	for y := int32(0); y < 12; y++ {
		m.SetTile(0, y, tileSolid)
		m.SetTile(19, y, tileSolid)
	}

	return &leveldata.CollisionData{
		Name:        "box",
		Attributes:  m,
		TileSize:    fixed.Tile16x16,
		SpawnPoints: []leveldata.SpawnPoint{{X: 0x6000, Y: 0x12000}},
		WaterLevel:  leveldata.NoWaterLevel,
	}
}

func newSim(t *testing.T, level *leveldata.CollisionData) *Simulation {
	t.Helper()
	s, err := New(level, Options{})
	require.NoError(t, err)
	return s
}

func runScript(t *testing.T, s *Simulation, script string) {
	t.Helper()
	frames, err := ParseInputScript(script)
	require.NoError(t, err)
	s.Run(frames)
}
