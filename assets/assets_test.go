package assets

import (
	"testing"

	"github.com/automoto/doomerang-physics/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCaveLevel(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("cave")
	require.NoError(t, err)

	assert.Equal(t, "cave", level.Name)
	assert.EqualValues(t, 16, level.TileSize)
	require.NotEmpty(t, level.SpawnPoints)
	assert.Len(t, level.NPCSpawns, 2)
	assert.True(t, level.HasWater)

	m := level.Attributes
	assert.Equal(t, physics.AttrSolid, m.Attribute(0, 0))
	assert.Equal(t, physics.AttrSolid, m.Attribute(5, 12))
	assert.Equal(t, physics.AttrBreakable, m.Attribute(22, 10))
	assert.Equal(t, physics.AttrWater, m.Attribute(31, 12))
	assert.Equal(t, physics.AttrSpike, m.Attribute(26, 11))
	assert.Equal(t, physics.AttrPlatform, m.Attribute(11, 8))
	assert.Equal(t, uint8(0), m.Attribute(3, 11))
}

func TestLoadLevels(t *testing.T) {
	levels, names, err := NewLevelLoader().LoadLevels()
	require.NoError(t, err)
	assert.Contains(t, names, "cave")
	assert.Contains(t, levels, "cave")
}

func TestMustLoadLevelPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { NewLevelLoader().MustLoadLevel("nowhere") })
}
