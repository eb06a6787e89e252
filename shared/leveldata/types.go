// Package leveldata turns TMX level files into the tile attribute grid and
// spawn data the collision engine runs against. It has no dependencies on
// donburi or the physics core; pure data only.
package leveldata

import (
	"math"

	"github.com/automoto/doomerang-physics/shared/fixed"
)

// NoWaterLevel is the water level of a map without a Water object. No entity
// can ever be below it.
const NoWaterLevel int32 = math.MaxInt32

// CollisionData holds everything collision-relevant parsed from a TMX file.
type CollisionData struct {
	Name        string
	Attributes  *AttributeMap
	TileSize    fixed.TileSize
	SpawnPoints []SpawnPoint
	NPCSpawns   []NPCSpawn
	WaterLevel  int32 // sub-pixels
	HasWater    bool
	MapWidth    int // pixels
	MapHeight   int // pixels
}

// SpawnPoint is a player spawn location in sub-pixels.
type SpawnPoint struct {
	X, Y  int32
	Index int
}

// NPCSpawn is an NPC placement in sub-pixels. Direction is the raw level-file
// value; an empty string means left.
type NPCSpawn struct {
	X, Y         int32
	Size         int
	Boss         bool
	IgnoreTile44 bool
	Direction    string
}

// AttributeMap is a grid of tile indices plus the 256-entry table that maps
// each index to its attribute byte.
type AttributeMap struct {
	Width, Height int32
	Tiles         []uint8
	Attrib        [256]uint8
}

// NewAttributeMap returns an empty width x height map.
func NewAttributeMap(width, height int32) *AttributeMap {
	return &AttributeMap{
		Width:  width,
		Height: height,
		Tiles:  make([]uint8, width*height),
	}
}

// Clone returns a deep copy of m.
func (m *AttributeMap) Clone() *AttributeMap {
	c := *m
	c.Tiles = append([]uint8(nil), m.Tiles...)
	return &c
}

// index returns the position of (x, y) in Tiles, or false when the point is
// outside the map or past the end of Tiles.
func (m *AttributeMap) index(x, y int32) (int, bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, false
	}
	i := int(y)*int(m.Width) + int(x)
	return i, i < len(m.Tiles)
}

// Attribute returns the attribute byte of tile (x, y). Outside the map it is
// 0; a tile index missing from Tiles reads as tile 0, i.e. Attrib[0].
func (m *AttributeMap) Attribute(x, y int32) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Attrib[m.Tile(x, y)]
}

// Tile returns the tile index at (x, y), or 0 outside the map.
func (m *AttributeMap) Tile(x, y int32) uint8 {
	i, ok := m.index(x, y)
	if !ok {
		return 0
	}
	return m.Tiles[i]
}

// SetTile places tile index tile at (x, y). Out-of-map writes are dropped.
func (m *AttributeMap) SetTile(x, y int32, tile uint8) {
	if i, ok := m.index(x, y); ok {
		m.Tiles[i] = tile
	}
}
