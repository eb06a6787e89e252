package physics

import (
	"testing"

	"github.com/automoto/doomerang-physics/shared/fixed"
)

type tilePos [2]int32

// testEntity is a bare PhysicalEntity with no optional capabilities.
type testEntity struct {
	x, y       int32
	velX, velY int32
	hit        fixed.Rect[uint32]
	display    fixed.Rect[uint32]
	flags      Flag
	cond       Condition
	dir        Direction
	player     bool
	size       int
}

func (e *testEntity) X() int32                          { return e.x }
func (e *testEntity) Y() int32                          { return e.y }
func (e *testEntity) VelX() int32                       { return e.velX }
func (e *testEntity) VelY() int32                       { return e.velY }
func (e *testEntity) SetX(x int32)                      { e.x = x }
func (e *testEntity) SetY(y int32)                      { e.y = y }
func (e *testEntity) SetVelX(vx int32)                  { e.velX = vx }
func (e *testEntity) SetVelY(vy int32)                  { e.velY = vy }
func (e *testEntity) HitBounds() fixed.Rect[uint32]     { return e.hit }
func (e *testEntity) DisplayBounds() fixed.Rect[uint32] { return e.display }
func (e *testEntity) Flags() *Flag                      { return &e.flags }
func (e *testEntity) Cond() *Condition                  { return &e.cond }
func (e *testEntity) Direction() Direction              { return e.dir }
func (e *testEntity) IsPlayer() bool                    { return e.player }
func (e *testEntity) HitRectSize() int                  { return e.size }

// controlledEntity adds held-direction input.
type controlledEntity struct {
	*testEntity
	left, right bool
}

func (e *controlledEntity) LeftPressed() bool  { return e.left }
func (e *controlledEntity) RightPressed() bool { return e.right }

// solidOn44Entity opts in to tile 0x44.
type solidOn44Entity struct {
	*testEntity
}

func (e *solidOn44Entity) IgnoreTile44() bool { return false }

// offsetEntity biases the tile origin.
type offsetEntity struct {
	*testEntity
	ox, oy int32
}

func (e *offsetEntity) OffsetX() int32 { return e.ox }
func (e *offsetEntity) OffsetY() int32 { return e.oy }

func newPlayer(x, y int32) *testEntity {
	return &testEntity{
		x:       x,
		y:       y,
		hit:     fixed.NewRect[uint32](0xa00, 0x1000, 0xa00, 0x1000),
		display: fixed.NewRect[uint32](0x1000, 0x1000, 0x1000, 0x1000),
		dir:     DirectionRight,
		player:  true,
		size:    2,
	}
}

func newNPC(x, y int32) *testEntity {
	return &testEntity{
		x:       x,
		y:       y,
		hit:     fixed.NewRect[uint32](0xa00, 0x1000, 0xa00, 0x1000),
		display: fixed.NewRect[uint32](0x1000, 0x1000, 0x1000, 0x1000),
		dir:     DirectionLeft,
		size:    2,
	}
}

// gridMap is a sparse attribute map that records every lookup.
type gridMap struct {
	attrs   map[tilePos]uint8
	queries []tilePos
}

func newGridMap() *gridMap {
	return &gridMap{attrs: make(map[tilePos]uint8)}
}

func (m *gridMap) set(x, y int32, attrib uint8) *gridMap {
	m.attrs[tilePos{x, y}] = attrib
	return m
}

func (m *gridMap) Attribute(x, y int32) uint8 {
	m.queries = append(m.queries, tilePos{x, y})
	return m.attrs[tilePos{x, y}]
}

// strictMap fails the test on any lookup outside the allowed tiles.
type strictMap struct {
	*gridMap
	t       *testing.T
	allowed map[tilePos]bool
}

func (m *strictMap) Attribute(x, y int32) uint8 {
	if !m.allowed[tilePos{x, y}] {
		m.t.Errorf("unexpected attribute lookup at (%d, %d)", x, y)
	}
	return m.gridMap.Attribute(x, y)
}

type caretCall struct {
	x, y int32
	kind CaretKind
	dir  Direction
}

type recordingEffects struct {
	sounds []SoundID
	carets []caretCall
}

func (r *recordingEffects) PlaySFX(id SoundID) {
	r.sounds = append(r.sounds, id)
}

func (r *recordingEffects) CreateCaret(x, y int32, kind CaretKind, dir Direction) {
	r.carets = append(r.carets, caretCall{x, y, kind, dir})
}

func newState(m AttributeMap) (*State, *recordingEffects) {
	fx := &recordingEffects{}
	return &State{
		Map:        m,
		TileSize:   fixed.Tile16x16,
		WaterLevel: 0x7fffffff,
		Effects:    fx,
	}, fx
}
