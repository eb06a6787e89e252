package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves every body against the tile grid once: players
// first, then NPCs, then bullets.
func UpdateCollisions(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil {
		return
	}
	st := level.Collision

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		physics.TickMapCollisions(st, &bodyEntity{
			body:   components.Body.Get(e),
			player: true,
			left:   input.Pressed(cfg.ActionMoveLeft),
			right:  input.Pressed(cfg.ActionMoveRight),
		})
	})

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		physics.TickMapCollisions(st, &bodyEntity{body: components.Body.Get(e)})
	})

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		physics.TickMapCollisions(st, &bodyEntity{body: components.Body.Get(e)})
	})
}

func currentLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// bodyEntity adapts a Body component to physics.PhysicalEntity.
type bodyEntity struct {
	body        *components.BodyData
	player      bool
	left, right bool
}

func (b *bodyEntity) X() int32                          { return b.body.X }
func (b *bodyEntity) Y() int32                          { return b.body.Y }
func (b *bodyEntity) VelX() int32                       { return b.body.VelX }
func (b *bodyEntity) VelY() int32                       { return b.body.VelY }
func (b *bodyEntity) SetX(x int32)                      { b.body.X = x }
func (b *bodyEntity) SetY(y int32)                      { b.body.Y = y }
func (b *bodyEntity) SetVelX(vx int32)                  { b.body.VelX = vx }
func (b *bodyEntity) SetVelY(vy int32)                  { b.body.VelY = vy }
func (b *bodyEntity) HitBounds() fixed.Rect[uint32]     { return b.body.Hit }
func (b *bodyEntity) DisplayBounds() fixed.Rect[uint32] { return b.body.Display }
func (b *bodyEntity) Flags() *physics.Flag              { return &b.body.Flags }
func (b *bodyEntity) Cond() *physics.Condition          { return &b.body.Cond }
func (b *bodyEntity) Direction() physics.Direction      { return b.body.Direction }
func (b *bodyEntity) IsPlayer() bool                    { return b.player }
func (b *bodyEntity) HitRectSize() int                  { return b.body.HitRectSize }

func (b *bodyEntity) IgnoreTile44() bool { return !b.body.SolidTile44 }
func (b *bodyEntity) LeftPressed() bool  { return b.left }
func (b *bodyEntity) RightPressed() bool { return b.right }
func (b *bodyEntity) OffsetX() int32     { return b.body.OffsetX }
func (b *bodyEntity) OffsetY() int32     { return b.body.OffsetY }
