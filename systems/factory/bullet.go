package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a player projectile travelling horizontally in dir.
func CreateBullet(ecs *ecs.ECS, x, y int32, dir physics.Direction) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	velX := cfg.Bullet.Speed
	if dir == physics.DirectionLeft {
		velX = -velX
	}

	body := components.BodyData{
		X:           x,
		Y:           y,
		VelX:        velX,
		Hit:         cfg.Bullet.HitBounds,
		Display:     cfg.Bullet.HitBounds,
		Direction:   dir,
		HitRectSize: 2,
		SolidTile44: true,
	}
	body.Cond.SetAlive(true)

	components.Body.SetValue(b, body)
	components.Bullet.SetValue(b, components.BulletData{
		FramesRemaining: cfg.Bullet.Lifetime,
		Speed:           cfg.Bullet.Speed,
	})

	CreateCaret(ecs, x, y, cfg.CaretShoot, dir)

	return b
}
