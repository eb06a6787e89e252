package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets expires bullets and removes the ones that hit a wall on the
// last collision pass. A bullet that hit a breakable block clears it.
func UpdateBullets(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry
	level := currentLevel(ecs)

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		body := components.Body.Get(e)

		if body.Flags.Any(physics.FlagAnyWall) {
			if level != nil {
				breakBlocks(ecs, level, body)
			}
			factory.CreateCaret(ecs, body.X, body.Y, cfg.CaretProjectileDissipation, body.Direction)
			toDestroy = append(toDestroy, e)
			return
		}

		bullet.FramesRemaining--
		if bullet.FramesRemaining <= 0 {
			factory.CreateCaret(ecs, body.X, body.Y, cfg.CaretProjectileDissipation, body.Direction)
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// breakBlocks clears every breakable tile just beyond the faces the bullet
// was pushed off and marks the body with FlagWeaponHitBlock when one broke.
func breakBlocks(ecs *ecs.ECS, level *components.LevelData, body *components.BodyData) {
	hit := body.Hit
	probes := []struct {
		hit  bool
		x, y int32
	}{
		// Block resolution pushes off both side faces by the right extent.
		{body.Flags.HitLeftWall(), body.X - int32(hit.Right) - 1, body.Y},
		{body.Flags.HitRightWall(), body.X + int32(hit.Right) + 1, body.Y},
		{body.Flags.HitTopWall(), body.X, body.Y - int32(hit.Top) - 1},
		{body.Flags.HitBottomWall(), body.X, body.Y + int32(hit.Bottom) + 1},
	}

	ts := level.Collision.TileSize
	for _, p := range probes {
		if !p.hit {
			continue
		}
		tx, ty := tileAt(ts.Unit(), p.x, p.y)
		if level.Attributes.Attribute(tx, ty) != physics.AttrBreakable {
			continue
		}
		level.Attributes.SetTile(tx, ty, 0)
		level.BlocksBroken++
		body.Flags.SetWeaponHitBlock()
		factory.QueueSFX(ecs, cfg.SoundBlockBreak)
		factory.CreateCaret(ecs, ts.TileCenter(tx), ts.TileCenter(ty), cfg.CaretLittleParticles, physics.DirectionLeft)
	}
}

// tileAt returns the tile containing point (x, y). Tile i spans
// [i*unit - unit/2, i*unit + unit/2).
func tileAt(unit, x, y int32) (int32, int32) {
	half := unit / 2
	return floorDiv(x+half, unit), floorDiv(y+half, unit)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
