package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and integrates every body. Bullets fly
// straight.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)

		if !e.HasComponent(components.Bullet) {
			gravity, maxFall := cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed
			if e.HasComponent(components.NPC) {
				gravity, maxFall = cfg.NPC.Gravity, cfg.NPC.MaxFallSpeed
			}
			if body.Flags.InWater() {
				gravity = cfg.Physics.WaterGravity
				maxFall = min(maxFall, cfg.Physics.WaterMaxFallSpeed)
			}

			body.VelY += gravity
			if body.VelY > maxFall {
				body.VelY = maxFall
			} else if body.VelY < cfg.Physics.MaxRiseSpeed {
				body.VelY = cfg.Physics.MaxRiseSpeed
			}
		}

		body.X += body.VelX
		body.Y += body.VelY
	})
}

// applyForces pushes a body along every conveyor it touched last tick.
func applyForces(body *components.BodyData) {
	speed := cfg.Physics.ForceSpeed
	if body.Flags.ForceLeft() {
		body.VelX -= speed
	}
	if body.Flags.ForceRight() {
		body.VelX += speed
	}
	if body.Flags.ForceUp() {
		body.VelY -= speed
	}
	if body.Flags.ForceDown() {
		body.VelY += speed
	}
}
