package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/gamemath"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

// updateSinglePlayer turns input into velocity. Collision flags are the ones
// left by the previous tick's collision pass.
func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	input := components.PlayerInput.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	grounded := body.Flags.HitBottomWall()

	accel := cfg.Player.Acceleration
	if !grounded {
		accel = cfg.Player.AirAcceleration
	}
	maxWalk := cfg.Player.MaxWalkSpeed
	jumpSpeed := cfg.Player.JumpSpeed
	if body.Flags.InWater() {
		accel /= 2
		maxWalk = cfg.Player.WaterMaxWalkSpeed
		jumpSpeed = cfg.Player.WaterJumpSpeed
		player.WaterTicks++
	}
	if body.Flags.HitBySpike() {
		if !player.OnSpike {
			factory.QueueSFX(ecs, cfg.SoundSpike)
		}
		player.SpikeTicks++
	}
	player.OnSpike = body.Flags.HitBySpike()

	switch gamemath.AxisDirection(input.Pressed(cfg.ActionMoveLeft), input.Pressed(cfg.ActionMoveRight)) {
	case -1:
		body.VelX -= accel
		body.Direction = physics.DirectionLeft
	case 1:
		body.VelX += accel
		body.Direction = physics.DirectionRight
	default:
		if grounded {
			body.VelX = gamemath.ApplyFriction(body.VelX, cfg.Player.Friction)
		}
	}

	if input.JustPressed(cfg.ActionJump) && grounded {
		body.VelY = -jumpSpeed
		player.Jumps++
		factory.QueueSFX(ecs, cfg.SoundJump)
	}

	applyForces(body)
	body.VelX = gamemath.ClampSpeed(body.VelX, maxWalk)

	if player.ShootCooldown > 0 {
		player.ShootCooldown--
	}
	if input.JustPressed(cfg.ActionShoot) && player.ShootCooldown == 0 {
		factory.CreateBullet(ecs, body.X, body.Y, body.Direction)
		factory.QueueSFX(ecs, cfg.SoundShoot)
		player.ShootCooldown = cfg.Player.ShootCooldown
	}
}
