package systems

import (
	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNPCs walks grounded NPCs in their facing direction and turns them
// around when they walked into a wall last tick.
func UpdateNPCs(ecs *ecs.ECS) {
	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		npc := components.NPC.Get(e)
		body := components.Body.Get(e)

		switch {
		case body.Direction == physics.DirectionLeft && body.Flags.HitLeftWall():
			body.Direction = physics.DirectionRight
		case body.Direction == physics.DirectionRight && body.Flags.HitRightWall():
			body.Direction = physics.DirectionLeft
		}

		if body.Flags.HitBottomWall() {
			switch body.Direction {
			case physics.DirectionLeft:
				body.VelX = -npc.WalkSpeed
			case physics.DirectionRight:
				body.VelX = npc.WalkSpeed
			default:
				body.VelX = 0
			}
		}

		applyForces(body)
	})
}
