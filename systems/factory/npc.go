package factory

import (
	"log"

	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateNPC(ecs *ecs.ECS, spawn leveldata.NPCSpawn) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)

	dir, ok := physics.ParseDirection(spawn.Direction)
	if !ok {
		log.Printf("Warning: NPC at (%d, %d) has unknown direction %q, facing left",
			spawn.X, spawn.Y, spawn.Direction)
	}

	body := components.BodyData{
		X:           spawn.X,
		Y:           spawn.Y,
		Hit:         cfg.NPC.HitBounds,
		Display:     cfg.NPC.HitBounds,
		Direction:   dir,
		HitRectSize: 2,
		SolidTile44: !spawn.IgnoreTile44,
	}
	applyNPCSize(&body, spawn.Size, spawn.Boss)
	body.Cond.SetAlive(true)

	components.Body.SetValue(npc, body)
	components.NPC.SetValue(npc, components.NPCData{
		Size:      spawn.Size,
		Boss:      spawn.Boss,
		WalkSpeed: cfg.NPC.WalkSpeed,
	})

	return npc
}

// applyNPCSize widens the scan for large NPCs. Large non-boss NPCs also move
// their tile origin up and left so the 3x3 scan is centred on them.
func applyNPCSize(body *components.BodyData, size int, boss bool) {
	if size < cfg.NPC.LargeSize {
		return
	}
	if boss {
		body.HitRectSize = 4
		body.Hit = cfg.NPC.BossHitBounds
		body.Display = cfg.NPC.BossHitBounds
		return
	}
	body.HitRectSize = 3
	body.Hit = cfg.NPC.LargeHitBounds
	body.Display = cfg.NPC.LargeHitBounds
	body.OffsetX = cfg.NPC.LargeOffset
	body.OffsetY = cfg.NPC.LargeOffset
}
