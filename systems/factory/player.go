package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerScanLimit is the largest hit extent that still fits a 2x2 scan.
const playerScanLimit = 0x1000

func CreatePlayer(ecs *ecs.ECS, x, y int32) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	hit := cfg.Player.HitBounds
	body := components.BodyData{
		X:           x,
		Y:           y,
		Hit:         hit,
		Display:     cfg.Player.DisplayBounds,
		Direction:   physics.DirectionRight,
		HitRectSize: PlayerHitRectSize(hit),
	}
	body.Cond.SetAlive(true)
	components.Body.SetValue(player, body)
	components.Player.SetValue(player, components.PlayerData{})

	return player
}

// PlayerHitRectSize picks the scan size for a player hit box: 4 when any
// extent is wider than a half tile, else 2.
func PlayerHitRectSize(hit fixed.Rect[uint32]) int {
	if hit.Left > playerScanLimit || hit.Top > playerScanLimit ||
		hit.Right > playerScanLimit || hit.Bottom > playerScanLimit {
		return 4
	}
	return 2
}
