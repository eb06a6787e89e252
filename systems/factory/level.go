package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton. The attribute map is copied so
// breaking blocks never touches the loaded level.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	attrs := data.Attributes.Clone()
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: data,
		Attributes:   attrs,
		Collision: &physics.State{
			Map:        attrs,
			TileSize:   data.TileSize,
			WaterLevel: data.WaterLevel,
			Effects:    NewEffects(ecs),
		},
	})

	return level
}
