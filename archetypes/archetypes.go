package archetypes

import (
	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Body,
	)
	NPC = newArchetype(
		tags.NPC,
		components.NPC,
		components.Body,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Body,
	)
	Caret = newArchetype(
		tags.Caret,
		components.Caret,
	)
	Level = newArchetype(
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
