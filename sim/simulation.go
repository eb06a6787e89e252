// Package sim runs a level through the ECS systems one fixed tick at a time
// and exposes the state needed to compare runs.
package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/doomerang-physics/components"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/automoto/doomerang-physics/systems"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoLevel = errors.New("no level")
	ErrNoSpawn = errors.New("level has no player spawn")
)

// Options tunes a Simulation.
type Options struct {
	// Spawn is the spawnIndex of the player spawn to use. When no spawn has
	// that index the leftmost spawn is used.
	Spawn int
}

// Simulation owns one ECS world playing one level.
type Simulation struct {
	ecs    *ecs.ECS
	level  *leveldata.CollisionData
	player *donburi.Entry
	tick   uint64
}

// New builds the world for level: audio and level singletons, the player at
// the chosen spawn and one NPC per NPC spawn.
func New(level *leveldata.CollisionData, opts Options) (*Simulation, error) {
	if level == nil || level.Attributes == nil {
		return nil, ErrNoLevel
	}
	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: %w", level.Name, ErrNoSpawn)
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdatePlayer).
		AddSystem(systems.UpdateNPCs).
		AddSystem(systems.UpdateBullets).
		AddSystem(systems.UpdatePhysics).
		AddSystem(systems.UpdateCollisions).
		AddSystem(systems.UpdateCarets).
		AddSystem(systems.UpdateAudio)

	factory.CreateAudio(e)
	factory.CreateLevel(e, level)

	spawn := pickSpawn(level.SpawnPoints, opts.Spawn)
	player := factory.CreatePlayer(e, spawn.X, spawn.Y)
	for _, n := range level.NPCSpawns {
		factory.CreateNPC(e, n)
	}

	log.Printf("Simulation ready: level %s, %d NPC(s), spawn at (%d, %d)",
		level.Name, len(level.NPCSpawns), spawn.X, spawn.Y)

	return &Simulation{
		ecs:    e,
		level:  level,
		player: player,
	}, nil
}

func pickSpawn(spawns []leveldata.SpawnPoint, index int) leveldata.SpawnPoint {
	for _, s := range spawns {
		if s.Index == index {
			return s
		}
	}
	return spawns[0]
}

// Step feeds one frame of input and advances one tick.
func (s *Simulation) Step(in InputFrame) {
	components.PlayerInput.Get(s.player).Advance(in.Actions())
	s.ecs.Update()
	s.tick++
}

// Run steps once per frame.
func (s *Simulation) Run(frames []InputFrame) {
	for _, f := range frames {
		s.Step(f)
	}
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Level returns the level the simulation was built from.
func (s *Simulation) Level() *leveldata.CollisionData {
	return s.level
}

// Attribute reads the live attribute map, including broken blocks.
func (s *Simulation) Attribute(x, y int32) uint8 {
	entry, ok := components.Level.First(s.ecs.World)
	if !ok {
		return 0
	}
	return components.Level.Get(entry).Attributes.Attribute(x, y)
}
