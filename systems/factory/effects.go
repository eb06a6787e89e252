package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCaret spawns a particle at (x, y) that lives for its kind's lifetime.
func CreateCaret(ecs *ecs.ECS, x, y int32, kind cfg.CaretKind, dir physics.Direction) *donburi.Entry {
	c := archetypes.Caret.Spawn(ecs)

	frames, ok := cfg.Caret.Lifetimes[kind]
	if !ok {
		frames = cfg.Caret.DefaultLifetime
	}

	components.Caret.SetValue(c, components.CaretData{
		X:               x,
		Y:               y,
		Kind:            kind,
		Direction:       dir,
		FramesRemaining: frames,
	})

	return c
}

// CreateAudio spawns the audio singleton.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	a := archetypes.Audio.Spawn(ecs)
	components.Audio.Set(a, &components.AudioData{
		Played: make(map[cfg.SoundID]int),
	})
	return a
}

// QueueSFX adds a sound to the audio singleton's pending queue. It is a no-op
// when no audio entity exists.
func QueueSFX(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// worldEffects routes collision sounds and particles into the ECS world.
type worldEffects struct {
	ecs *ecs.ECS
}

// NewEffects returns a physics.Effects that queues sounds on the audio
// singleton and spawns caret entities.
func NewEffects(ecs *ecs.ECS) physics.Effects {
	return &worldEffects{ecs: ecs}
}

func (w *worldEffects) PlaySFX(id physics.SoundID) {
	QueueSFX(w.ecs, id)
}

func (w *worldEffects) CreateCaret(x, y int32, kind physics.CaretKind, dir physics.Direction) {
	CreateCaret(w.ecs, x, y, kind, dir)
}
