package systems

import (
	"github.com/automoto/doomerang-physics/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCarets counts particle lifetimes down and removes expired ones.
func UpdateCarets(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Caret.Each(ecs.World, func(e *donburi.Entry) {
		caret := components.Caret.Get(e)
		if caret.FramesRemaining > 0 {
			caret.FramesRemaining--
		}
		if caret.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
