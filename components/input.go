package components

import (
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the current and previous frame's pressed state for
// all actions. JustPressed is computed on demand by comparing frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Advance shifts the current state into the previous frame and stores next.
func (p *PlayerInputData) Advance(next [cfg.ActionCount]bool) {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = next
}

func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.CurrentInput[a]
}

func (p *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return p.CurrentInput[a] && !p.PreviousInput[a]
}
