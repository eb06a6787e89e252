package components

import "github.com/yohamta/donburi"

type NPCData struct {
	Size      int // size class from the level file
	Boss      bool
	WalkSpeed int32
}

var NPC = donburi.NewComponentType[NPCData]()
