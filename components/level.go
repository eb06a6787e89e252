package components

import (
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.CollisionData
	Attributes   *leveldata.AttributeMap // private copy; bullets can break blocks
	Collision    *physics.State
	BlocksBroken int
}

var Level = donburi.NewComponentType[LevelData]()
