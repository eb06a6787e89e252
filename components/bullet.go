package components

import "github.com/yohamta/donburi"

type BulletData struct {
	FramesRemaining int
	Speed           int32
}

var Bullet = donburi.NewComponentType[BulletData]()
