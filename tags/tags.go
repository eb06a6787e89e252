package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	NPC    = donburi.NewTag().SetName("NPC")
	Bullet = donburi.NewTag().SetName("Bullet")
	Caret  = donburi.NewTag().SetName("Caret")
)
