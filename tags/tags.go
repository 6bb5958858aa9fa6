package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Goblin   = donburi.NewTag().SetName("Goblin")
	Pylon    = donburi.NewTag().SetName("Pylon")
	Waypoint = donburi.NewTag().SetName("Waypoint")
	Fence    = donburi.NewTag().SetName("Fence")
	Spawner  = donburi.NewTag().SetName("Spawner")
	Hitbox   = donburi.NewTag().SetName("Hitbox")
)
