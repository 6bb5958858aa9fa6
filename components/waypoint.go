package components

import "github.com/yohamta/donburi"

// WaypointData is a node of a patrol chain. Rank is the N of the WaypointN
// marker it was placed from; chains run from high rank to low.
type WaypointData struct {
	Next    donburi.Entity
	HasNext bool
	Margin  float64
	Rank    int
}

var Waypoint = donburi.NewComponentType[WaypointData]()

// SpawnerData marks where a wave drops a goblin and the waypoint it patrols
// from.
type SpawnerData struct {
	Waypoint donburi.Entity
}

var Spawner = donburi.NewComponentType[SpawnerData]()
