package components

import "github.com/yohamta/donburi"

// WaveData drives the spawner. IdleTime counts seconds with no goblins alive.
// Current is the last wave started, zero before the first one.
type WaveData struct {
	IdleTime float64
	Next     int
	Current  int
	Alive    int
	GameOver bool

	Best      int // best wave reached, including saved runs
	SavedBest int // best wave already written to disk
}

var Wave = donburi.NewComponentType[WaveData]()
