package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BarData is one eased health bar. Width is the drawn width in pixels and
// eases toward Target.
type BarData struct {
	Width  float64
	Target float64
	Tween  *gween.Tween
}

// HUDData is what the UI host draws.
type HUDData struct {
	Health   BarData
	Pylon    BarData
	WaveText string
	BestText string
}

var HUD = donburi.NewComponentType[HUDData]()
