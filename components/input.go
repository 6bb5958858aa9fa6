package components

import (
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the movement axes. JustPressed is computed on demand by
// comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	AxisX    float64 // -1 left, +1 right
	AxisY    float64 // -1 down, +1 up
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Advance rolls the current frame into the previous one.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
