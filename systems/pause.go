package systems

import (
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause flag.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	wave, ok := components.Wave.First(e.World)
	if ok && components.Wave.Get(wave).GameOver {
		return
	}
	if components.Input.Get(input).JustPressed(cfg.ActionPause) {
		sim := simOf(e.World)
		sim.Paused = !sim.Paused
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if simOf(e.World).Paused {
			return
		}
		system(e)
	}
}

// DrawPause dims the screen while the clock is stopped.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Sim.First(e.World)
	if !ok || !components.Sim.Get(entry).Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	label := cfg.Pause.Label
	text.Draw(screen, label, fonts.Title.Get(), centered(width, label), int(height/2), cfg.Pause.TextColor)
}
