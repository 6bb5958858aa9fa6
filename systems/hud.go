package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/fonts"
	"github.com/automoto/goblin-siege/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 14

// UpdateHUD eases the health bars toward their entity's health and refreshes
// the wave counters. A destroyed entity drains its bar to zero.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	dt := simOf(e.World).Delta

	easeBar(&hud.Health, healthRatio(e.World, tags.Player)*cfg.UI.HealthBarWidth, dt)
	easeBar(&hud.Pylon, healthRatio(e.World, tags.Pylon)*cfg.UI.HealthBarWidth, dt)

	if entry.HasComponent(components.Wave) {
		wave := components.Wave.Get(entry)
		hud.WaveText = WaveText(wave)
		hud.BestText = fmt.Sprintf("Best wave: %d", wave.Best)
	}
}

// WaveText is the counter line shown under the bars.
func WaveText(wave *components.WaveData) string {
	if wave.Alive > 0 {
		return fmt.Sprintf("Goblins Left: %d", wave.Alive)
	}
	remaining := max(int(cfg.Wave.Threshold)-int(wave.IdleTime), 0)
	return fmt.Sprintf("Next wave in: %d", remaining)
}

func healthRatio(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) float64 {
	entry, ok := tag.First(w)
	if !ok || !entry.HasComponent(components.Health) {
		return 0
	}
	return components.Health.Get(entry).Ratio()
}

func easeBar(bar *components.BarData, target, dt float64) {
	if bar.Tween == nil && bar.Width == 0 && bar.Target == 0 {
		// First frame: snap instead of growing in from zero.
		bar.Width, bar.Target = target, target
		return
	}
	if target != bar.Target {
		bar.Target = target
		bar.Tween = gween.New(float32(bar.Width), float32(target), float32(cfg.UI.BarEaseSeconds), ease.OutQuad)
	}
	if bar.Tween == nil {
		return
	}
	current, finished := bar.Tween.Update(float32(dt))
	bar.Width = float64(current)
	if finished {
		bar.Width = bar.Target
		bar.Tween = nil
	}
}

// DrawHUD renders the player and pylon bars in the top-left corner with the
// wave counters beneath them.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	ui := cfg.UI

	y := ui.HealthBarMargin
	drawBar(screen, ui.HealthBarMargin, y, hud.Health.Width, ui.HealthBarFgColor)
	y += ui.HealthBarHeight + ui.HealthBarMargin/2
	drawBar(screen, ui.HealthBarMargin, y, hud.Pylon.Width, ui.PylonBarFgColor)
	y += ui.HealthBarHeight + hudLineHeight

	face := fonts.HUD.Get()
	text.Draw(screen, hud.WaveText, face, int(ui.HealthBarMargin), int(y), ui.HUDTextColor) //nolint:staticcheck
	y += hudLineHeight
	text.Draw(screen, hud.BestText, face, int(ui.HealthBarMargin), int(y), ui.HUDTextColor) //nolint:staticcheck
}

func drawBar(screen *ebiten.Image, x, y, width float64, fg color.Color) {
	ui := cfg.UI
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(ui.HealthBarWidth), float32(ui.HealthBarHeight),
		ui.HealthBarBgColor, false)
	if width <= 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(width), float32(ui.HealthBarHeight),
		fg, false)
}
