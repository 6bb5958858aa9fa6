package systems

import (
	"image/color"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	fenceColor  = color.RGBA{R: 110, G: 84, B: 52, A: 255}
	goblinColor = color.RGBA{R: 90, G: 170, B: 60, A: 255}
	flashColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawWorld draws every placed entity as a flat shape from its Transform.
// Characters are drawn last so they stay on top of structures.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Grass)
	v := newView(screen)
	blink := false
	if sim, ok := components.Sim.First(e.World); ok {
		blink = components.Sim.Get(sim).Tick%8 < 4
	}

	tags.Fence.Each(e.World, func(entry *donburi.Entry) {
		drawSquare(screen, v, entry, cfg.Fence.HalfExtent, fenceColor)
	})
	if cfg.Debug.DrawShapes {
		tags.Waypoint.Each(e.World, func(entry *donburi.Entry) {
			drawDisc(screen, v, entry, cfg.Waypoint.Radius, cfg.Yellow)
		})
	}
	tags.Pylon.Each(e.World, func(entry *donburi.Entry) {
		drawSquare(screen, v, entry, cfg.Pylon.HalfExtent, cfg.LightBlue)
	})
	tags.Goblin.Each(e.World, func(entry *donburi.Entry) {
		drawCharacter(screen, v, entry, cfg.Goblin.Radius, goblinColor, components.Goblin.Get(entry).Facing.Tilts(), blink)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawCharacter(screen, v, entry, cfg.Player.Radius, cfg.Yellow, components.Player.Get(entry).Facing.Tilts(), blink)
	})
}

func drawSquare(screen *ebiten.Image, v view, entry *donburi.Entry, half float64, c color.Color) {
	pos := components.Transform.Get(entry).Position
	x, y := v.project(pos.X-half, pos.Y+half)
	vector.DrawFilledRect(screen, x, y, float32(2*half), float32(2*half), c, false)
}

func drawDisc(screen *ebiten.Image, v view, entry *donburi.Entry, r float64, c color.Color) {
	pos := components.Transform.Get(entry).Position
	x, y := v.project(pos.X, pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(r), c, true)
}

// drawCharacter draws a disc with a facing tick. Staggered characters flash.
func drawCharacter(screen *ebiten.Image, v view, entry *donburi.Entry, r float64, c color.Color, facing dmath.Vec2, blink bool) {
	if anim := components.Animation.Get(entry).Animator; anim != nil && anim.Active(cfg.AnimStaggered) {
		if blink {
			c = flashColor
		}
	}
	drawDisc(screen, v, entry, r, c)

	pos := components.Transform.Get(entry).Position
	x0, y0 := v.project(pos.X, pos.Y)
	x1, y1 := v.project(pos.X+facing.X*r, pos.Y+facing.Y*r)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.DarkGrey, true)
}
