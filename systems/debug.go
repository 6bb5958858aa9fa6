package systems

import (
	"image/color"
	"math"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if components.Input.Get(entry).JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.DrawShapes = !cfg.Debug.DrawShapes
	}
}

// DrawDebug outlines every collider in the physics world.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawShapes {
		return
	}
	entry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(entry)
	space.World.DebugDraw(&shapeDrawer{screen: screen, view: newView(screen)})
}

// view maps y-up world coordinates centered on the origin to screen pixels.
type view struct {
	cx, cy float64
}

func newView(screen *ebiten.Image) view {
	b := screen.Bounds()
	return view{cx: float64(b.Dx()) / 2, cy: float64(b.Dy()) / 2}
}

func (v view) project(x, y float64) (float32, float32) {
	return float32(v.cx + x), float32(v.cy - y)
}

type shapeDrawer struct {
	screen *ebiten.Image
	view   view
}

func (d *shapeDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.view.project(a.X, a.Y)
	bx, by := d.view.project(b.X, b.Y)
	vector.StrokeLine(d.screen, ax, ay, bx, by, 1, c, false)
}

func (d *shapeDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := toRGBA(outline)
	const steps = 16
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / steps)
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *shapeDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, toRGBA(fill))
}

func (d *shapeDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, toRGBA(outline))
}

func (d *shapeDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := toRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *shapeDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	l := size / 2
	c := toRGBA(fill)
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *shapeDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *shapeDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 1}
}

func (d *shapeDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	switch {
	case shape.Sensor():
		return cp.FColor{R: 1, G: 0.85, B: 0.2, A: 1}
	case shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC:
		return cp.FColor{R: 0.4, G: 0.7, B: 1, A: 1}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1}
}

func (d *shapeDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1}
}

func (d *shapeDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.1, B: 0.1, A: 1}
}

func (d *shapeDrawer) Data() interface{} {
	return nil
}

func toRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
