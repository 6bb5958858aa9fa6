package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	dmath "github.com/yohamta/donburi/features/math"
)

func (w *World) body(bh BodyHandle) (*bodyEntry, bool) {
	be, ok := w.bodies[bh]
	return be, ok
}

func (w *World) Position(h Handle) (dmath.Vec2, bool) {
	be, ok := w.body(h.Body)
	if !ok {
		return dmath.Vec2{}, false
	}
	return fromCP(be.body.Position()), true
}

func (w *World) Rotation(h Handle) (float64, bool) {
	be, ok := w.body(h.Body)
	if !ok {
		return 0, false
	}
	return be.body.Angle(), true
}

func (w *World) Velocity(h Handle) (dmath.Vec2, bool) {
	be, ok := w.body(h.Body)
	if !ok {
		return dmath.Vec2{}, false
	}
	return fromCP(be.body.Velocity()), true
}

func (w *World) SetLocation(h Handle, x, y float64) {
	be, ok := w.body(h.Body)
	if !ok {
		return
	}
	be.body.SetPosition(cp.Vector{X: x, Y: y})
	if be.static {
		w.reindex(be)
	}
}

func (w *World) SetRotation(h Handle, radians float64) {
	be, ok := w.body(h.Body)
	if !ok {
		return
	}
	be.body.SetAngle(radians)
	if be.static {
		w.reindex(be)
	}
}

// reindex refreshes a static body's shapes in the spatial index. Static
// shapes are only rehashed when they enter the space.
func (w *World) reindex(be *bodyEntry) {
	for _, ch := range be.colliders {
		shape := w.colliders[ch].shape
		w.space.RemoveShape(shape)
		w.space.AddShape(shape)
	}
}

// SetVelocity is ignored for static bodies.
func (w *World) SetVelocity(h Handle, v dmath.Vec2) {
	be, ok := w.body(h.Body)
	if !ok || be.static {
		return
	}
	be.body.SetVelocity(v.X, v.Y)
}

func (w *World) ApplyImpulse(h Handle, impulse dmath.Vec2) {
	be, ok := w.body(h.Body)
	if !ok || be.static {
		return
	}
	be.body.ApplyImpulseAtLocalPoint(toCP(impulse), cp.Vector{})
}

// center is the world position of the handle's collider, or of its body when
// the collider offset is zero.
func (w *World) center(h Handle) (cp.Vector, bool) {
	c, ok := w.colliders[h.Collider]
	if !ok || c.body != h.Body {
		return cp.Vector{}, false
	}
	be, ok := w.body(c.body)
	if !ok {
		return cp.Vector{}, false
	}
	return be.body.LocalToWorld(c.offset), true
}

// Between returns the offset from a to b.
func (w *World) Between(a, b Handle) (dmath.Vec2, bool) {
	pa, ok := w.center(a)
	if !ok {
		return dmath.Vec2{}, false
	}
	pb, ok := w.center(b)
	if !ok {
		return dmath.Vec2{}, false
	}
	return dmath.Vec2{X: pb.X - pa.X, Y: pb.Y - pa.Y}, true
}

// Intersections lists the colliders overlapping a sensor as of the last
// Step. Colliders on the sensor's own body are never reported.
func (w *World) Intersections(sensor ColliderHandle) []ColliderHandle {
	hits := w.overlaps[sensor]
	out := make([]ColliderHandle, 0, len(hits))
	for _, ch := range hits {
		if _, ok := w.colliders[ch]; ok {
			out = append(out, ch)
		}
	}
	return out
}

// RayCast returns every collider crossed by a ray from the origin body's
// position, nearest first. The origin body's own colliders are skipped.
func (w *World) RayCast(origin Handle, dir dmath.Vec2, maxDistance float64) []RayHit {
	be, ok := w.body(origin.Body)
	if !ok {
		return nil
	}
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return nil
	}
	if maxDistance <= 0 {
		maxDistance = w.RayDistance
	}

	start := be.body.Position()
	end := cp.Vector{
		X: start.X + dir.X/length*maxDistance,
		Y: start.Y + dir.Y/length*maxDistance,
	}

	var hits []RayHit
	w.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL,
		func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
			ch, ok := w.byShape[shape]
			if !ok {
				return
			}
			c := w.colliders[ch]
			if c.body == origin.Body {
				return
			}
			hits = append(hits, RayHit{Collider: ch, Distance: alpha * maxDistance, Sensor: c.sensor})
		}, nil)

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].Collider < hits[j].Collider
	})
	return hits
}
