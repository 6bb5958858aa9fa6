// Package physics wraps a Chipmunk space with handle-based accessors.
//
// Handles are plain integers issued in increasing order and never reused, so
// a handle that outlives its body simply stops resolving. Query methods report
// stale handles through their ok result instead of panicking.
package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnknownBody is returned when a collider is attached to a body handle the
// world does not hold.
var ErrUnknownBody = errors.New("physics: unknown body")

const (
	collisionSolid cp.CollisionType = iota + 1
	collisionSensor
)

// DefaultRayDistance bounds ray casts that don't specify a length.
const DefaultRayDistance = 1000.0

type BodyStatus int

const (
	Dynamic BodyStatus = iota
	Static
)

type BodyHandle uint32
type ColliderHandle uint32

// Handle pairs a body with one of its colliders. For entities backed by their
// own body this is the primary collider; for attached sensors it is the
// parent's body and the sensor collider.
type Handle struct {
	Body     BodyHandle
	Collider ColliderHandle
}

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

type Shape struct {
	Kind       ShapeKind
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Box(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: ShapeBox, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

type BodyDesc struct {
	Status   BodyStatus
	Mass     float64
	Position dmath.Vec2
	Rotation float64
}

type ColliderDesc struct {
	Shape  Shape
	Sensor bool
	Offset dmath.Vec2
}

// RayHit is one collider crossed by a ray, Distance measured from the origin.
type RayHit struct {
	Collider ColliderHandle
	Distance float64
	Sensor   bool
}

// Contact is a pair of solid colliders that started touching during the last
// step. A is always the lower handle.
type Contact struct {
	A, B ColliderHandle
}

type bodyEntry struct {
	body      *cp.Body
	static    bool
	colliders []ColliderHandle
}

type colliderEntry struct {
	shape  *cp.Shape
	body   BodyHandle
	sensor bool
	offset cp.Vector
}

type World struct {
	space     *cp.Space
	bodies    map[BodyHandle]*bodyEntry
	colliders map[ColliderHandle]*colliderEntry
	byShape   map[*cp.Shape]ColliderHandle

	overlaps map[ColliderHandle][]ColliderHandle
	contacts []Contact

	lastBody     BodyHandle
	lastCollider ColliderHandle

	// RayDistance is used by RayCast when maxDistance <= 0.
	RayDistance float64
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	w := &World{
		space:       space,
		bodies:      make(map[BodyHandle]*bodyEntry),
		colliders:   make(map[ColliderHandle]*colliderEntry),
		byShape:     make(map[*cp.Shape]ColliderHandle),
		overlaps:    make(map[ColliderHandle][]ColliderHandle),
		RayDistance: DefaultRayDistance,
	}

	handler := space.NewCollisionHandler(collisionSolid, collisionSolid)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		a, b := arb.Shapes()
		ha, okA := w.byShape[a]
		hb, okB := w.byShape[b]
		if okA && okB {
			if hb < ha {
				ha, hb = hb, ha
			}
			w.contacts = append(w.contacts, Contact{A: ha, B: hb})
		}
		return true
	}

	return w
}

// Step integrates all dynamic bodies by dt, then rebuilds every sensor's
// overlap set.
func (w *World) Step(dt float64) {
	w.contacts = w.contacts[:0]
	w.space.Step(dt)
	w.refreshOverlaps()
}

func (w *World) refreshOverlaps() {
	clear(w.overlaps)
	for _, ch := range w.Colliders() {
		c := w.colliders[ch]
		if !c.sensor {
			continue
		}
		var hits []ColliderHandle
		w.space.ShapeQuery(c.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
			other, ok := w.byShape[shape]
			if !ok || other == ch {
				return
			}
			if w.colliders[other].body == c.body {
				return
			}
			hits = append(hits, other)
		})
		sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
		w.overlaps[ch] = hits
	}
}

// Spawn inserts a body with a single collider. The body starts at rest.
func (w *World) Spawn(bd BodyDesc, cd ColliderDesc) Handle {
	var body *cp.Body
	switch bd.Status {
	case Static:
		body = cp.NewStaticBody()
	default:
		mass := bd.Mass
		if mass <= 0 {
			mass = 1
		}
		// Top-down bodies never spin.
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(toCP(bd.Position))
	body.SetAngle(bd.Rotation)
	w.space.AddBody(body)

	w.lastBody++
	bh := w.lastBody
	w.bodies[bh] = &bodyEntry{body: body, static: bd.Status == Static}

	return Handle{Body: bh, Collider: w.addCollider(bh, cd)}
}

// AddChildCollider attaches a collider to an existing body.
func (w *World) AddChildCollider(parent Handle, cd ColliderDesc) (ColliderHandle, error) {
	if _, ok := w.bodies[parent.Body]; !ok {
		return 0, fmt.Errorf("attach collider to body %d: %w", parent.Body, ErrUnknownBody)
	}
	return w.addCollider(parent.Body, cd), nil
}

func (w *World) addCollider(bh BodyHandle, cd ColliderDesc) ColliderHandle {
	be := w.bodies[bh]
	offset := toCP(cd.Offset)

	var shape *cp.Shape
	switch cd.Shape.Kind {
	case ShapeBox:
		hw, hh := cd.Shape.HalfWidth, cd.Shape.HalfHeight
		shape = cp.NewBox2(be.body, cp.BB{L: offset.X - hw, B: offset.Y - hh, R: offset.X + hw, T: offset.Y + hh}, 0)
	default:
		shape = cp.NewCircle(be.body, cd.Shape.Radius, offset)
	}
	shape.SetSensor(cd.Sensor)
	if cd.Sensor {
		shape.SetCollisionType(collisionSensor)
	} else {
		shape.SetCollisionType(collisionSolid)
	}
	w.space.AddShape(shape)

	w.lastCollider++
	ch := w.lastCollider
	w.colliders[ch] = &colliderEntry{shape: shape, body: bh, sensor: cd.Sensor, offset: offset}
	w.byShape[shape] = ch
	be.colliders = append(be.colliders, ch)
	return ch
}

// RemoveBody removes a body together with every collider on it and returns
// the removed collider handles.
func (w *World) RemoveBody(bh BodyHandle) []ColliderHandle {
	be, ok := w.bodies[bh]
	if !ok {
		return nil
	}
	removed := append([]ColliderHandle(nil), be.colliders...)
	for _, ch := range removed {
		w.dropCollider(ch)
	}
	w.space.RemoveBody(be.body)
	delete(w.bodies, bh)
	return removed
}

func (w *World) RemoveCollider(ch ColliderHandle) {
	c, ok := w.colliders[ch]
	if !ok {
		return
	}
	if be, ok := w.bodies[c.body]; ok {
		for i, other := range be.colliders {
			if other == ch {
				be.colliders = append(be.colliders[:i], be.colliders[i+1:]...)
				break
			}
		}
	}
	w.dropCollider(ch)
}

func (w *World) dropCollider(ch ColliderHandle) {
	c, ok := w.colliders[ch]
	if !ok {
		return
	}
	w.space.RemoveShape(c.shape)
	delete(w.byShape, c.shape)
	delete(w.colliders, ch)
	delete(w.overlaps, ch)
}

func (w *World) HasBody(bh BodyHandle) bool {
	_, ok := w.bodies[bh]
	return ok
}

func (w *World) HasCollider(ch ColliderHandle) bool {
	_, ok := w.colliders[ch]
	return ok
}

// BodyOf returns the body a collider is fixed to.
func (w *World) BodyOf(ch ColliderHandle) (BodyHandle, bool) {
	c, ok := w.colliders[ch]
	if !ok {
		return 0, false
	}
	return c.body, true
}

func (w *World) IsSensor(ch ColliderHandle) bool {
	c, ok := w.colliders[ch]
	return ok && c.sensor
}

// Bodies returns all live body handles in ascending order.
func (w *World) Bodies() []BodyHandle {
	out := make([]BodyHandle, 0, len(w.bodies))
	for bh := range w.bodies {
		out = append(out, bh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Colliders returns all live collider handles in ascending order.
func (w *World) Colliders() []ColliderHandle {
	out := make([]ColliderHandle, 0, len(w.colliders))
	for ch := range w.colliders {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contacts returns the solid pairs that began touching during the last step.
func (w *World) Contacts() []Contact {
	return append([]Contact(nil), w.contacts...)
}

// DebugDraw renders the space through a Chipmunk drawer.
func (w *World) DebugDraw(d cp.Drawer) {
	cp.DrawSpace(w.space, d)
}

func toCP(v dmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Y}
}
