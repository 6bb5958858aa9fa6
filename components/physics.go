package components

import (
	"sort"

	"github.com/automoto/goblin-siege/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PhysicsDescData is a body waiting to be spawned. The lifecycle pass creates
// it at the entity's Transform and replaces it with a PhysicsHandle.
type PhysicsDescData struct {
	Body     physics.BodyDesc
	Collider physics.ColliderDesc
}

type PhysicsHandleData struct {
	Handle physics.Handle
}

// AttachedSensorData is a sensor collider that rides on its Parent's body.
// Handle is valid once Attached is set.
type AttachedSensorData struct {
	Collider physics.ColliderDesc
	Attached bool
	Handle   physics.Handle
}

type ParentData struct {
	Entity donburi.Entity
}

// TransformData mirrors the body position after every physics step. Before
// the body exists it holds the spawn position.
type TransformData struct {
	Position dmath.Vec2
	Rotation float64
}

// OwnerTable maps physics handles back to the entities that own them.
type OwnerTable struct {
	bodies    map[physics.BodyHandle]donburi.Entity
	colliders map[physics.ColliderHandle]donburi.Entity
}

func NewOwnerTable() *OwnerTable {
	return &OwnerTable{
		bodies:    make(map[physics.BodyHandle]donburi.Entity),
		colliders: make(map[physics.ColliderHandle]donburi.Entity),
	}
}

func (t *OwnerTable) BindBody(b physics.BodyHandle, e donburi.Entity) {
	t.bodies[b] = e
}

func (t *OwnerTable) BindCollider(c physics.ColliderHandle, e donburi.Entity) {
	t.colliders[c] = e
}

func (t *OwnerTable) BodyOwner(b physics.BodyHandle) (donburi.Entity, bool) {
	e, ok := t.bodies[b]
	return e, ok
}

func (t *OwnerTable) ColliderOwner(c physics.ColliderHandle) (donburi.Entity, bool) {
	e, ok := t.colliders[c]
	return e, ok
}

func (t *OwnerTable) UnbindBody(b physics.BodyHandle) {
	delete(t.bodies, b)
}

func (t *OwnerTable) UnbindCollider(c physics.ColliderHandle) {
	delete(t.colliders, c)
}

// Bodies returns the bound body handles in ascending order.
func (t *OwnerTable) Bodies() []physics.BodyHandle {
	out := make([]physics.BodyHandle, 0, len(t.bodies))
	for b := range t.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Colliders returns the bound collider handles in ascending order.
func (t *OwnerTable) Colliders() []physics.ColliderHandle {
	out := make([]physics.ColliderHandle, 0, len(t.colliders))
	for c := range t.colliders {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SpaceData is the singleton holding the physics world and its owner table.
type SpaceData struct {
	World  *physics.World
	Owners *OwnerTable
}

var (
	PhysicsDesc    = donburi.NewComponentType[PhysicsDescData]()
	PhysicsHandle  = donburi.NewComponentType[PhysicsHandleData]()
	AttachedSensor = donburi.NewComponentType[AttachedSensorData]()
	Parent         = donburi.NewComponentType[ParentData]()
	Transform      = donburi.NewComponentType[TransformData]()
	Space          = donburi.NewComponentType[SpaceData]()
)
