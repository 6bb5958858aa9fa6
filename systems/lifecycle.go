package systems

import (
	"fmt"

	"github.com/automoto/goblin-siege/components"
	"github.com/automoto/goblin-siege/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	pendingBodies = donburi.NewQuery(filter.And(
		filter.Contains(components.PhysicsDesc, components.Transform),
		filter.Not(filter.Contains(components.PhysicsHandle)),
	))
	sensorQuery = donburi.NewQuery(filter.Contains(components.AttachedSensor, components.Parent))
	childQuery  = donburi.NewQuery(filter.Contains(components.Parent))
)

// UpdateLifecycleSpawn backs new entities with physics objects. Bodies are
// spawned first so sensors parented to them can attach in the same pass.
func UpdateLifecycleSpawn(e *ecs.ECS) {
	space := spaceOf(e.World)
	spawnBodies(e.World, space)
	attachSensors(e.World, space)
}

func spawnBodies(w donburi.World, space *components.SpaceData) {
	var pending []*donburi.Entry
	pendingBodies.Each(w, func(entry *donburi.Entry) {
		pending = append(pending, entry)
	})

	for _, entry := range pending {
		desc := *components.PhysicsDesc.Get(entry)
		tf := components.Transform.Get(entry)
		desc.Body.Position = tf.Position
		desc.Body.Rotation = tf.Rotation

		h := space.World.Spawn(desc.Body, desc.Collider)
		space.Owners.BindBody(h.Body, entry.Entity())
		space.Owners.BindCollider(h.Collider, entry.Entity())

		donburi.Add(entry, components.PhysicsHandle, &components.PhysicsHandleData{Handle: h})
		donburi.Remove[components.PhysicsDescData](entry, components.PhysicsDesc)
	}
}

func attachSensors(w donburi.World, space *components.SpaceData) {
	var orphans []donburi.Entity
	sensorQuery.Each(w, func(entry *donburi.Entry) {
		sensor := components.AttachedSensor.Get(entry)
		if sensor.Attached {
			return
		}
		parent := components.Parent.Get(entry).Entity
		if !w.Valid(parent) {
			orphans = append(orphans, entry.Entity())
			return
		}
		parentEntry := w.Entry(parent)
		if !parentEntry.HasComponent(components.PhysicsHandle) {
			if parentEntry.HasComponent(components.PhysicsDesc) {
				// Parent spawns next pass.
				return
			}
			panic(fmt.Errorf("attach sensor %v to %v: %w", entry.Entity(), parent, physics.ErrUnknownBody))
		}

		ph := components.PhysicsHandle.Get(parentEntry).Handle
		ch, err := space.World.AddChildCollider(ph, sensor.Collider)
		if err != nil {
			panic(fmt.Errorf("attach sensor %v to %v: %w", entry.Entity(), parent, err))
		}
		space.Owners.BindCollider(ch, entry.Entity())
		sensor.Attached = true
		sensor.Handle = physics.Handle{Body: ph.Body, Collider: ch}
	})

	for _, orphan := range orphans {
		w.Remove(orphan)
	}
}

// UpdateLifecycleReconcile removes physics objects whose owner is gone.
// Children of dead parents go first so their sensors drop in the same pass.
func UpdateLifecycleReconcile(e *ecs.ECS) {
	w := e.World
	space := spaceOf(w)

	removeOrphanedChildren(w)

	for _, ch := range space.Owners.Colliders() {
		owner, _ := space.Owners.ColliderOwner(ch)
		if w.Valid(owner) {
			continue
		}
		space.World.RemoveCollider(ch)
		space.Owners.UnbindCollider(ch)
	}

	for _, bh := range space.Owners.Bodies() {
		owner, _ := space.Owners.BodyOwner(bh)
		if w.Valid(owner) {
			continue
		}
		for _, ch := range space.World.RemoveBody(bh) {
			space.Owners.UnbindCollider(ch)
		}
		space.Owners.UnbindBody(bh)
	}
}

// removeOrphanedChildren deletes every entity whose Parent is gone, repeating
// until no chain of parents is left dangling.
func removeOrphanedChildren(w donburi.World) {
	for {
		var orphans []donburi.Entity
		childQuery.Each(w, func(entry *donburi.Entry) {
			if !w.Valid(components.Parent.Get(entry).Entity) {
				orphans = append(orphans, entry.Entity())
			}
		})
		if len(orphans) == 0 {
			return
		}
		for _, orphan := range orphans {
			w.Remove(orphan)
		}
	}
}

// removeHitboxes queues deletion of every hitbox parented to entity.
func removeHitboxes(e *ecs.ECS, entity donburi.Entity) {
	childQuery.Each(e.World, func(entry *donburi.Entry) {
		if components.Parent.Get(entry).Entity != entity {
			return
		}
		if entry.HasComponent(components.AttackHitbox) {
			DeferRemove(e, entry.Entity())
		}
	})
}

// hitboxesOf lists the live hitboxes parented to entity.
func hitboxesOf(w donburi.World, entity donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	childQuery.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.AttackHitbox) && components.Parent.Get(entry).Entity == entity {
			out = append(out, entry.Entity())
		}
	})
	return out
}
