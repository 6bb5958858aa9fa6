package systems

import (
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spaceOf(w donburi.World) *components.SpaceData {
	return components.Space.Get(components.Space.MustFirst(w))
}

func simOf(w donburi.World) *components.SimData {
	return components.Sim.Get(components.Sim.MustFirst(w))
}

// PlaySound queues a sound effect for the audio drain.
func PlaySound(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// UpdateClock advances the tick counter. Delta stays at one fixed step.
func UpdateClock(e *ecs.ECS) {
	sim := simOf(e.World)
	sim.Tick++
}

// handleOf returns the physics handle of a live, spawned entity.
func handleOf(w donburi.World, entity donburi.Entity) (physics.Handle, bool) {
	if !w.Valid(entity) {
		return physics.Handle{}, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.PhysicsHandle) {
		return physics.Handle{}, false
	}
	return components.PhysicsHandle.Get(entry).Handle, true
}

// IntersectingEntities maps the colliders overlapping a sensor to their live
// owners. An entity is listed once even if several of its colliders overlap.
func IntersectingEntities(w donburi.World, sensor physics.ColliderHandle) []donburi.Entity {
	space := spaceOf(w)
	var out []donburi.Entity
	seen := make(map[donburi.Entity]struct{})
	for _, ch := range space.World.Intersections(sensor) {
		owner, ok := space.Owners.ColliderOwner(ch)
		if !ok || !w.Valid(owner) {
			continue
		}
		if _, dup := seen[owner]; dup {
			continue
		}
		seen[owner] = struct{}{}
		out = append(out, owner)
	}
	return out
}
