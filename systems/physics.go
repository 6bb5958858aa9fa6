package systems

import (
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.PhysicsHandle, components.Transform))

// UpdatePhysics steps the space once, mirrors body positions into
// Transforms and plays a bounce for each new contact involving a character.
func UpdatePhysics(e *ecs.ECS) {
	space := spaceOf(e.World)
	space.World.Step(simOf(e.World).Delta)

	bodyQuery.Each(e.World, func(entry *donburi.Entry) {
		h := components.PhysicsHandle.Get(entry).Handle
		pos, ok := space.World.Position(h)
		if !ok {
			return
		}
		rot, _ := space.World.Rotation(h)
		tf := components.Transform.Get(entry)
		tf.Position = pos
		tf.Rotation = rot
	})

	for _, c := range space.World.Contacts() {
		if isCharacter(e.World, space, c.A) || isCharacter(e.World, space, c.B) {
			PlaySound(e.World, cfg.SoundBounce)
		}
	}
}

func isCharacter(w donburi.World, space *components.SpaceData, collider physics.ColliderHandle) bool {
	owner, ok := space.Owners.ColliderOwner(collider)
	if !ok || !w.Valid(owner) {
		return false
	}
	entry := w.Entry(owner)
	return entry.HasComponent(tags.Goblin) || entry.HasComponent(tags.Player)
}
