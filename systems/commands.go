package systems

import (
	"log"

	"github.com/automoto/goblin-siege/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxCommandRounds bounds how many times ApplyCommands drains a queue that
// keeps refilling itself.
const maxCommandRounds = 16

// Defer queues a structural change for the next barrier.
func Defer(e *ecs.ECS, cmd components.Command) {
	q := components.CommandQueue.Get(components.CommandQueue.MustFirst(e.World))
	q.Pending = append(q.Pending, cmd)
}

// DeferRemove queues removal of an entity. Entities already gone are ignored
// when the command runs.
func DeferRemove(e *ecs.ECS, entity donburi.Entity) {
	Defer(e, func(e *ecs.ECS) {
		if e.World.Valid(entity) {
			e.World.Remove(entity)
		}
	})
}

// ApplyCommands runs every queued command in order. Commands queued while
// draining run in the same barrier.
func ApplyCommands(e *ecs.ECS) {
	entry, ok := components.CommandQueue.First(e.World)
	if !ok {
		return
	}
	for round := 0; round < maxCommandRounds; round++ {
		q := components.CommandQueue.Get(entry)
		if len(q.Pending) == 0 {
			return
		}
		batch := q.Pending
		q.Pending = nil
		for _, cmd := range batch {
			cmd(e)
		}
	}
	log.Printf("Warning: command queue still refilling after %d rounds", maxCommandRounds)
}
