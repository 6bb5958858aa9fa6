package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the fixed tick order after input polling.
// Structural changes queued by a system land at the next ApplyCommands, so
// removals from death are visible to the reconcile pass of the same tick.
// Everything stops while paused.
func AddGameplaySystems(e *ecs.ECS) {
	for _, s := range gameplaySystems {
		e.AddSystem(WithPauseCheck(s))
	}
}

var gameplaySystems = []ecs.System{
	UpdateClock,
	UpdateLifecycleSpawn,
	UpdatePhysics,
	UpdateCombat,
	UpdateGoblins,
	UpdatePlayer,
	UpdateWaves,
	ApplyCommands,
	UpdateDeath,
	ApplyCommands,
	UpdateLifecycleReconcile,
	UpdateAnimations,
	UpdateAudio,
	UpdateHUD,
	UpdatePersistence,
}
