package archetypes

import (
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.PhysicsDesc,
		components.Health,
		components.Animation,
	)
	Goblin = newArchetype(
		tags.Goblin,
		components.Goblin,
		components.Transform,
		components.PhysicsDesc,
		components.Health,
		components.Animation,
	)
	Pylon = newArchetype(
		tags.Pylon,
		components.Transform,
		components.PhysicsDesc,
		components.Health,
	)
	Waypoint = newArchetype(
		tags.Waypoint,
		components.Waypoint,
		components.Transform,
		components.PhysicsDesc,
	)
	Fence = newArchetype(
		tags.Fence,
		components.Transform,
		components.PhysicsDesc,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Transform,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.AttackHitbox,
		components.AttachedSensor,
		components.Parent,
	)

	// Singletons
	Space = newArchetype(
		components.Space,
	)
	Sim = newArchetype(
		components.Sim,
		components.CommandQueue,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Wave = newArchetype(
		components.Wave,
		components.HUD,
	)
	Level = newArchetype(
		components.Level,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
