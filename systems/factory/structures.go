package factory

import (
	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePylon places the structure the goblins are after. Only enemy attacks
// damage it.
func CreatePylon(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	pylon := archetypes.Pylon.Spawn(ecs)
	half := cfg.Pylon.HalfExtent
	components.Transform.SetValue(pylon, components.TransformData{Position: pos})
	components.PhysicsDesc.SetValue(pylon, components.PhysicsDescData{
		Body:     physics.BodyDesc{Status: physics.Static},
		Collider: physics.ColliderDesc{Shape: physics.Box(half, half)},
	})
	components.Health.SetValue(pylon, components.NewHealth(true, cfg.Pylon.Health))
	return pylon
}

func CreateFence(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	fence := archetypes.Fence.Spawn(ecs)
	half := cfg.Fence.HalfExtent
	components.Transform.SetValue(fence, components.TransformData{Position: pos})
	components.PhysicsDesc.SetValue(fence, components.PhysicsDescData{
		Body:     physics.BodyDesc{Status: physics.Static},
		Collider: physics.ColliderDesc{Shape: physics.Box(half, half)},
	})
	return fence
}

// CreateWaypoint places an unlinked patrol node of the given rank.
func CreateWaypoint(ecs *ecs.ECS, pos dmath.Vec2, rank int) *donburi.Entry {
	wp := archetypes.Waypoint.Spawn(ecs)
	components.Transform.SetValue(wp, components.TransformData{Position: pos})
	components.PhysicsDesc.SetValue(wp, components.PhysicsDescData{
		Body:     physics.BodyDesc{Status: physics.Static},
		Collider: physics.ColliderDesc{Shape: physics.Circle(cfg.Waypoint.Radius), Sensor: true},
	})
	components.Waypoint.SetValue(wp, components.WaypointData{
		Margin: cfg.Waypoint.Margin,
		Rank:   rank,
	})
	return wp
}

// LinkWaypoint points from at next.
func LinkWaypoint(from *donburi.Entry, next donburi.Entity) {
	wp := components.Waypoint.Get(from)
	wp.Next = next
	wp.HasNext = true
}

func CreateSpawner(ecs *ecs.ECS, pos dmath.Vec2, waypoint donburi.Entity) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Transform.SetValue(spawner, components.TransformData{Position: pos})
	components.Spawner.SetValue(spawner, components.SpawnerData{Waypoint: waypoint})
	return spawner
}
