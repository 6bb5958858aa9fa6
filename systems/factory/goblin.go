package factory

import (
	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateGoblin places a goblin that idles before patrolling from waypoint.
// Numbers come from cfg.Goblin at creation time, so tuning reloads apply to
// the next wave.
func CreateGoblin(ecs *ecs.ECS, pos dmath.Vec2, waypoint donburi.Entity) *donburi.Entry {
	goblin := archetypes.Goblin.Spawn(ecs)

	components.Transform.SetValue(goblin, components.TransformData{Position: pos})
	components.PhysicsDesc.SetValue(goblin, components.PhysicsDescData{
		Body:     physics.BodyDesc{Status: physics.Dynamic, Mass: cfg.Goblin.Mass},
		Collider: physics.ColliderDesc{Shape: physics.Circle(cfg.Goblin.Radius)},
	})
	components.Goblin.SetValue(goblin, components.GoblinData{
		WalkSpeed:      cfg.Goblin.WalkSpeed,
		LungeSpeed:     cfg.Goblin.LungeSpeed,
		Facing:         gamemath.South,
		ChaseDistance:  cfg.Goblin.ChaseDistance,
		AttackDistance: cfg.Goblin.AttackDistance,
		State:          components.GoblinIdling{Waypoint: waypoint, Timer: cfg.Goblin.SpawnIdle},
	})
	components.Health.SetValue(goblin, components.NewHealth(false, cfg.Goblin.Health))
	components.Animation.SetValue(goblin, GenerateAnimations("goblin"))

	return goblin
}

// CreateGoblinHitbox spawns the sensor for one goblin swing, ahead of the
// goblin and shifted clockwise of its facing.
func CreateGoblinHitbox(ecs *ecs.ECS, goblin donburi.Entity, dir gamemath.Direction, id components.AttackID) *donburi.Entry {
	return createHitbox(ecs, goblin, dir, id, components.EnemyAttack, cfg.Goblin.Hitbox)
}

func createHitbox(ecs *ecs.ECS, owner donburi.Entity, dir gamemath.Direction, id components.AttackID, hitType components.HitType, hb cfg.HitboxConfig) *donburi.Entry {
	offset := dir.Tilts().MulScalar(hb.Forward).Add(dir.Clockwise().Tilts().MulScalar(hb.Side))

	hitbox := archetypes.Hitbox.Spawn(ecs)
	components.AttackHitbox.SetValue(hitbox, components.AttackHitboxData{
		ID:      id,
		HitType: hitType,
		Damage:  hb.Damage,
	})
	components.AttachedSensor.SetValue(hitbox, components.AttachedSensorData{
		Collider: physics.ColliderDesc{
			Shape:  physics.Box(hb.HalfWidth, hb.HalfHeight),
			Sensor: true,
			Offset: offset,
		},
	})
	components.Parent.SetValue(hitbox, components.ParentData{Entity: owner})
	return hitbox
}
