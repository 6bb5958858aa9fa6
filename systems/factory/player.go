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

func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.PhysicsDesc.SetValue(player, components.PhysicsDescData{
		Body:     physics.BodyDesc{Status: physics.Dynamic, Mass: cfg.Player.Mass},
		Collider: physics.ColliderDesc{Shape: physics.Circle(cfg.Player.Radius)},
	})
	components.Player.SetValue(player, components.PlayerData{
		WalkSpeed: cfg.Player.WalkSpeed,
		Facing:    gamemath.South,
		State:     components.PlayerMoving{},
	})
	components.Health.SetValue(player, components.NewHealth(true, cfg.Player.Health))
	components.Animation.SetValue(player, GenerateAnimations("player"))

	return player
}

// CreatePlayerHitbox spawns the sensor for one player swing in front of the
// player.
func CreatePlayerHitbox(ecs *ecs.ECS, player donburi.Entity, dir gamemath.Direction, id components.AttackID) *donburi.Entry {
	return createHitbox(ecs, player, dir, id, components.FriendlyAttack, cfg.Player.Hitbox)
}
