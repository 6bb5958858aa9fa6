package systems

import (
	"fmt"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var playerQuery = donburi.NewQuery(filter.Contains(components.Player, components.Animation))

// UpdatePlayer drives the player from the Input singleton. Must run after
// UpdateInput.
func UpdatePlayer(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	space := spaceOf(e.World)
	sim := simOf(e.World)

	playerQuery.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry).Animator
		if anim == nil {
			return
		}
		h, ok := handleOf(e.World, entry.Entity())
		if !ok {
			return
		}
		player := components.Player.Get(entry)
		play := func(kind cfg.AnimationKind, end cfg.EndBehavior) {
			id := cfg.AnimationID{Kind: kind, Facing: player.Facing}
			if err := anim.Play(id, end, 1); err != nil {
				panic(fmt.Errorf("player %v: %w", entry.Entity(), err))
			}
		}

		switch s := player.State.(type) {
		case components.PlayerMoving:
			if input.JustPressed(cfg.ActionAttack) {
				id := sim.NextAttackID()
				player.State = components.PlayerAttacking{Attack: id}
				space.World.SetVelocity(h, dmath.Vec2{})
				play(cfg.AnimAttack, cfg.EndStay)

				owner, dir := entry.Entity(), player.Facing
				Defer(e, func(e *ecs.ECS) {
					if e.World.Valid(owner) {
						factory.CreatePlayerHitbox(e, owner, dir, id)
					}
				})
				PlaySound(e.World, cfg.SoundSwing)
				return
			}

			axes := dmath.Vec2{X: input.AxisX, Y: input.AxisY}
			if axes.X != 0 || axes.Y != 0 {
				player.Facing = gamemath.LongSeek(axes)
				play(cfg.AnimWalk, cfg.EndLoop)
			} else {
				play(cfg.AnimIdle, cfg.EndLoop)
			}
			space.World.SetVelocity(h, axes.MulScalar(player.WalkSpeed))

		case components.PlayerAttacking:
			if !anim.Active(cfg.AnimAttack) || anim.Finished() {
				removeHitboxes(e, entry.Entity())
				player.State = components.PlayerMoving{}
			}

		case components.PlayerHit:
			removeHitboxes(e, entry.Entity())
			if s.Timer < sim.Delta {
				player.State = components.PlayerMoving{}
				return
			}
			player.State = components.PlayerHit{Timer: s.Timer - sim.Delta}
			play(cfg.AnimStaggered, cfg.EndStay)
		}
	})
}
