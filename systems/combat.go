package systems

import (
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var hitboxQuery = donburi.NewQuery(filter.Contains(components.AttackHitbox, components.AttachedSensor))

// UpdateCombat applies every attached hitbox to the health-bearing entities it
// overlaps. Each attack id lands on a given target at most once, however many
// ticks the overlap lasts. One swing may hit several targets.
func UpdateCombat(e *ecs.ECS) {
	w := e.World
	space := spaceOf(w)

	hitboxQuery.Each(w, func(entry *donburi.Entry) {
		sensor := components.AttachedSensor.Get(entry)
		if !sensor.Attached {
			return
		}
		attack := components.AttackHitbox.Get(entry)

		for _, target := range IntersectingEntities(w, sensor.Handle.Collider) {
			targetEntry := w.Entry(target)
			if !targetEntry.HasComponent(components.Health) {
				continue
			}
			health := components.Health.Get(targetEntry)
			if health.WasHitBy(attack.ID) {
				continue
			}
			if !attack.HitType.Opposes(health.Friendly) {
				continue
			}

			health.RecordHit(attack.ID)
			health.Damage(attack.Damage)
			knockBack(space, targetEntry, sensor.Handle)
			PlaySound(w, hitSound(targetEntry))
		}
	})
}

// knockBack pushes the target away from the hitbox along the dominant axis and
// staggers it. Targets without a body take damage only.
func knockBack(space *components.SpaceData, target *donburi.Entry, hitbox physics.Handle) {
	if !target.HasComponent(components.PhysicsHandle) {
		return
	}
	th := components.PhysicsHandle.Get(target).Handle
	offset, ok := space.World.Between(hitbox, th)
	if !ok {
		return
	}
	dir := gamemath.LongSeek(offset)
	space.World.SetVelocity(th, dir.Tilts().MulScalar(cfg.Combat.KnockbackSpeed))

	switch {
	case target.HasComponent(components.Goblin):
		goblin := components.Goblin.Get(target)
		goblin.State = components.GoblinHit{
			Waypoint: goblin.State.ReturnWaypoint(),
			Timer:    cfg.Combat.StaggerDuration,
		}
	case target.HasComponent(components.Player):
		player := components.Player.Get(target)
		player.State = components.PlayerHit{Timer: cfg.Combat.StaggerDuration}
	}
}

func hitSound(target *donburi.Entry) cfg.SoundID {
	switch {
	case target.HasComponent(tags.Player):
		return cfg.SoundPlayerHit
	case target.HasComponent(tags.Pylon):
		return cfg.SoundPylonHit
	default:
		return cfg.SoundGoblinHit
	}
}
