package systems

import (
	"fmt"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var goblinQuery = donburi.NewQuery(filter.Contains(components.Goblin, components.Animation))

// Chase targets in priority order.
var chaseTags = []*donburi.ComponentType[donburi.Tag]{tags.Pylon, tags.Player}

// goblinTick is one goblin's view of the world for a single update.
type goblinTick struct {
	ecs    *ecs.ECS
	space  *components.SpaceData
	sim    *components.SimData
	entity donburi.Entity
	handle physics.Handle
	goblin *components.GoblinData
	anim   components.Animator
}

// UpdateGoblins runs one state machine step for every goblin that has both a
// body and an animation controller. The rest are not ready and wait.
func UpdateGoblins(e *ecs.ECS) {
	space := spaceOf(e.World)
	sim := simOf(e.World)

	goblinQuery.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry).Animator
		if anim == nil {
			return
		}
		h, ok := handleOf(e.World, entry.Entity())
		if !ok {
			return
		}
		g := goblinTick{
			ecs:    e,
			space:  space,
			sim:    sim,
			entity: entry.Entity(),
			handle: h,
			goblin: components.Goblin.Get(entry),
			anim:   anim,
		}
		g.update()
	})
}

func (g *goblinTick) update() {
	switch s := g.goblin.State.(type) {
	case components.GoblinIdling:
		g.idle(s)
	case components.GoblinMoving:
		g.move(s)
	case components.GoblinChasing:
		g.chase(s)
	case components.GoblinAttacking:
		g.attack(s)
	case components.GoblinHit:
		g.stagger(s)
	}
}

func (g *goblinTick) idle(s components.GoblinIdling) {
	removeHitboxes(g.ecs, g.entity)

	if target, ok := g.chaseTarget(); ok && s.Timer < cfg.Goblin.ChaseIdleGate {
		g.goblin.State = components.GoblinChasing{Waypoint: s.Waypoint, Target: target}
		return
	}

	g.space.World.SetVelocity(g.handle, dmath.Vec2{})
	g.play(cfg.AnimIdle, cfg.EndLoop)

	dt := g.sim.Delta
	if s.Timer < dt {
		g.goblin.State = components.GoblinMoving{Waypoint: s.Waypoint}
		return
	}
	g.goblin.State = components.GoblinIdling{Waypoint: s.Waypoint, Timer: s.Timer - dt}
}

func (g *goblinTick) move(s components.GoblinMoving) {
	if target, ok := g.chaseTarget(); ok {
		g.goblin.State = components.GoblinChasing{Waypoint: s.Waypoint, Target: target}
		return
	}

	w := g.ecs.World
	if !w.Valid(s.Waypoint) || !w.Entry(s.Waypoint).HasComponent(components.Waypoint) {
		g.enterIdle(s.Waypoint, cfg.Goblin.ReturnIdle)
		return
	}

	g.walk(g.goblin.Facing)

	wh, ok := handleOf(w, s.Waypoint)
	if !ok {
		return
	}
	offset, ok := g.space.World.Between(g.handle, wh)
	if !ok {
		return
	}
	wp := components.Waypoint.Get(w.Entry(s.Waypoint))
	if gamemath.Within(offset, wp.Margin) && wp.HasNext {
		g.goblin.State = components.GoblinMoving{Waypoint: wp.Next}
		return
	}
	g.goblin.Facing = gamemath.ShortSeek(offset, cfg.Goblin.SeekMargin, g.goblin.Facing)
}

func (g *goblinTick) chase(s components.GoblinChasing) {
	th, ok := handleOf(g.ecs.World, s.Target)
	if !ok {
		g.enterIdle(s.Waypoint, cfg.Goblin.ReturnIdle)
		return
	}

	for _, dir := range gamemath.Cardinals {
		if g.sees(dir, s.Target) {
			g.startAttack(s.Waypoint, dir)
			return
		}
	}

	offset, ok := g.space.World.Between(g.handle, th)
	if !ok {
		g.enterIdle(s.Waypoint, cfg.Goblin.ReturnIdle)
		return
	}
	g.walk(gamemath.ShortSeek(offset, cfg.Goblin.SeekMargin, g.goblin.Facing))
}

func (g *goblinTick) attack(s components.GoblinAttacking) {
	if !g.anim.Active(cfg.AnimAttack) || g.anim.Finished() {
		g.enterIdle(s.Waypoint, cfg.Goblin.ReturnIdle)
		return
	}

	if s.Progress > cfg.Goblin.LungeCommit {
		g.space.World.SetVelocity(g.handle, g.goblin.Facing.Tilts().MulScalar(g.goblin.LungeSpeed))
	} else {
		g.space.World.SetVelocity(g.handle, dmath.Vec2{})
	}
	s.Progress += g.sim.Delta
	g.goblin.State = s
}

func (g *goblinTick) stagger(s components.GoblinHit) {
	removeHitboxes(g.ecs, g.entity)

	dt := g.sim.Delta
	if s.Timer < dt {
		g.enterIdle(s.Waypoint, cfg.Goblin.RecoverIdle)
		return
	}
	g.goblin.State = components.GoblinHit{Waypoint: s.Waypoint, Timer: s.Timer - dt}
	g.play(cfg.AnimStaggered, cfg.EndStay)
}

func (g *goblinTick) enterIdle(waypoint donburi.Entity, timer float64) {
	removeHitboxes(g.ecs, g.entity)
	g.goblin.State = components.GoblinIdling{Waypoint: waypoint, Timer: timer}
}

func (g *goblinTick) startAttack(waypoint donburi.Entity, dir gamemath.Direction) {
	id := g.sim.NextAttackID()
	g.goblin.Facing = dir
	g.goblin.State = components.GoblinAttacking{Waypoint: waypoint, Attack: id}
	g.space.World.SetVelocity(g.handle, dmath.Vec2{})
	g.play(cfg.AnimAttack, cfg.EndStay)

	owner := g.entity
	Defer(g.ecs, func(e *ecs.ECS) {
		if e.World.Valid(owner) {
			factory.CreateGoblinHitbox(e, owner, dir, id)
		}
	})
	PlaySound(g.ecs.World, cfg.SoundSwing)
}

func (g *goblinTick) walk(dir gamemath.Direction) {
	g.goblin.Facing = dir
	g.space.World.SetVelocity(g.handle, dir.Tilts().MulScalar(g.goblin.WalkSpeed))
	g.play(cfg.AnimWalk, cfg.EndLoop)
}

func (g *goblinTick) play(kind cfg.AnimationKind, end cfg.EndBehavior) {
	id := cfg.AnimationID{Kind: kind, Facing: g.goblin.Facing}
	if err := g.anim.Play(id, end, 1); err != nil {
		panic(fmt.Errorf("goblin %v: %w", g.entity, err))
	}
}

// chaseTarget returns the nearest pylon within chase distance, else the
// nearest player.
func (g *goblinTick) chaseTarget() (donburi.Entity, bool) {
	w := g.ecs.World
	for _, tag := range chaseTags {
		var (
			best     donburi.Entity
			bestDist float64
			found    bool
		)
		tag.Each(w, func(entry *donburi.Entry) {
			th, ok := handleOf(w, entry.Entity())
			if !ok {
				return
			}
			offset, ok := g.space.World.Between(g.handle, th)
			if !ok || !gamemath.Within(offset, g.goblin.ChaseDistance) {
				return
			}
			d := offset.Dot(&offset)
			if !found || d < bestDist {
				best, bestDist, found = entry.Entity(), d, true
			}
		})
		if found {
			return best, true
		}
	}
	return donburi.Null, false
}

// sees reports whether the first solid collider along dir, within attack
// distance, belongs to target.
func (g *goblinTick) sees(dir gamemath.Direction, target donburi.Entity) bool {
	for _, hit := range g.space.World.RayCast(g.handle, dir.Tilts(), g.goblin.AttackDistance) {
		if hit.Sensor {
			continue
		}
		owner, ok := g.space.Owners.ColliderOwner(hit.Collider)
		return ok && owner == target && hit.Distance < g.goblin.AttackDistance
	}
	return false
}
