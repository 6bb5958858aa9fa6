package systems

import (
	"github.com/automoto/goblin-siege/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every entity's clip by one tick.
func UpdateAnimations(e *ecs.ECS) {
	dt := simOf(e.World).Delta
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if anim := components.Animation.Get(entry).Animator; anim != nil {
			anim.Update(dt)
		}
	})
}
