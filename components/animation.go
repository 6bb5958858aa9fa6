package components

import (
	"github.com/automoto/goblin-siege/config"
	"github.com/yohamta/donburi"
)

// Animator is the per-entity clip controller. Play makes id the active clip,
// restarting it only when it differs from the current one.
type Animator interface {
	Play(id config.AnimationID, end config.EndBehavior, rate float64) error
	Active(kind config.AnimationKind) bool
	Finished() bool
	Current() config.AnimationID
	Update(dt float64)
}

// AnimationData holds the entity's controller. A nil Animator means the
// entity is not ready and AI systems skip it.
type AnimationData struct {
	Animator Animator
}

var Animation = donburi.NewComponentType[AnimationData]()
