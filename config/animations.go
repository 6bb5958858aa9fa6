package config

import "github.com/automoto/goblin-siege/shared/gamemath"

// AnimationKind is the clip family an entity is playing.
type AnimationKind int

const (
	AnimWalk AnimationKind = iota
	AnimAttack
	AnimIdle
	AnimStaggered
)

func (k AnimationKind) String() string {
	switch k {
	case AnimWalk:
		return "walk"
	case AnimAttack:
		return "attack"
	case AnimIdle:
		return "idle"
	case AnimStaggered:
		return "staggered"
	}
	return "unknown"
}

// AnimationID names a clip: a kind facing one of the four directions.
type AnimationID struct {
	Kind   AnimationKind
	Facing gamemath.Direction
}

// EndBehavior decides what a clip does after its last frame.
type EndBehavior int

const (
	EndLoop EndBehavior = iota
	EndStay
)

type AnimationDef struct {
	Frames       int
	FrameSeconds float64
}

// CharacterAnimations maps a character key to its clip definitions. Every
// kind is available in all four directions.
var CharacterAnimations = map[string]map[AnimationKind]AnimationDef{
	"player": {
		AnimWalk:      {Frames: 4, FrameSeconds: 0.12},
		AnimAttack:    {Frames: 4, FrameSeconds: 0.08},
		AnimIdle:      {Frames: 2, FrameSeconds: 0.5},
		AnimStaggered: {Frames: 2, FrameSeconds: 0.1},
	},
	"goblin": {
		AnimWalk:      {Frames: 4, FrameSeconds: 0.15},
		AnimAttack:    {Frames: 6, FrameSeconds: 0.1},
		AnimIdle:      {Frames: 2, FrameSeconds: 0.5},
		AnimStaggered: {Frames: 3, FrameSeconds: 0.1},
	},
}
