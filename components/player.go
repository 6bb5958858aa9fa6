package components

import (
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerState is one of PlayerMoving, PlayerAttacking or PlayerHit.
type PlayerState interface {
	playerState()
}

type PlayerMoving struct{}

type PlayerAttacking struct {
	Attack AttackID
}

type PlayerHit struct {
	Timer float64
}

func (PlayerMoving) playerState()    {}
func (PlayerAttacking) playerState() {}
func (PlayerHit) playerState()       {}

type PlayerData struct {
	WalkSpeed float64
	Facing    gamemath.Direction
	State     PlayerState
}

var Player = donburi.NewComponentType[PlayerData]()
