package components

import (
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GoblinState is one of GoblinIdling, GoblinMoving, GoblinChasing,
// GoblinAttacking or GoblinHit.
type GoblinState interface {
	// ReturnWaypoint is the waypoint the goblin resumes patrolling from.
	ReturnWaypoint() donburi.Entity
	goblinState()
}

type GoblinIdling struct {
	Waypoint donburi.Entity
	Timer    float64
}

type GoblinMoving struct {
	Waypoint donburi.Entity
}

type GoblinChasing struct {
	Waypoint donburi.Entity
	Target   donburi.Entity
}

// GoblinAttacking tracks one swing. Progress counts seconds since the swing
// started.
type GoblinAttacking struct {
	Waypoint donburi.Entity
	Attack   AttackID
	Progress float64
}

type GoblinHit struct {
	Waypoint donburi.Entity
	Timer    float64
}

func (s GoblinIdling) ReturnWaypoint() donburi.Entity    { return s.Waypoint }
func (s GoblinMoving) ReturnWaypoint() donburi.Entity    { return s.Waypoint }
func (s GoblinChasing) ReturnWaypoint() donburi.Entity   { return s.Waypoint }
func (s GoblinAttacking) ReturnWaypoint() donburi.Entity { return s.Waypoint }
func (s GoblinHit) ReturnWaypoint() donburi.Entity       { return s.Waypoint }

func (GoblinIdling) goblinState()    {}
func (GoblinMoving) goblinState()    {}
func (GoblinChasing) goblinState()   {}
func (GoblinAttacking) goblinState() {}
func (GoblinHit) goblinState()       {}

type GoblinData struct {
	WalkSpeed      float64
	LungeSpeed     float64
	Facing         gamemath.Direction
	ChaseDistance  float64
	AttackDistance float64
	State          GoblinState
}

var Goblin = donburi.NewComponentType[GoblinData]()
