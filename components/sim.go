package components

import "github.com/yohamta/donburi"

// SimData is the simulation clock. Delta is the length of the current tick in
// seconds. A paused clock stops every gameplay system.
type SimData struct {
	Delta      float64
	Tick       uint64
	Paused     bool
	lastAttack AttackID
}

// NextAttackID returns a fresh id for a new swing.
func (s *SimData) NextAttackID() AttackID {
	s.lastAttack++
	return s.lastAttack
}

var Sim = donburi.NewComponentType[SimData]()
