package components

import (
	"github.com/yohamta/donburi"
)

// AttackID identifies one swing. Every attack draws a fresh id.
type AttackID uint64

type HitType int

const (
	FriendlyAttack HitType = iota
	EnemyAttack
)

// Opposes reports whether an attack of this type may damage a target with
// the given friendly flag.
func (t HitType) Opposes(friendly bool) bool {
	switch t {
	case FriendlyAttack:
		return !friendly
	case EnemyAttack:
		return friendly
	}
	return false
}

func (t HitType) String() string {
	if t == FriendlyAttack {
		return "friendly"
	}
	return "enemy"
}

type AttackHitboxData struct {
	ID      AttackID
	HitType HitType
	Damage  uint
}

var AttackHitbox = donburi.NewComponentType[AttackHitboxData]()
