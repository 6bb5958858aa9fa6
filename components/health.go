package components

import "github.com/yohamta/donburi"

// HealthData tracks hit points. HitBy remembers every attack that has landed
// so a single swing can never damage the same target twice.
type HealthData struct {
	Friendly bool
	Current  uint
	Max      uint
	HitBy    map[AttackID]struct{}
}

func NewHealth(friendly bool, hp uint) HealthData {
	return HealthData{
		Friendly: friendly,
		Current:  hp,
		Max:      hp,
		HitBy:    make(map[AttackID]struct{}),
	}
}

func (h *HealthData) WasHitBy(id AttackID) bool {
	_, ok := h.HitBy[id]
	return ok
}

func (h *HealthData) RecordHit(id AttackID) {
	if h.HitBy == nil {
		h.HitBy = make(map[AttackID]struct{})
	}
	h.HitBy[id] = struct{}{}
}

// Damage subtracts amount, stopping at zero.
func (h *HealthData) Damage(amount uint) {
	if amount >= h.Current {
		h.Current = 0
		return
	}
	h.Current -= amount
}

func (h *HealthData) Dead() bool {
	return h.Current == 0
}

// Ratio is Current/Max, or 0 when Max is unset.
func (h *HealthData) Ratio() float64 {
	if h.Max == 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
