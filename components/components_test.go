package components

import (
	"testing"

	"github.com/automoto/goblin-siege/physics"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestHealthDamageFloorsAtZero(t *testing.T) {
	h := NewHealth(true, 3)
	h.Damage(1)
	assert.Equal(t, uint(2), h.Current)
	assert.InDelta(t, 2.0/3.0, h.Ratio(), 1e-9)

	h.Damage(10)
	assert.Zero(t, h.Current)
	assert.True(t, h.Dead())
}

func TestRecordHitOnZeroValue(t *testing.T) {
	var h HealthData
	assert.False(t, h.WasHitBy(4))
	h.RecordHit(4)
	assert.True(t, h.WasHitBy(4))
	assert.Zero(t, h.Ratio())
}

func TestHitTypeOpposes(t *testing.T) {
	assert.True(t, FriendlyAttack.Opposes(false))
	assert.False(t, FriendlyAttack.Opposes(true))
	assert.True(t, EnemyAttack.Opposes(true))
	assert.False(t, EnemyAttack.Opposes(false))
}

func TestAttackIDsAreFresh(t *testing.T) {
	var sim SimData
	seen := make(map[AttackID]bool)
	for i := 0; i < 100; i++ {
		id := sim.NextAttackID()
		assert.False(t, seen[id])
		assert.NotZero(t, id)
		seen[id] = true
	}
}

func TestOwnerTable(t *testing.T) {
	owners := NewOwnerTable()
	owners.BindBody(physics.BodyHandle(3), donburi.Entity(7))
	owners.BindBody(physics.BodyHandle(1), donburi.Entity(8))
	owners.BindCollider(physics.ColliderHandle(2), donburi.Entity(7))

	e, ok := owners.BodyOwner(3)
	assert.True(t, ok)
	assert.Equal(t, donburi.Entity(7), e)
	assert.Equal(t, []physics.BodyHandle{1, 3}, owners.Bodies())

	owners.UnbindBody(3)
	owners.UnbindCollider(2)
	_, ok = owners.BodyOwner(3)
	assert.False(t, ok)
	_, ok = owners.ColliderOwner(2)
	assert.False(t, ok)
	assert.Empty(t, owners.Colliders())
}
