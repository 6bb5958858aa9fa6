package systems

import (
	"testing"

	"github.com/automoto/goblin-siege/components"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnBindsBodies(t *testing.T) {
	e, _ := newTestECS(t)
	goblin := factory.CreateGoblin(e, vec(10, 20), donburi.Null)

	tick(e, UpdateLifecycleSpawn)

	require.True(t, goblin.HasComponent(components.PhysicsHandle))
	assert.False(t, goblin.HasComponent(components.PhysicsDesc))

	space := spaceOf(e.World)
	h := components.PhysicsHandle.Get(goblin).Handle
	owner, ok := space.Owners.BodyOwner(h.Body)
	require.True(t, ok)
	assert.Equal(t, goblin.Entity(), owner)
	owner, ok = space.Owners.ColliderOwner(h.Collider)
	require.True(t, ok)
	assert.Equal(t, goblin.Entity(), owner)

	pos, ok := space.World.Position(h)
	require.True(t, ok)
	assert.Equal(t, vec(10, 20), pos)
}

func TestSensorAttachesInSamePassAsParent(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, vec(0, 0))
	hitbox := factory.CreatePlayerHitbox(e, player.Entity(), gamemath.East, 1)

	tick(e, UpdateLifecycleSpawn)

	sensor := components.AttachedSensor.Get(hitbox)
	require.True(t, sensor.Attached)
	parent := components.PhysicsHandle.Get(player).Handle
	assert.Equal(t, parent.Body, sensor.Handle.Body)
	assert.NotEqual(t, parent.Collider, sensor.Handle.Collider)

	owner, ok := spaceOf(e.World).Owners.ColliderOwner(sensor.Handle.Collider)
	require.True(t, ok)
	assert.Equal(t, hitbox.Entity(), owner)
}

func TestOrphanSensorIsDropped(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, vec(0, 0))
	hitbox := factory.CreatePlayerHitbox(e, player.Entity(), gamemath.East, 1)
	e.World.Remove(player.Entity())

	tick(e, UpdateLifecycleSpawn)

	assert.False(t, e.World.Valid(hitbox.Entity()))
	assert.Empty(t, spaceOf(e.World).World.Colliders())
}

func TestSensorOnBodilessParentPanics(t *testing.T) {
	e, _ := newTestECS(t)
	parent := e.World.Entry(e.World.Create(components.Transform))
	factory.CreatePlayerHitbox(e, parent.Entity(), gamemath.East, 1)

	assert.Panics(t, func() { tick(e, UpdateLifecycleSpawn) })
}

func TestReconcileRemovesBodiesOfRemovedEntities(t *testing.T) {
	e, _ := newTestECS(t)
	goblin := factory.CreateGoblin(e, vec(0, 0), donburi.Null)
	factory.CreateFence(e, vec(100, 0))
	tick(e, UpdateLifecycleSpawn)

	space := spaceOf(e.World)
	h := components.PhysicsHandle.Get(goblin).Handle
	require.Len(t, space.World.Bodies(), 2)

	e.World.Remove(goblin.Entity())
	tick(e, UpdateLifecycleReconcile)

	assert.False(t, space.World.HasBody(h.Body))
	assert.Len(t, space.World.Bodies(), 1)
	_, ok := space.Owners.BodyOwner(h.Body)
	assert.False(t, ok)
	_, ok = space.Owners.ColliderOwner(h.Collider)
	assert.False(t, ok)
}

func TestPylonDeathRemovesItsSensorsInOnePass(t *testing.T) {
	e, _ := newTestECS(t)
	pylon := factory.CreatePylon(e, vec(0, 0))
	hitbox := factory.CreatePlayerHitbox(e, pylon.Entity(), gamemath.North, 7)
	tick(e, UpdateLifecycleSpawn)
	require.True(t, components.AttachedSensor.Get(hitbox).Attached)

	components.Health.Get(pylon).Current = 0
	tick(e, UpdateDeath, ApplyCommands, UpdateLifecycleReconcile)

	assert.False(t, e.World.Valid(pylon.Entity()))
	assert.False(t, e.World.Valid(hitbox.Entity()))
	space := spaceOf(e.World)
	assert.Empty(t, space.World.Bodies())
	assert.Empty(t, space.World.Colliders())
	assert.Empty(t, space.Owners.Bodies())
	assert.Empty(t, space.Owners.Colliders())

	wave := components.Wave.Get(components.Wave.MustFirst(e.World))
	assert.True(t, wave.GameOver)
	over, ok := components.GameOver.First(e.World)
	require.True(t, ok)
	assert.Equal(t, components.CausePylonDestroyed, components.GameOver.Get(over).Cause)
}
