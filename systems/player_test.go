package systems

import (
	"testing"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func inputOf(e *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(e.World))
}

func TestPlayerWalksAlongAxes(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, vec(0, 0))
	anim := &fakeAnimator{}
	setAnimator(player, anim)
	physicsTick(e)

	input := inputOf(e)
	input.AxisX, input.AxisY = 0, -1
	tick(e, UpdatePlayer)

	p := components.Player.Get(player)
	assert.Equal(t, gamemath.South, p.Facing)
	assert.Equal(t, cfg.AnimationID{Kind: cfg.AnimWalk, Facing: gamemath.South}, anim.Current())
	vel, ok := spaceOf(e.World).World.Velocity(components.PhysicsHandle.Get(player).Handle)
	require.True(t, ok)
	assert.Equal(t, vec(0, -cfg.Player.WalkSpeed), vel)

	input.AxisX, input.AxisY = 0, 0
	tick(e, UpdatePlayer)
	assert.True(t, anim.Active(cfg.AnimIdle))
	assert.Equal(t, gamemath.South, p.Facing, "facing survives a stop")
}

func TestPlayerAttackCycle(t *testing.T) {
	e, sink := newTestECS(t)
	player := factory.CreatePlayer(e, vec(0, 0))
	anim := &fakeAnimator{finishAfter: 3}
	setAnimator(player, anim)
	physicsTick(e)

	input := inputOf(e)
	input.Current[cfg.ActionAttack] = true
	tick(e, UpdatePlayer, ApplyCommands, UpdateLifecycleSpawn, UpdateAudio)

	p := components.Player.Get(player)
	state, ok := p.State.(components.PlayerAttacking)
	require.True(t, ok)
	boxes := hitboxesOf(e.World, player.Entity())
	require.Len(t, boxes, 1)
	box := e.World.Entry(boxes[0])
	assert.Equal(t, state.Attack, components.AttackHitbox.Get(box).ID)
	assert.Equal(t, components.FriendlyAttack, components.AttackHitbox.Get(box).HitType)
	assert.True(t, components.AttachedSensor.Get(box).Attached)
	assert.Equal(t, []cfg.SoundID{cfg.SoundSwing}, sink.played)

	// Holding the button does not queue another swing.
	input.Advance()
	input.Current[cfg.ActionAttack] = true
	for i := 0; i < 10; i++ {
		tick(e, UpdatePlayer, ApplyCommands, UpdateLifecycleReconcile, UpdateAnimations)
		if _, moving := p.State.(components.PlayerMoving); moving {
			break
		}
	}
	require.IsType(t, components.PlayerMoving{}, p.State)
	assert.Empty(t, hitboxesOf(e.World, player.Entity()))
	assert.Len(t, spaceOf(e.World).World.Colliders(), 1)
}

func TestPlayerRecoversFromHit(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, vec(0, 0))
	anim := &fakeAnimator{}
	setAnimator(player, anim)
	physicsTick(e)

	p := components.Player.Get(player)
	p.State = components.PlayerHit{Timer: cfg.Combat.StaggerDuration}
	inputOf(e).Current[cfg.ActionAttack] = true

	tick(e, UpdatePlayer)
	assert.IsType(t, components.PlayerHit{}, p.State, "attacks are ignored while staggered")
	assert.True(t, anim.Active(cfg.AnimStaggered))

	for i := 0; i < 2*cfg.C.TPS; i++ {
		tick(e, UpdatePlayer)
		if _, moving := p.State.(components.PlayerMoving); moving {
			break
		}
	}
	assert.Equal(t, components.PlayerMoving{}, p.State)
}
