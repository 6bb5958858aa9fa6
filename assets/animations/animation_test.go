package animations

import (
	"testing"

	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, 0.1)
	for i := 0; i < 3; i++ {
		a.Update(0.1)
	}
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
	assert.False(t, a.Finished())
}

func TestAnimationFreezesOnLastFrame(t *testing.T) {
	a := NewAnimation(3, 0.1)
	a.FreezeOnComplete = true
	a.Update(0.25)
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Finished())

	a.Update(1)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Finished())
}

func TestSetPlay(t *testing.T) {
	s := NewSet(cfg.CharacterAnimations["goblin"])
	attack := cfg.AnimationID{Kind: cfg.AnimAttack, Facing: gamemath.East}

	require.NoError(t, s.Play(attack, cfg.EndStay, 1))
	assert.True(t, s.Active(cfg.AnimAttack))
	assert.False(t, s.Active(cfg.AnimWalk))
	assert.Equal(t, attack, s.Current())

	s.Update(0.35)
	require.NoError(t, s.Play(attack, cfg.EndStay, 1))
	assert.Equal(t, 3, s.Frame(), "replaying the active clip keeps its progress")

	s.Update(1)
	assert.True(t, s.Finished())

	require.NoError(t, s.Play(cfg.AnimationID{Kind: cfg.AnimIdle, Facing: gamemath.East}, cfg.EndLoop, 1))
	assert.False(t, s.Finished())
	assert.Equal(t, 0, s.Frame())
}

func TestSetRate(t *testing.T) {
	s := NewSet(map[cfg.AnimationKind]cfg.AnimationDef{cfg.AnimWalk: {Frames: 4, FrameSeconds: 0.1}})
	require.NoError(t, s.Play(cfg.AnimationID{Kind: cfg.AnimWalk, Facing: gamemath.North}, cfg.EndLoop, 2))
	s.Update(0.125)
	assert.Equal(t, 2, s.Frame())
}

func TestSetMissingClip(t *testing.T) {
	s := NewSet(map[cfg.AnimationKind]cfg.AnimationDef{cfg.AnimWalk: {Frames: 4, FrameSeconds: 0.1}})
	err := s.Play(cfg.AnimationID{Kind: cfg.AnimAttack, Facing: gamemath.South}, cfg.EndStay, 1)
	assert.ErrorIs(t, err, ErrMissingClip)
	assert.False(t, s.Active(cfg.AnimAttack))
}
