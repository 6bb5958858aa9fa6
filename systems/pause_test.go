package systems

import (
	"testing"

	cfg "github.com/automoto/goblin-siege/config"
	"github.com/stretchr/testify/assert"
)

func TestPauseStopsGameplay(t *testing.T) {
	e, _ := newTestECS(t)
	AddGameplaySystems(e)

	e.Update()
	sim := simOf(e.World)
	assert.Equal(t, uint64(1), sim.Tick)

	inputOf(e).Current[cfg.ActionPause] = true
	tick(e, UpdatePause)
	assert.True(t, sim.Paused)

	e.Update()
	e.Update()
	assert.Equal(t, uint64(1), sim.Tick)

	input := inputOf(e)
	input.Advance()
	input.Current[cfg.ActionPause] = true
	tick(e, UpdatePause)
	assert.True(t, sim.Paused, "holding the key does not toggle again")

	input.Advance()
	input.Advance()
	input.Current[cfg.ActionPause] = true
	tick(e, UpdatePause)
	assert.False(t, sim.Paused)
}

func TestNoPauseAfterGameOver(t *testing.T) {
	e, _ := newTestECS(t)
	waveOf(e).GameOver = true
	inputOf(e).Current[cfg.ActionPause] = true

	tick(e, UpdatePause)
	assert.False(t, simOf(e.World).Paused)
}
