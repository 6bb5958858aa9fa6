package systems

import (
	"log"

	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeath queues removal of every entity whose health reached zero.
// Losing the pylon or the player ends the round.
func UpdateDeath(e *ecs.ECS) {
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		if !components.Health.Get(entry).Dead() {
			return
		}
		DeferRemove(e, entry.Entity())

		switch {
		case entry.HasComponent(tags.Goblin):
			PlaySound(e.World, cfg.SoundGoblinDeath)
		case entry.HasComponent(tags.Pylon):
			endRound(e, components.CausePylonDestroyed)
		case entry.HasComponent(tags.Player):
			endRound(e, components.CausePlayerDied)
		}
	})
}

func endRound(e *ecs.ECS, cause components.GameOverCause) {
	waveEntry, ok := components.Wave.First(e.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)
	if wave.GameOver {
		return
	}
	wave.GameOver = true
	log.Printf("Round over at wave %d (best %d)", wave.Current, wave.Best)

	data := components.GameOverData{Cause: cause, WaveReached: wave.Current, BestWave: wave.Best}
	Defer(e, func(e *ecs.ECS) {
		entry := archetypes.GameOver.Spawn(e)
		components.GameOver.SetValue(entry, data)
	})
}
