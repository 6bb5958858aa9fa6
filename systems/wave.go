package systems

import (
	"log"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var livingGoblins = donburi.NewQuery(filter.Contains(tags.Goblin))

type spawnPoint struct {
	pos      dmath.Vec2
	waypoint donburi.Entity
}

// UpdateWaves counts living goblins and, once none have been alive for longer
// than cfg.Wave.Threshold, queues a goblin at every spawner.
func UpdateWaves(e *ecs.ECS) {
	entry, ok := components.Wave.First(e.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(entry)
	if wave.GameOver {
		return
	}

	wave.Alive = livingGoblins.Count(e.World)
	if wave.Alive == 0 {
		wave.IdleTime += simOf(e.World).Delta
	} else {
		wave.IdleTime = 0
	}
	if wave.IdleTime <= cfg.Wave.Threshold {
		return
	}

	var points []spawnPoint
	tags.Spawner.Each(e.World, func(entry *donburi.Entry) {
		points = append(points, spawnPoint{
			pos:      components.Transform.Get(entry).Position,
			waypoint: components.Spawner.Get(entry).Waypoint,
		})
	})
	Defer(e, func(e *ecs.ECS) {
		for _, p := range points {
			factory.CreateGoblin(e, p.pos, p.waypoint)
		}
	})

	wave.Current = wave.Next
	wave.Next++
	wave.IdleTime = 0
	// Queued goblins count as alive until the next barrier creates them.
	wave.Alive = len(points)
	wave.Best = max(wave.Best, wave.Current)
	PlaySound(e.World, cfg.SoundWaveStart)
	log.Printf("Wave %d: %d goblins", wave.Current, len(points))
}
