package factory

import (
	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld()
	world.RayDistance = cfg.Physics.RayMaxDistance
	components.Space.SetValue(space, components.SpaceData{
		World:  world,
		Owners: components.NewOwnerTable(),
	})
	return space
}

// CreateSim creates the clock and command queue. Delta is one fixed tick.
func CreateSim(ecs *ecs.ECS) *donburi.Entry {
	sim := archetypes.Sim.Spawn(ecs)
	components.Sim.SetValue(sim, components.SimData{Delta: 1.0 / float64(cfg.C.TPS)})
	return sim
}

func CreateWave(ecs *ecs.ECS, best int) *donburi.Entry {
	wave := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		IdleTime:  cfg.Wave.InitialIdle,
		Next:      cfg.Wave.InitialNumber,
		Best:      best,
		SavedBest: best,
	})
	return wave
}

// CreateSingletons spawns every world-wide component the systems expect.
func CreateSingletons(ecs *ecs.ECS, bestWave int) {
	CreateSpace(ecs)
	CreateSim(ecs)
	archetypes.Input.Spawn(ecs)
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{SFXVolume: cfg.Audio.DefaultSFXVol})
	CreateWave(ecs, bestWave)
}
