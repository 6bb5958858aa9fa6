package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/goblin-siege/assets"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/systems"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one round, from the first wave until the pylon or the
// player falls.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, opts Options) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.applyTuning()
	ws.ecs.Update()

	if entry, ok := components.GameOver.First(ws.ecs.World); ok {
		data := *components.GameOver.Get(entry)
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.opts, data))
	}
}

// applyTuning drains the watcher without blocking. Values apply to entities
// created after the reload.
func (ws *WorldScene) applyTuning() {
	if ws.opts.Tuning == nil {
		return
	}
	for {
		select {
		case t, ok := <-ws.opts.Tuning.Updates:
			if !ok {
				return
			}
			t.Apply()
			log.Printf("Tuning reloaded")
		case err := <-ws.opts.Tuning.Errors:
			if err != nil {
				log.Printf("Warning: Tuning reload failed: %v", err)
			}
		default:
			return
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePause)
	systems.AddGameplaySystems(e)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	factory.CreateSingletons(e, systems.LoadRecord().BestWave)

	grid, err := assets.LoadLevel(ws.opts.Level)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	if err := factory.CreateLevel(e, ws.opts.Level, grid); err != nil {
		panic("failed to build level: " + err.Error())
	}
}
