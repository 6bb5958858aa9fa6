package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	result       components.GameOverData
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, opts Options, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.opts)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	entry := archetypes.GameOver.Spawn(gs.ecs)
	components.GameOver.SetValue(entry, gs.result)
}
