package systems

import (
	"fmt"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver restarts the round when the restart action is pressed.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if input.JustPressed(cfg.ActionRestart) {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// GameOverLines returns the summary shown under the title.
func GameOverLines(data *components.GameOverData) []string {
	return []string{
		data.Cause.String(),
		fmt.Sprintf("Wave reached: %d", data.WaveReached),
		fmt.Sprintf("Best wave: %d", data.BestWave),
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	data := components.GameOver.Get(entry)
	ui := cfg.GameOver
	width := float64(screen.Bounds().Dx())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), ui.BackgroundColor, false)

	face := fonts.Title.Get()
	text.Draw(screen, ui.Title, face, centered(width, ui.Title), int(ui.TitleY), ui.TitleColor)

	y := ui.TextY
	for _, line := range GameOverLines(data) {
		text.Draw(screen, line, face, centered(width, line), int(y), ui.TextColor)
		y += hudLineHeight
	}
	text.Draw(screen, ui.Hint, face, centered(width, ui.Hint), int(ui.HintY), ui.TextColor)
}

// centered assumes the fixed-width HUD face.
func centered(width float64, s string) int {
	return int(width-float64(len(s)*7)) / 2
}
