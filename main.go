package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/scenes"
	"github.com/automoto/goblin-siege/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", config.C.Level, "level file, embedded or on disk")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	debug := flag.Bool("debug", false, "draw collider outlines")
	flag.Parse()

	config.Debug.DrawShapes = *debug

	opts := scenes.Options{Level: *level}
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()

		w, err := config.NewTuningWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer w.Close()
			opts.Tuning = w
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Persistence failures only cost the saved best wave.
	_ = systems.InitPersistence()
	systems.InitAudio()

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
