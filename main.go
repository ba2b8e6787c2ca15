package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/fonts"
	"github.com/automoto/doomerang-fps/scenes"
	"github.com/automoto/doomerang-fps/shared/protocol"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
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

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSandboxScene(g)
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
	configDir := flag.String("config", ".", "directory containing viewmodel.json")
	flag.Parse()

	config.SetupLogging(os.Stderr, config.C.LogLevel)
	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogging(os.Stderr, config.C.LogLevel)

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal().Err(err).Msg("failed to register network components")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang view model")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence("doomerang-fps"); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	if saved, err := systems.LoadTuning(); err != nil {
		log.Warn().Err(err).Msg("ignoring saved tuning")
	} else if saved != nil {
		systems.ApplyTuning(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
