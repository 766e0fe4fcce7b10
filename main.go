package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/symbiotic/assets"
	"github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/scenes"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 480
	screenHeight = 270
	windowScale  = 2
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, screenWidth, screenHeight)
	return screenWidth, screenHeight
}

// loadLevel accepts either an embedded level name or a path to a .tmx file.
func loadLevel(name string) (*leveldata.Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		return leveldata.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadLevel(name)
}

func main() {
	levelName := flag.String("level", "sandbox", "Embedded level name or path to a .tmx file")
	tuningPath := flag.String("tuning", "", "YAML file overriding controller tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	drawChecks := flag.Bool("checks", false, "Draw ground and ceiling check circles")
	flag.Parse()

	config.Debug.DrawChecks = *drawChecks

	level, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var tunings <-chan *config.Tuning
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()

		if *watch {
			watcher, err := config.WatchTuning(*tuningPath)
			if err != nil {
				log.Fatalf("Failed to watch tuning: %v", err)
			}
			defer watcher.Close()
			go func() {
				for err := range watcher.Errors {
					log.Printf("[tuning] %v", err)
				}
			}()
			tunings = watcher.Updates
		}
	}

	if err := systems.InitPersistence(config.Sim.SaveAppID); err != nil {
		log.Printf("Warning: orb counts will not be saved: %v", err)
	}

	ebiten.SetWindowSize(screenWidth*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("symbiotic sandbox")
	ebiten.SetTPS(config.Sim.TickRate)

	game := &Game{scene: scenes.NewSandboxScene(level, tunings, screenWidth, screenHeight)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
