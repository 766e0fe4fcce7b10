package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/sim"
	"github.com/automoto/symbiotic/systems"
	"github.com/automoto/symbiotic/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const layerDefault ecs.LayerID = 0

// SandboxScene runs the controller in a window with keyboard input and
// debug drawing.
type SandboxScene struct {
	ecs     *ecs.ECS
	sim     *sim.Simulation
	level   *leveldata.Level
	tunings <-chan *cfg.Tuning
	width   int
	height  int
	once    sync.Once
}

func NewSandboxScene(level *leveldata.Level, tunings <-chan *cfg.Tuning, width, height int) *SandboxScene {
	return &SandboxScene{level: level, tunings: tunings, width: width, height: height}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	if s.ecs == nil {
		return
	}
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	simulation, err := sim.New(s.level)
	if err != nil {
		log.Printf("Warning: could not start sandbox: %v", err)
		return
	}
	simulation.WatchTunings(s.tunings)
	s.sim = simulation

	w := simulation.World
	systems.SubscribeEventLog(w)
	systems.SubscribeLandingSquash(w)
	if err := systems.LoadOrbs(simulation.Character); err != nil {
		log.Printf("Warning: %v", err)
	}

	at := math.NewVec2(0, 0)
	if levelEntry, ok := components.Level.First(w); ok {
		at = components.Level.Get(levelEntry).Spawn
	}
	factory.CreateCamera(w, float64(s.width), float64(s.height), at)

	e := ecs.NewECS(w)
	e.AddSystem(s.updateInput)
	e.AddSystem(s.step)

	e.AddRenderer(layerDefault, drawGround)
	e.AddRenderer(layerDefault, drawWater)
	e.AddRenderer(layerDefault, drawOrbs)
	e.AddRenderer(layerDefault, drawCharacters)
	e.AddRenderer(layerDefault, drawChecks)
	e.AddRenderer(layerDefault, drawHUD)

	s.ecs = e
}

func (s *SandboxScene) step(_ *ecs.ECS) {
	s.sim.Step()
}

func (s *SandboxScene) updateInput(_ *ecs.ECS) {
	char := s.sim.Character
	w := s.sim.World

	move := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move += 1
	}
	crouch := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	// Swimming honours the held up key; out of water it only jumps on press.
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)

	systems.Move(w, char, move, crouch, jump)
	systems.SetSwimUp(char, up)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		systems.Respawn(w, char)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawChecks = !cfg.Debug.DrawChecks
	}

	// Number keys grant orbs for trying out unlocks.
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		el := orbs.Element(i)
		if err := systems.SetOrbAmount(char, el, systems.GetOrbAmount(char, el)+1); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		for _, el := range orbs.Elements() {
			_ = systems.SetOrbAmount(char, el, 0)
		}
	}
}
