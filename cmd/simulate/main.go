// Command simulate runs the character controller headlessly on a level with
// scripted input and prints what happened.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/symbiotic/assets"
	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/sim"
	"github.com/automoto/symbiotic/systems"
	"github.com/yohamta/donburi"
)

type stats struct {
	landed    int
	crouches  int
	collected int
	jumps     int
}

func main() {
	levelName := flag.String("level", "sandbox", "Embedded level name or path to a .tmx file")
	ticks := flag.Uint64("ticks", 600, "Number of ticks to simulate (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = use config)")
	tuningPath := flag.String("tuning", "", "YAML file overriding controller tuning")
	jumpEvery := flag.Uint64("jump-every", 45, "Press jump every N ticks (0 = never)")
	move := flag.Float64("move", 1, "Horizontal input held for the whole run, in [-1, 1]")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock instead of running flat out")
	flag.Parse()

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}
	if *tickRate > 0 {
		config.Sim.TickRate = *tickRate
	}
	if *ticks == 0 && !*realtime {
		log.Fatalf("-ticks 0 requires -realtime")
	}

	var level *leveldata.Level
	var err error
	if strings.HasSuffix(*levelName, ".tmx") {
		level, err = leveldata.Load(os.DirFS(filepath.Dir(*levelName)), filepath.Base(*levelName))
	} else {
		level, err = assets.LoadLevel(*levelName)
	}
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	s, err := sim.New(level)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	st := &stats{}
	systems.SubscribeEventLog(s.World)
	systems.OnLanded.Subscribe(s.World, func(w donburi.World, e systems.LandedEvent) { st.landed++ })
	systems.OnCrouch.Subscribe(s.World, func(w donburi.World, e systems.CrouchEvent) { st.crouches++ })
	systems.OnOrbCollected.Subscribe(s.World, func(w donburi.World, e systems.OrbCollectedEvent) { st.collected++ })

	loop := sim.NewGameLoop(s, config.Sim.TickRate, *ticks)
	loop.BeforeTick(func(s *sim.Simulation) {
		jump := *jumpEvery > 0 && s.Tick()%*jumpEvery == 0
		if jump {
			st.jumps++
		}
		systems.Move(s.World, s.Character, *move, false, jump)
	})

	log.Printf("[sim] level %q, %d ticks at %d/s", level.Name, *ticks, config.Sim.TickRate)
	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("[sim] interrupted")
			loop.Stop()
		}()
		loop.Run()
	} else {
		loop.RunFast()
	}

	report(s, st)
}

func report(s *sim.Simulation, st *stats) {
	obj := components.Object.Get(s.Character)
	char := components.Character.Get(s.Character)
	counts := components.Orbs.Get(s.Character).Counts()

	fmt.Printf("ticks:      %d\n", s.Tick())
	fmt.Printf("position:   (%.1f, %.1f)\n", obj.X+obj.W/2, obj.Y+obj.H)
	fmt.Printf("grounded:   %v  swimming: %v  crouching: %v\n", char.State.Grounded, char.State.Swimming, char.State.Crouching)
	fmt.Printf("jumps:      %d pressed, %d landings, %d crouch changes\n", st.jumps, st.landed, st.crouches)
	fmt.Printf("orbs:       %d collected\n", st.collected)
	for _, el := range orbs.Elements() {
		fmt.Printf("  %-6s %d\n", el, counts[el])
	}
}
