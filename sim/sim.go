// Package sim wires the controller systems into a fixed-timestep simulation
// that runs without a window.
package sim

import (
	"fmt"
	"log"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/systems"
	"github.com/automoto/symbiotic/systems/factory"
	"github.com/yohamta/donburi"
)

// Simulation owns one world built from a level.
type Simulation struct {
	World     donburi.World
	Character *donburi.Entry
	Level     *leveldata.Level

	tick    uint64
	tunings <-chan *cfg.Tuning
}

// New builds a world for lvl and spawns its character.
func New(lvl *leveldata.Level) (*Simulation, error) {
	w := donburi.NewWorld()
	char, err := factory.CreateLevel(w, lvl)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return &Simulation{
		World:     w,
		Character: char,
		Level:     lvl,
	}, nil
}

// WatchTunings makes Step apply tunings received on ch before each tick.
func (s *Simulation) WatchTunings(ch <-chan *cfg.Tuning) {
	s.tunings = ch
}

// Tick returns how many steps have run.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Step advances the world by one fixed tick.
func (s *Simulation) Step() {
	s.drainTunings()
	dt := cfg.FixedDelta()
	w := s.World

	systems.UpdateGroundChecks(w)
	systems.UpdateCharacters(w, dt)
	systems.UpdateBodies(w, dt)
	systems.UpdateTriggers(w)
	systems.UpdateRespawn(w)
	systems.UpdateSquashStretch(w, dt)
	systems.ProcessEvents(w)
	systems.UpdateCamera(w)
	systems.SaveDirtyOrbs(w)

	s.tick++
}

func (s *Simulation) drainTunings() {
	if s.tunings == nil {
		return
	}
	for {
		select {
		case t, ok := <-s.tunings:
			if !ok {
				s.tunings = nil
				return
			}
			s.ApplyTuning(t)
		default:
			return
		}
	}
}

// ApplyTuning overrides the global config and refreshes bodies that copied
// values from it at spawn. The tick rate is fixed once the loop is running,
// so a reloaded tick_rate is ignored.
func (s *Simulation) ApplyTuning(t *cfg.Tuning) {
	if t == nil {
		return
	}
	rate := cfg.Sim.TickRate
	t.Apply()
	if cfg.Sim.TickRate != rate {
		log.Printf("[tuning] tick_rate %d needs a restart, keeping %d", cfg.Sim.TickRate, rate)
		cfg.Sim.TickRate = rate
	}
	components.Body.Each(s.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Mass = cfg.Controller.Mass
		body.LinearDrag = cfg.Physics.DefaultLinearDrag
		swimming := e.HasComponent(components.Character) && components.Character.Get(e).State.Swimming
		if swimming {
			body.GravityScale = cfg.Physics.SwimmingGravity
		} else {
			body.GravityScale = cfg.Physics.DefaultGravity
		}
	})
	log.Printf("[tuning] applied at tick %d", s.tick)
}
