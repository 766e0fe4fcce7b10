package sim

import (
	"log"
	"time"
)

// GameLoop steps a Simulation on a wall-clock ticker until stopped or until
// maxTicks steps have run (0 means no limit).
type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks uint64
	before   func(s *Simulation)
	stopChan chan struct{}
}

func NewGameLoop(s *Simulation, tickRate int, maxTicks uint64) *GameLoop {
	return &GameLoop{
		sim:      s,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// BeforeTick registers fn to run before every step, typically to feed input.
func (g *GameLoop) BeforeTick(fn func(s *Simulation)) {
	g.before = fn
}

// Run blocks until Stop is called or the tick limit is reached.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.done() {
				log.Printf("[sim] reached %d ticks", g.maxTicks)
				return
			}
		}
	}
}

// RunFast steps without waiting on the clock. It requires a tick limit.
func (g *GameLoop) RunFast() {
	if g.maxTicks == 0 {
		return
	}
	for !g.done() {
		g.tick()
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	if g.before != nil {
		g.before(g.sim)
	}
	g.sim.Step()
}

func (g *GameLoop) done() bool {
	return g.maxTicks > 0 && g.sim.Tick() >= g.maxTicks
}
