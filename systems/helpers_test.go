package systems

import (
	"testing"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/systems/factory"
	"github.com/yohamta/donburi"
)

const floorY = 128.0

// testLevel is a 20x10 tile room with a solid floor two tiles thick.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "test",
		MapWidth:    320,
		MapHeight:   160,
		GroundRects: []leveldata.Rect{{X: 0, Y: floorY, W: 320, H: 32}},
		SpawnPoints: []leveldata.SpawnPoint{{X: 40, Y: floorY}},
	}
}

func newTestWorld(t *testing.T, lvl *leveldata.Level) (donburi.World, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	char, err := factory.CreateLevel(w, lvl)
	if err != nil {
		t.Fatalf("create level: %v", err)
	}
	return w, char
}

// step runs one fixed tick in the same order as the simulation.
func step(w donburi.World) {
	dt := cfg.FixedDelta()
	UpdateGroundChecks(w)
	UpdateCharacters(w, dt)
	UpdateBodies(w, dt)
	UpdateTriggers(w)
	UpdateRespawn(w)
	ProcessEvents(w)
}

func steps(w donburi.World, n int) {
	for i := 0; i < n; i++ {
		step(w)
	}
}

// teleport moves every collider of e so its feet are centred on (x, y).
func teleport(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e).Object
	dx := x - obj.W/2 - obj.X
	dy := y - obj.H - obj.Y
	for _, o := range bodyColliders(e) {
		o.X += dx
		o.Y += dy
		if o.Space != nil {
			o.Update()
		}
	}
}

type eventCounts struct {
	landed  int
	crouch  []bool
	collect int
}

func countEvents(w donburi.World) *eventCounts {
	c := &eventCounts{}
	OnLanded.Subscribe(w, func(w donburi.World, e LandedEvent) { c.landed++ })
	OnCrouch.Subscribe(w, func(w donburi.World, e CrouchEvent) { c.crouch = append(c.crouch, e.Crouching) })
	OnOrbCollected.Subscribe(w, func(w donburi.World, e OrbCollectedEvent) { c.collect++ })
	return c
}
