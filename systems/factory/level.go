package factory

import (
	"fmt"
	"log"

	"github.com/automoto/symbiotic/archetypes"
	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel builds the collision space, ground, water zones and orb pickups
// of lvl, then spawns the character at the first spawn point. It returns the
// character entry.
func CreateLevel(w donburi.World, lvl *leveldata.Level) (*donburi.Entry, error) {
	spawn, err := lvl.Spawn()
	if err != nil {
		return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
	}

	level := archetypes.Level.Spawn(w)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
		Spawn:        math.NewVec2(spawn.X, spawn.Y),
	})

	cell := cfg.Sim.CellSize
	CreateSpace(w, lvl.MapWidth, lvl.MapHeight, cell, cell)

	for _, r := range lvl.GroundRects {
		CreateGround(w, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.WaterZones {
		CreateWater(w, r.X, r.Y, r.W, r.H)
	}
	for _, o := range lvl.Orbs {
		el, err := orbs.ParseElement(o.Element)
		if err != nil {
			log.Printf("Warning: skipping orb at (%.0f, %.0f): %v", o.X, o.Y, err)
			continue
		}
		CreateOrb(w, o.X, o.Y, cfg.Orbs.PickupSize, el)
	}

	return CreateCharacter(w, spawn.X, spawn.Y), nil
}
