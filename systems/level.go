package systems

import (
	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/shared/character"
	"github.com/automoto/symbiotic/tags"
	"github.com/yohamta/donburi"
)

// fallMargin is how far below the map a character may fall before respawning.
const fallMargin = 64.0

// UpdateRespawn returns characters that fell out of the level to the spawn point.
func UpdateRespawn(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}
	limit := float64(level.CurrentLevel.MapHeight) + fallMargin

	tags.Character.Each(w, func(e *donburi.Entry) {
		if components.Object.Get(e).Y > limit {
			Respawn(w, e)
		}
	})
}

// Respawn moves e back to the level spawn with zero velocity. Orb counts are kept.
func Respawn(w donburi.World, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	spawn := components.Level.Get(levelEntry).Spawn

	obj := components.Object.Get(e).Object
	char := components.Character.Get(e)
	body := components.Body.Get(e)

	dx := spawn.X - obj.W/2 - obj.X
	dy := spawn.Y - obj.H - obj.Y
	for _, o := range bodyColliders(e) {
		o.X += dx
		o.Y += dy
		if o.Space != nil {
			o.Update()
		}
	}

	body.VX, body.VY = 0, 0
	body.ForceX, body.ForceY = 0, 0

	extra := char.State.ExtraJumps
	swimming := char.State.Swimming
	char.State = character.NewState()
	char.State.ExtraJumps = extra
	char.State.Swimming = swimming
	char.ScaleX = 1
}
