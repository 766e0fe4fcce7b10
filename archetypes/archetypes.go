package archetypes

import (
	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/tags"
	"github.com/yohamta/donburi"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	WaterZone = newArchetype(
		tags.WaterZone,
		components.Object,
	)
	OrbPickup = newArchetype(
		tags.OrbPickup,
		components.OrbPickup,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Body,
		components.MoveInput,
		components.TriggerContacts,
		components.Orbs,
		components.SquashStretch,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
