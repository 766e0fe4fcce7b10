package factory

import (
	"github.com/automoto/symbiotic/archetypes"
	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGround adds a solid block the character stands on and bumps into.
func CreateGround(w donburi.World, x, y, width, height float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(w, ground, obj)

	return ground
}

// CreateWater adds a trigger zone that makes the character swim.
func CreateWater(w donburi.World, x, y, width, height float64) *donburi.Entry {
	water := archetypes.WaterZone.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvWater)
	components.Object.SetValue(water, components.ObjectData{Object: obj})
	addToSpace(w, water, obj)

	return water
}

// CreateOrb adds a pickup centred on (x, y).
func CreateOrb(w donburi.World, x, y, size float64, element orbs.Element) *donburi.Entry {
	orb := archetypes.OrbPickup.Spawn(w)

	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvOrb)
	components.Object.SetValue(orb, components.ObjectData{Object: obj})
	components.OrbPickup.SetValue(orb, components.OrbPickupData{Element: element})
	addToSpace(w, orb, obj)

	return orb
}
