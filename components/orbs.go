package components

import (
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/yohamta/donburi"
)

// OrbsData holds a character's orb counters.
type OrbsData struct {
	*orbs.Collection
	Dirty bool // Counts changed since the last save
}

var Orbs = donburi.NewComponentType[OrbsData]()

// OrbPickupData marks a collectible orb in the level.
type OrbPickupData struct {
	Element   orbs.Element
	Collected bool
}

var OrbPickup = donburi.NewComponentType[OrbPickupData]()
