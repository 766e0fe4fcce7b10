package systems

import (
	"errors"
	"log"

	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/yohamta/donburi"
)

// ErrNoOrbs is returned when an entry has no orb collection to update.
var ErrNoOrbs = errors.New("entry has no orb collection")

// GetOrbAmount returns how many orbs of element e has collected.
func GetOrbAmount(e *donburi.Entry, element orbs.Element) int {
	if !e.Valid() || !e.HasComponent(components.Orbs) {
		return 0
	}
	return components.Orbs.Get(e).Get(element)
}

// SetOrbAmount stores the count for element and re-applies the unlocked
// abilities to the character.
func SetOrbAmount(e *donburi.Entry, element orbs.Element, amount int) error {
	if !e.Valid() || !e.HasComponent(components.Orbs) {
		return ErrNoOrbs
	}
	data := components.Orbs.Get(e)
	if err := data.Set(element, amount); err != nil {
		return err
	}
	data.Dirty = true
	syncAbilities(e)
	return nil
}

// syncAbilities copies the jump count granted by the orbs into the controller.
func syncAbilities(e *donburi.Entry) {
	if !e.HasComponent(components.Character) {
		return
	}
	abilities := components.Orbs.Get(e).Abilities()
	components.Character.Get(e).State.ExtraJumps = abilities.ExtraJumps()
}

func collectOrb(w donburi.World, e, pickup *donburi.Entry) {
	orb := components.OrbPickup.Get(pickup)
	if orb.Collected {
		return
	}

	data := components.Orbs.Get(e)
	count, err := data.Collect(orb.Element)
	if err != nil {
		log.Printf("Warning: could not collect orb: %v", err)
		return
	}
	data.Dirty = true
	orb.Collected = true
	syncAbilities(e)

	if space := spaceOf(w); space != nil {
		space.Remove(components.Object.Get(pickup).Object)
	}

	OnOrbCollected.Publish(w, OrbCollectedEvent{Character: e, Element: orb.Element, Count: count})
}

// removeCollectedOrbs destroys pickups collected during this tick.
func removeCollectedOrbs(w donburi.World) {
	var collected []donburi.Entity
	components.OrbPickup.Each(w, func(e *donburi.Entry) {
		if components.OrbPickup.Get(e).Collected {
			collected = append(collected, e.Entity())
		}
	})
	for _, ent := range collected {
		w.Remove(ent)
	}
}
