package systems

import (
	"log"

	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LandedEvent is published when a character touches ground after being airborne.
type LandedEvent struct {
	Character *donburi.Entry
}

// CrouchEvent is published when a character starts or stops crouching.
type CrouchEvent struct {
	Character *donburi.Entry
	Crouching bool
}

// OrbCollectedEvent is published when a character picks up an orb.
type OrbCollectedEvent struct {
	Character *donburi.Entry
	Element   orbs.Element
	Count     int
}

var (
	OnLanded       = events.NewEventType[LandedEvent]()
	OnCrouch       = events.NewEventType[CrouchEvent]()
	OnOrbCollected = events.NewEventType[OrbCollectedEvent]()
)

// ProcessEvents delivers every queued notification to its subscribers.
func ProcessEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}

// SubscribeEventLog logs every notification when debug event logging is on.
func SubscribeEventLog(w donburi.World) {
	if !cfg.Debug.LogEvents {
		return
	}
	OnLanded.Subscribe(w, func(w donburi.World, e LandedEvent) {
		log.Printf("[event] landed entity=%d", e.Character.Entity().Id())
	})
	OnCrouch.Subscribe(w, func(w donburi.World, e CrouchEvent) {
		log.Printf("[event] crouch=%v entity=%d", e.Crouching, e.Character.Entity().Id())
	})
	OnOrbCollected.Subscribe(w, func(w donburi.World, e OrbCollectedEvent) {
		log.Printf("[event] collected %s orb, now %d", e.Element, e.Count)
	})
}
