package systems

import (
	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/tags"
	"github.com/yohamta/donburi"
)

// TriggerHandler reacts to a character entering or leaving a trigger entity.
type TriggerHandler struct {
	Enter func(w donburi.World, char, trigger *donburi.Entry)
	Exit  func(w donburi.World, char, trigger *donburi.Entry)
}

// triggerHandlers maps resolv tags to their handlers.
var triggerHandlers = map[string]TriggerHandler{
	tags.ResolvWater: {Enter: enterWater, Exit: exitWater},
	tags.ResolvOrb:   {Enter: collectOrb},
}

// UpdateTriggers diffs each character's trigger overlaps against the previous
// tick and fires enter and exit handlers.
func UpdateTriggers(w donburi.World) {
	space := spaceOf(w)
	tags.Character.Each(w, func(e *donburi.Entry) {
		contacts := components.TriggerContacts.Get(e)
		if contacts.Inside == nil {
			contacts.Inside = map[string]map[donburi.Entity]struct{}{}
		}
		obj := components.Object.Get(e).Object

		for tag, handler := range triggerHandlers {
			now := map[donburi.Entity]struct{}{}
			for _, o := range OverlapBox(space, rectOf(obj), e, tag) {
				if trigger, ok := o.Data.(*donburi.Entry); ok && trigger.Valid() {
					now[trigger.Entity()] = struct{}{}
				}
			}

			before := contacts.Inside[tag]
			contacts.Inside[tag] = now

			for ent := range now {
				if _, was := before[ent]; !was && handler.Enter != nil {
					handler.Enter(w, e, w.Entry(ent))
				}
			}
			for ent := range before {
				if _, still := now[ent]; !still && handler.Exit != nil && w.Valid(ent) {
					handler.Exit(w, e, w.Entry(ent))
				}
			}
		}
	})
	removeCollectedOrbs(w)
}

// enterWater starts swimming when the first water zone is entered.
func enterWater(w donburi.World, e, _ *donburi.Entry) {
	if components.Character.Get(e).State.Swimming {
		return
	}
	setSwimming(e, true)
}

// exitWater stops swimming once the last water zone is left.
func exitWater(w donburi.World, e, _ *donburi.Entry) {
	if components.TriggerContacts.Get(e).Count(tags.ResolvWater) != 0 {
		return
	}
	setSwimming(e, false)
}

func setSwimming(e *donburi.Entry, swimming bool) {
	char := components.Character.Get(e)
	body := components.Body.Get(e)
	char.State.Swimming = swimming
	// Water only changes gravity. Drag is the same in and out of it.
	if swimming {
		body.GravityScale = cfg.Physics.SwimmingGravity
	} else {
		body.GravityScale = cfg.Physics.DefaultGravity
	}
}
