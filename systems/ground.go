package systems

import (
	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/character"
	"github.com/automoto/symbiotic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateGroundChecks runs the ground and ceiling overlap queries for every
// character and advances its grounded state. Runs once per fixed tick.
func UpdateGroundChecks(w donburi.World) {
	space := spaceOf(w)
	tags.Character.Each(w, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		obj := components.Object.Get(e).Object

		// A rising body has left the ground even while the check circle
		// still reaches the floor.
		contacts := 0
		if !rising(e) {
			contacts = len(groundContacts(space, e, obj))
		}
		char.CeilingBlocked = len(ceilingContacts(space, e, obj)) > 0

		var ev character.Events
		char.State, ev = character.FixedStep(char.State, contacts)
		if ev.Landed {
			OnLanded.Publish(w, LandedEvent{Character: e})
		}
	})
}

func rising(e *donburi.Entry) bool {
	return e.HasComponent(components.Body) && components.Body.Get(e).VY < 0
}

// GroundCheckPoint is the centre of the ground check circle: the middle of
// the character's feet.
func GroundCheckPoint(obj *resolv.Object) (float64, float64) {
	return obj.X + obj.W/2, obj.Y + obj.H + cfg.Controller.GroundCheckOffsetY
}

// CeilingCheckPoint is the centre of the ceiling check circle: the top of the
// standing character, whether or not the crouch collider is enabled.
func CeilingCheckPoint(obj *resolv.Object) (float64, float64) {
	return obj.X + obj.W/2, obj.Y - cfg.Controller.CrouchColliderHeight - cfg.Controller.CeilingCheckOffset
}

func groundContacts(space *resolv.Space, e *donburi.Entry, obj *resolv.Object) []*resolv.Object {
	x, y := GroundCheckPoint(obj)
	return OverlapCircle(space, x, y, cfg.Controller.GroundedRadius, e, cfg.Controller.WhatIsGround...)
}

func ceilingContacts(space *resolv.Space, e *donburi.Entry, obj *resolv.Object) []*resolv.Object {
	x, y := CeilingCheckPoint(obj)
	return OverlapCircle(space, x, y, cfg.Controller.CeilingRadius, e, cfg.Controller.WhatIsGround...)
}
