package systems

import (
	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/character"
	"github.com/automoto/symbiotic/tags"
	"github.com/yohamta/donburi"
)

// Move records the movement intent for e's next controller update. A jump
// request stays queued until an update consumes it.
func Move(w donburi.World, e *donburi.Entry, move float64, crouch, jump bool) {
	if !e.Valid() || !e.HasComponent(components.MoveInput) {
		return
	}
	in := components.MoveInput.Get(e)
	in.Move = move
	in.Crouch = crouch
	in.Jump = in.Jump || jump
}

// SetSwimUp records the extra "up" key that only matters while swimming.
func SetSwimUp(e *donburi.Entry, up bool) {
	if e.Valid() && e.HasComponent(components.MoveInput) {
		components.MoveInput.Get(e).SwimUp = up
	}
}

// ControllerConfig converts the global controller tuning into the form the
// movement rules take.
func ControllerConfig() character.Config {
	c := cfg.Controller
	return character.Config{
		RunSpeed:          c.RunSpeed,
		CrouchSpeed:       c.CrouchSpeed,
		MovementSmoothing: c.MovementSmoothing,
		AirControl:        c.AirControl,
		JumpForce:         c.JumpForce,
		JumpLerp:          c.JumpLerp,
		SwimUpForce:       c.SwimUpForce,
		SwimDownForce:     c.SwimDownForce,
	}
}

// UpdateCharacters applies the queued input of every character for one step
// of dt seconds.
func UpdateCharacters(w donburi.World, dt float64) {
	conf := ControllerConfig()
	space := spaceOf(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		body := components.Body.Get(e)
		in := components.MoveInput.Get(e)

		next, out := character.Move(char.State, character.Input{
			Move:   in.Move,
			Crouch: in.Crouch,
			Jump:   in.Jump,
			SwimUp: in.SwimUp,
		}, character.Env{
			VelocityX:      body.VX,
			VelocityY:      body.VY,
			Mass:           body.Mass,
			Dt:             dt,
			CeilingBlocked: char.CeilingBlocked,
		}, conf)
		char.State = next
		in.Jump = false

		body.VX = out.VelocityX
		body.VY = out.VelocityY
		body.AddForce(out.ForceX, out.ForceY)

		if out.Flipped {
			char.ScaleX *= -1
		}

		switch out.Collider {
		case character.ColliderEnable:
			if !char.CrouchEnabled && space != nil {
				space.Add(char.CrouchCollider)
				char.CrouchEnabled = true
			}
		case character.ColliderDisable:
			if char.CrouchEnabled && space != nil {
				space.Remove(char.CrouchCollider)
				char.CrouchEnabled = false
			}
		}

		if out.Events.CrouchChanged {
			OnCrouch.Publish(w, CrouchEvent{Character: e, Crouching: out.Events.Crouching})
		}
	})
}
