package character

import (
	"math"

	"github.com/automoto/symbiotic/shared/gamemath"
)

// FixedStep updates the grounded flag from the number of ground contacts found
// by the host's overlap query this tick. Landing refills the jump counter.
func FixedStep(prev State, groundContacts int) (State, Events) {
	next := prev
	var ev Events

	next.Grounded = groundContacts > 0
	if next.Grounded && !prev.Grounded {
		ev.Landed = true
		next.JumpsLeft = next.ExtraJumps + 1
	}
	return next, ev
}

// Move applies one frame of input. It never mutates prev.
func Move(prev State, in Input, env Env, cfg Config) (State, Output) {
	next := prev
	out := Output{
		VelocityX: env.VelocityX,
		VelocityY: env.VelocityY,
	}

	crouch := in.Crouch
	switch {
	case next.Swimming && (in.Jump || in.SwimUp):
		out.ForceY = -cfg.SwimUpForce
	case next.Swimming && crouch:
		out.ForceY = cfg.SwimDownForce
	default:
		// Stay crouched while something is overhead.
		if !crouch && env.CeilingBlocked {
			crouch = true
		}
		if next.Grounded || cfg.AirControl {
			next, out = run(next, out, in.Move, crouch, env, cfg)
		}
	}

	if (next.Grounded || next.JumpsLeft > 0) && in.Jump && !next.Swimming {
		next.Grounded = false
		mass := env.Mass
		if mass <= 0 {
			mass = 1
		}
		out.VelocityY = gamemath.LerpJumpVelocity(out.VelocityY, -cfg.JumpForce/mass*env.Dt, cfg.JumpLerp)
		next.JumpsLeft--
		out.Jumped = true
	}

	return next, out
}

func run(next State, out Output, move float64, crouch bool, env Env, cfg Config) (State, Output) {
	if crouch {
		if !next.Crouching {
			next.Crouching = true
			out.Events.CrouchChanged = true
			out.Events.Crouching = true
		}
		move *= cfg.CrouchSpeed
		out.Collider = ColliderDisable
	} else {
		out.Collider = ColliderEnable
		if next.Crouching {
			next.Crouching = false
			out.Events.CrouchChanged = true
			out.Events.Crouching = false
		}
	}

	target := move * cfg.RunSpeed
	out.VelocityX = gamemath.SmoothDamp(out.VelocityX, target, &next.SmoothVelocityX, cfg.MovementSmoothing, math.Inf(1), env.Dt)

	if (move > 0 && !next.FacingRight) || (move < 0 && next.FacingRight) {
		next.FacingRight = !next.FacingRight
		out.Flipped = true
	}
	return next, out
}
