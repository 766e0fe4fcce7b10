package systems

import (
	"math"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/gamemath"
	"github.com/automoto/symbiotic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateBodies integrates forces, gravity and drag for every body, then moves
// it through the collision space.
func UpdateBodies(w donburi.World, dt float64) {
	components.Body.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		integrate(body, dt)

		if !e.HasComponent(components.Object) {
			return
		}
		colliders := bodyColliders(e)
		moveAndCollide(e, body, colliders, dt)
	})
}

func integrate(body *components.BodyData, dt float64) {
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}

	body.VX += body.ForceX / mass * dt
	body.VY += (cfg.Physics.Gravity*body.GravityScale + body.ForceY/mass) * dt
	body.ForceX, body.ForceY = 0, 0

	body.VX = gamemath.ApplyDrag(body.VX, body.LinearDrag, dt)
	body.VY = gamemath.ApplyDrag(body.VY, body.LinearDrag, dt)

	if body.VY > cfg.Physics.MaxFallSpeed {
		body.VY = cfg.Physics.MaxFallSpeed
	}
}

// bodyColliders lists the objects that move with e: the main object plus the
// crouch collider of a character. The crouch collider only blocks while enabled.
func bodyColliders(e *donburi.Entry) []*resolv.Object {
	objs := []*resolv.Object{components.Object.Get(e).Object}
	if e.HasComponent(components.Character) {
		if char := components.Character.Get(e); char.CrouchCollider != nil {
			objs = append(objs, char.CrouchCollider)
		}
	}
	return objs
}

func moveAndCollide(e *donburi.Entry, body *components.BodyData, colliders []*resolv.Object, dt float64) {
	blocking := blockingColliders(e, colliders)

	dx := body.VX * dt
	if dx != 0 {
		allowed := sweep(blocking, dx, 0)
		if allowed != dx {
			body.VX = 0
		}
		for _, o := range colliders {
			o.X += allowed
		}
	}

	body.OnGround = false
	dy := body.VY * dt
	if dy != 0 {
		allowed := sweep(blocking, 0, dy)
		if allowed != dy {
			body.OnGround = dy > 0
			body.VY = 0
		}
		for _, o := range colliders {
			o.Y += allowed
		}
	}

	for _, o := range colliders {
		if o.Space != nil {
			o.Update()
		}
	}
}

func blockingColliders(e *donburi.Entry, colliders []*resolv.Object) []*resolv.Object {
	if !e.HasComponent(components.Character) {
		return colliders
	}
	char := components.Character.Get(e)
	out := colliders[:0:0]
	for _, o := range colliders {
		if o == char.CrouchCollider && !char.CrouchEnabled {
			continue
		}
		out = append(out, o)
	}
	return out
}

// sweep returns how far the colliders can move along one axis before touching
// ground. Exactly one of dx, dy is non-zero.
func sweep(colliders []*resolv.Object, dx, dy float64) float64 {
	want := dx + dy
	allowed := want
	for _, c := range colliders {
		check := c.Check(dx, dy, tags.ResolvGround)
		if check == nil {
			continue
		}
		// Check returns everything in the cells it touches, so drop objects
		// beside or behind the path before taking the contact.
		for _, o := range check.ObjectsByTags(tags.ResolvGround) {
			contact := check.ContactWithObject(o)
			var d float64
			if dx != 0 {
				if !spansOverlap(c.Y, c.H, o.Y, o.H) || behind(c.X, c.W, o.X, o.W, dx) {
					continue
				}
				d = contact.X()
			} else {
				if !spansOverlap(c.X, c.W, o.X, o.W) || behind(c.Y, c.H, o.Y, o.H, dy) {
					continue
				}
				d = contact.Y()
			}
			if d*want < 0 {
				d = 0
			}
			allowed = closer(allowed, d)
		}
	}
	return allowed
}

func spansOverlap(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}

// behind reports whether b lies entirely on the side a is moving away from.
func behind(a, aLen, b, bLen, d float64) bool {
	if d > 0 {
		return b+bLen <= a
	}
	return b >= a+aLen
}

// closer returns whichever of a and b is nearer to zero. Both share a sign.
func closer(a, b float64) float64 {
	if math.Abs(b) < math.Abs(a) {
		return b
	}
	return a
}
