package components

import (
	"github.com/yohamta/donburi"
)

// BodyData is a minimal rigid body. Velocities are in pixels per second and
// forces are accumulated for one step, then cleared.
type BodyData struct {
	VX, VY         float64
	ForceX, ForceY float64
	Mass           float64
	GravityScale   float64
	LinearDrag     float64
	OnGround       bool // Set when the last vertical move was stopped from above
}

// AddForce accumulates a force for the next integration step.
func (b *BodyData) AddForce(fx, fy float64) {
	b.ForceX += fx
	b.ForceY += fy
}

var Body = donburi.NewComponentType[BodyData]()
