package components

import (
	"github.com/yohamta/donburi"
)

// MoveInputData is the movement intent for the next controller update.
// Jump is consumed by the update; the other fields persist until overwritten.
type MoveInputData struct {
	Move   float64
	Crouch bool
	Jump   bool
	SwimUp bool
}

var MoveInput = donburi.NewComponentType[MoveInputData]()
