package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the sandbox view centre in world pixels.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Smoothed offset toward the facing direction
	Viewport   math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
