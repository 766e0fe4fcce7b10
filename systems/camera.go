package systems

import (
	"math"

	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/tags"
	"github.com/yohamta/donburi"
)

const (
	cameraFollowSmoothing = 0.12
	cameraLookAhead       = 24.0
	cameraLookSmoothing   = 0.05
	cameraMoveThreshold   = 10.0
)

// UpdateCamera follows the first character, leading slightly in the facing
// direction and staying inside the level bounds.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	charEntry, ok := tags.Character.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(charEntry)
	char := components.Character.Get(charEntry)
	body := components.Body.Get(charEntry)

	// Only update look-ahead while moving so the view settles when idle.
	if math.Abs(body.VX) > cameraMoveThreshold {
		target := char.ScaleX * cameraLookAhead
		camera.LookAheadX += (target - camera.LookAheadX) * cameraLookSmoothing
	}

	targetX := obj.X + obj.W/2 + camera.LookAheadX
	targetY := obj.Y + obj.H/2

	if levelEntry, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil {
			targetX = clampView(targetX, camera.Viewport.X, float64(lvl.MapWidth))
			targetY = clampView(targetY, camera.Viewport.Y, float64(lvl.MapHeight))
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * cameraFollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraFollowSmoothing
}

// clampView keeps a view of size view centred on v inside [0, size]. Levels
// smaller than the view are centred.
func clampView(v, view, size float64) float64 {
	if size <= view {
		return size / 2
	}
	return math.Max(view/2, math.Min(size-view/2, v))
}
