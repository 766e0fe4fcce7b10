package factory

import (
	"github.com/automoto/symbiotic/archetypes"
	"github.com/automoto/symbiotic/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, viewW, viewH float64, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: at,
		Viewport: math.NewVec2(viewW, viewH),
	})
	return camera
}
