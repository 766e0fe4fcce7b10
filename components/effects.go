package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel.
// While Tween is set it drives ScaleY; ScaleX preserves the area.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	Tween          *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
