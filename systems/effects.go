package systems

import (
	"github.com/automoto/symbiotic/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	landSquashScale    = 0.7
	landSquashDuration = 0.18 // seconds
)

// StartLandingSquash flattens e and springs it back to full height.
func StartLandingSquash(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.SquashStretch) {
		return
	}
	squash := components.SquashStretch.Get(e)
	squash.Tween = gween.New(landSquashScale, 1, landSquashDuration, ease.OutBack)
	squash.ScaleY = landSquashScale
	squash.ScaleX = 1 / landSquashScale
}

// UpdateSquashStretch advances every running squash tween by dt seconds.
func UpdateSquashStretch(w donburi.World, dt float64) {
	components.SquashStretch.Each(w, func(e *donburi.Entry) {
		squash := components.SquashStretch.Get(e)
		if squash.Tween == nil {
			return
		}
		y, done := squash.Tween.Update(float32(dt))
		squash.ScaleY = float64(y)
		squash.ScaleX = 1 / squash.ScaleY
		if done {
			squash.Tween = nil
			squash.ScaleX, squash.ScaleY = 1, 1
		}
	})
}

// SubscribeLandingSquash squashes characters when they land.
func SubscribeLandingSquash(w donburi.World) {
	OnLanded.Subscribe(w, func(w donburi.World, ev LandedEvent) {
		StartLandingSquash(ev.Character)
	})
}
