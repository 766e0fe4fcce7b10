package systems

import (
	"github.com/automoto/symbiotic/components"
	"github.com/automoto/symbiotic/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// OverlapCircle returns the objects with any of the mask tags whose bounds
// intersect the circle. Objects owned by exclude are skipped.
func OverlapCircle(space *resolv.Space, cx, cy, radius float64, exclude *donburi.Entry, mask ...string) []*resolv.Object {
	probe := newProbe(cx-radius, cy-radius, radius*2, radius*2)
	return overlap(space, probe, exclude, mask, func(o *resolv.Object) bool {
		return gamemath.CircleOverlapsRect(cx, cy, radius, rectOf(o))
	})
}

// OverlapBox returns the objects with any of the mask tags that share area with r.
func OverlapBox(space *resolv.Space, r gamemath.Rect, exclude *donburi.Entry, mask ...string) []*resolv.Object {
	probe := newProbe(r.X, r.Y, r.W, r.H)
	return overlap(space, probe, exclude, mask, func(o *resolv.Object) bool {
		return r.Overlaps(rectOf(o))
	})
}

// probeMargin pads probes because resolv maps bounds to cells one pixel short
// of the far edge.
const probeMargin = 1.0

func newProbe(x, y, w, h float64) *resolv.Object {
	return resolv.NewObject(x-probeMargin, y-probeMargin, w+2*probeMargin, h+2*probeMargin)
}

// overlap runs the cell-based broad phase with a temporary probe object and
// filters the candidates through narrow.
func overlap(space *resolv.Space, probe *resolv.Object, exclude *donburi.Entry, mask []string, narrow func(*resolv.Object) bool) []*resolv.Object {
	if space == nil {
		return nil
	}
	space.Add(probe)
	check := probe.Check(0, 0, mask...)
	space.Remove(probe)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]struct{}, len(check.Objects))
	for _, o := range check.Objects {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		if ownedBy(o, exclude) || !narrow(o) {
			continue
		}
		hits = append(hits, o)
	}
	return hits
}

func ownedBy(o *resolv.Object, e *donburi.Entry) bool {
	if e == nil {
		return false
	}
	owner, ok := o.Data.(*donburi.Entry)
	return ok && owner.Entity() == e.Entity()
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// spaceOf returns the world's collision space, or nil before one is created.
func spaceOf(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}
