package gamemath

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two boxes share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// CircleOverlapsRect reports whether the circle at (cx, cy) intersects r.
func CircleOverlapsRect(cx, cy, radius float64, r Rect) bool {
	nx := math.Max(r.X, math.Min(cx, r.Right()))
	ny := math.Max(r.Y, math.Min(cy, r.Bottom()))
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= radius*radius
}
