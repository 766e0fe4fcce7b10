package gamemath

import "testing"

func TestCircleOverlapsRect(t *testing.T) {
	ground := Rect{X: 0, Y: 100, W: 64, H: 16}
	cases := []struct {
		name   string
		cx, cy float64
		r      float64
		want   bool
	}{
		{"resting_on_top", 32, 98, 3, true},
		{"just_above", 32, 96, 3, false},
		{"inside", 10, 110, 1, true},
		{"corner_miss", -3, 97, 3, false},
		{"corner_hit", -2, 99, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CircleOverlapsRect(c.cx, c.cy, c.r, ground); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Fatalf("expected overlap")
	}
	if a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatalf("touching edges should not overlap")
	}
}
