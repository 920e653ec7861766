package geom

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestClampLen(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		max  float64
		want float64
	}{
		{"inside", Point{10, 0}, 50, 10},
		{"on edge", Point{30, 40}, 50, 50},
		{"outside", Point{300, 400}, 50, 50},
		{"zero", Point{}, 50, 0},
	}

	for _, tt := range tests {
		got := tt.in.ClampLen(tt.max).Len()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected length %v, got %v", tt.name, tt.want, got)
		}
	}

	// Direction must be preserved
	c := Point{-300, 400}.ClampLen(50)
	if math.Abs(c.X+30) > 1e-9 || math.Abs(c.Y-40) > 1e-9 {
		t.Errorf("Expected (-30, 40), got (%v, %v)", c.X, c.Y)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if !a.Overlaps(Rect{5, 5, 10, 10}) {
		t.Error("Expected overlapping rects to overlap")
	}
	if a.Overlaps(Rect{10, 0, 10, 10}) {
		t.Error("Touching edges should not count as overlap")
	}
	if a.Overlaps(Rect{20, 20, 5, 5}) {
		t.Error("Distant rects should not overlap")
	}
}

func TestRectClampAndContains(t *testing.T) {
	r := Rect{0, 0, 100, 50}
	p := r.Clamp(Point{-5, 80})
	if p.X != 0 || p.Y != 50 {
		t.Errorf("Expected (0, 50), got (%v, %v)", p.X, p.Y)
	}
	if !r.Contains(p) {
		t.Error("Clamped point should be contained")
	}
	if c := RectAround(Point{10, 10}, 4, 6).Center(); c.X != 10 || c.Y != 10 {
		t.Errorf("Expected center (10, 10), got (%v, %v)", c.X, c.Y)
	}
}
