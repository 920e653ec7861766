// Package geom holds the small amount of 2D math shared by movement,
// interaction and the physics layer.
package geom

import "math"

// Point represents a 2D point or vector in world units
type Point struct {
	X, Y float64
}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale returns p multiplied by s
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Len returns the Euclidean length of p
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and o
func (p Point) Dist(o Point) float64 {
	return p.Sub(o).Len()
}

// ClampLen shortens p so that its length is at most max.
// Vectors already inside the limit are returned unchanged.
func (p Point) ClampLen(max float64) Point {
	l := p.Len()
	if l <= max || l == 0 {
		return p
	}
	return p.Scale(max / l)
}

// Rect is an axis-aligned rectangle; X and Y are the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a rectangle of the given size centered on c
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside or on the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Overlaps reports whether the two rectangles share any interior area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Clamp moves p to the closest point inside the rectangle
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}
