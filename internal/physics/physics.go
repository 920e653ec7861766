// Package physics is a tiny arcade-style physics world: bodies move at a set
// velocity, the player is kept inside the world bounds, and overlaps are
// reported but never resolved.
package physics

import (
	"chosenoffset.com/adventure/internal/core/geom"
)

// Body is an axis-aligned box centered on Pos
type Body struct {
	Pos    geom.Point
	Vel    geom.Point // Units per second
	W, H   float64
	Static bool // Static bodies never move

	// CollideWorldBounds keeps the body's box inside the world
	CollideWorldBounds bool
}

// Bounds returns the body's box in world space
func (b *Body) Bounds() geom.Rect {
	return geom.RectAround(b.Pos, b.W, b.H)
}

// SetVelocity sets the velocity in units per second
func (b *Body) SetVelocity(vx, vy float64) {
	b.Vel = geom.Point{X: vx, Y: vy}
}

// World owns every body in the scene
type World struct {
	Bounds geom.Rect
	bodies []*Body
}

// NewWorld creates a world of the given size with its origin at (0, 0)
func NewWorld(width, height float64) *World {
	return &World{Bounds: geom.Rect{W: width, H: height}}
}

// Add registers a body and returns its index
func (w *World) Add(b *Body) int {
	w.bodies = append(w.bodies, b)
	return len(w.bodies) - 1
}

// Step integrates every dynamic body over dt seconds
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.CollideWorldBounds {
			w.keepInside(b)
		}
	}
}

func (w *World) keepInside(b *Body) {
	inner := geom.Rect{
		X: w.Bounds.X + b.W/2,
		Y: w.Bounds.Y + b.H/2,
		W: w.Bounds.W - b.W,
		H: w.Bounds.H - b.H,
	}
	if inner.W < 0 || inner.H < 0 {
		return
	}
	b.Pos = inner.Clamp(b.Pos)
}

// Overlapping returns the indices of bodies, other than skip, whose boxes
// overlap r. Pass nil for skip to test every body.
func (w *World) Overlapping(r geom.Rect, skip *Body) []int {
	var hits []int
	for i, b := range w.bodies {
		if b == skip {
			continue
		}
		if b.Bounds().Overlaps(r) {
			hits = append(hits, i)
		}
	}
	return hits
}
