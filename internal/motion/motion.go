// Package motion resolves a frame's movement intent into the velocity applied
// to the player's body.
package motion

import "chosenoffset.com/adventure/internal/core/geom"

// DefaultDiagonalFactor approximates 1/sqrt(2) so diagonal movement is not
// faster than movement along one axis.
const DefaultDiagonalFactor = 0.707

// Body is anything whose velocity can be set
type Body interface {
	SetVelocity(vx, vy float64)
}

// Resolver normalizes raw intent velocities
type Resolver struct {
	DiagonalFactor float64
}

// NewResolver creates a resolver, using the default factor when factor <= 0
func NewResolver(factor float64) Resolver {
	if factor <= 0 {
		factor = DefaultDiagonalFactor
	}
	return Resolver{DiagonalFactor: factor}
}

// Resolve scales both components by the diagonal factor when both are
// non-zero and returns everything else unchanged.
func (r Resolver) Resolve(raw geom.Point) geom.Point {
	if raw.X != 0 && raw.Y != 0 {
		return raw.Scale(r.DiagonalFactor)
	}
	return raw
}

// Apply resolves raw and sets it as the body's velocity
func (r Resolver) Apply(body Body, raw geom.Point) geom.Point {
	v := r.Resolve(raw)
	if body != nil {
		body.SetVelocity(v.X, v.Y)
	}
	return v
}
