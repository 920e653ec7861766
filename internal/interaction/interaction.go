// Package interaction finds what the player is trying to talk to when they
// press the interact key or tap the world.
package interaction

import (
	"chosenoffset.com/adventure/internal/core/geom"
)

// TriggerType defines what initiated an interaction
type TriggerType string

const (
	TriggerInteract TriggerType = "interact" // Interact key (E) or on-screen button
	TriggerTap      TriggerType = "tap"      // Tap on the world outside the controls
)

// Target is anything with a world position
type Target interface {
	Position() geom.Point
}

// Resolver selects the nearest target within a radius
type Resolver struct {
	Radius float64 // Targets must be strictly closer than this
}

// Nearest returns the index of the closest target to from that lies strictly
// within the radius, or -1 if none does. Ties go to the earliest target.
func Nearest[T Target](from geom.Point, targets []T, radius float64) int {
	best := -1
	bestDist := radius
	for i, t := range targets {
		d := from.Dist(t.Position())
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Find returns the index of the target to interact with, or -1
func Find[T Target](r Resolver, from geom.Point, targets []T) int {
	return Nearest(from, targets, r.Radius)
}
