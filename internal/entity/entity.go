// Package entity provides the characters that live in the scene: the
// facing directions shared by the player and the NPCs the player talks to.
package entity

import "chosenoffset.com/adventure/internal/core/geom"

// Direction represents the cardinal direction a character faces.
// The zero value is DirDown, the idle pose.
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirUp
)

// String returns the lowercase name used in logs
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// NPC is a non-player character with a fixed script
type NPC struct {
	ID         string     // Stable identifier used by scripted effects (e.g. "elder")
	Name       string     // Display name
	Pos        geom.Point // World position (center)
	Lines      []string   // Dialogue lines in order
	Line       int        // Index of the line being shown while talking
	SpriteName string     // Placeholder sprite key

	// Visual state
	Highlighted bool // Currently talking to the player
	Touching    bool // Player's box overlaps this NPC this frame
}

// NewNPC creates an NPC at the given position
func NewNPC(id, name string, x, y float64, lines ...string) *NPC {
	return &NPC{
		ID:         id,
		Name:       name,
		Pos:        geom.Point{X: x, Y: y},
		Lines:      lines,
		SpriteName: id,
	}
}

// Position returns the NPC's world position
func (n *NPC) Position() geom.Point {
	return n.Pos
}

// CurrentLine returns the line being shown, or "" if the index is out of range
func (n *NPC) CurrentLine() string {
	if n.Line < 0 || n.Line >= len(n.Lines) {
		return ""
	}
	return n.Lines[n.Line]
}
