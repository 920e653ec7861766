// Package input turns raw device state into per-frame movement intents and
// a queue of discrete events that the scene consumes once per tick.
package input

import (
	"math"

	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/entity"
)

// Keys is a snapshot of the movement keys held this frame
type Keys struct {
	Left, Right, Up, Down bool
}

// Intent is the desired motion for one frame before normalization
type Intent struct {
	Velocity  geom.Point
	Direction entity.Direction
}

// Moving reports whether the intent asks for any motion
func (i Intent) Moving() bool {
	return i.Velocity.X != 0 || i.Velocity.Y != 0
}

// Sampler converts keys and joystick displacement into an Intent
type Sampler struct {
	Speed    float64 // Units per second along one axis
	Deadzone float64 // Joystick offsets at or below this are ignored per axis
}

// Sample resolves the intent for this frame. The keyboard is evaluated
// first, horizontal then vertical, so right beats left, down beats up and
// the vertical axis names the direction when both axes are held. An active
// joystick then overrides each axis it displaces past the deadzone.
func (s Sampler) Sample(keys Keys, joy *Joystick) Intent {
	in := Intent{Direction: entity.DirDown}

	if keys.Left {
		in.Velocity.X = -s.Speed
		in.Direction = entity.DirLeft
	}
	if keys.Right {
		in.Velocity.X = s.Speed
		in.Direction = entity.DirRight
	}
	if keys.Up {
		in.Velocity.Y = -s.Speed
		in.Direction = entity.DirUp
	}
	if keys.Down {
		in.Velocity.Y = s.Speed
		in.Direction = entity.DirDown
	}

	if joy == nil || !joy.Active || joy.Radius <= 0 {
		return in
	}

	if dx := joy.Thumb.X; math.Abs(dx) > s.Deadzone {
		in.Velocity.X = dx / joy.Radius * s.Speed
		if dx < 0 {
			in.Direction = entity.DirLeft
		} else {
			in.Direction = entity.DirRight
		}
	}
	if dy := joy.Thumb.Y; math.Abs(dy) > s.Deadzone {
		in.Velocity.Y = dy / joy.Radius * s.Speed
		if dy < 0 {
			in.Direction = entity.DirUp
		} else {
			in.Direction = entity.DirDown
		}
	}

	return in
}
