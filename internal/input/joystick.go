package input

import (
	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/render"
)

// mouseOwner marks a joystick held by the mouse rather than a finger.
const mouseOwner render.TouchID = -1

// Joystick is the on-screen virtual stick. The base never moves; Thumb is the
// offset of the grabbed point from the base and never exceeds Radius.
type Joystick struct {
	Base   geom.Point
	Thumb  geom.Point
	Radius float64
	Region float64 // Presses within this distance of Base grab the stick
	Active bool

	owner render.TouchID
}

// NewJoystick creates a joystick from the touch control settings
func NewJoystick(cfg config.JoystickConfig) *Joystick {
	region := cfg.Region
	if region < cfg.Radius {
		region = cfg.Radius
	}
	return &Joystick{
		Base:   geom.Point{X: cfg.BaseX, Y: cfg.BaseY},
		Radius: cfg.Radius,
		Region: region,
	}
}

// InRegion reports whether a screen point should grab the stick
func (j *Joystick) InRegion(p geom.Point) bool {
	return p.Dist(j.Base) <= j.Region
}

// Press grabs the stick with the given pointer
func (j *Joystick) Press(owner render.TouchID, p geom.Point) {
	j.Active = true
	j.owner = owner
	j.Move(p)
}

// Move drags the thumb toward a screen point, clamped to Radius
func (j *Joystick) Move(p geom.Point) {
	if !j.Active {
		return
	}
	j.Thumb = p.Sub(j.Base).ClampLen(j.Radius)
}

// Release lets go of the stick and recenters the thumb
func (j *Joystick) Release() {
	j.Active = false
	j.Thumb = geom.Point{}
}

// Owner returns the pointer holding the stick
func (j *Joystick) Owner() render.TouchID {
	return j.owner
}
