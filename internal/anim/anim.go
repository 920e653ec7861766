// Package anim tracks which way the player faces and steps the three-frame
// walk cycle.
//
// Sprite sheets are laid out as four rows of at least three columns, one row
// per facing in the order down, left, right, up. Column 0 doubles as the
// idle pose.
package anim

import (
	"time"

	"chosenoffset.com/adventure/internal/entity"
)

// WalkFrames is the length of the walk cycle
const WalkFrames = 3

// DefaultInterval is the time each walk frame stays on screen
const DefaultInterval = 60 * time.Millisecond

// FrameSetter receives the frame to display
type FrameSetter interface {
	SetFrame(frame int)
	FrameCount() int
}

// State is the facing and walk cycle of one character
type State struct {
	Facing entity.Direction
	Moving bool
	Frame  int           // Walk cycle position, 0..WalkFrames-1
	Timer  time.Duration // Time since the frame last changed

	Interval     time.Duration // Walk frame duration
	SettleFactor float64       // Fraction of Interval before snapping to idle
}

// NewState creates an idle state facing down
func NewState(interval time.Duration, settle float64) *State {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if settle <= 0 {
		settle = 0.5
	}
	return &State{
		Facing:       entity.DirDown,
		Interval:     interval,
		SettleFactor: settle,
	}
}

// Update advances the state by delta. dir is only taken as the new facing
// while moving, so the character keeps looking the way it last walked.
func (s *State) Update(dir entity.Direction, moving bool, delta time.Duration) {
	s.Moving = moving

	if moving {
		if dir != s.Facing {
			// Restart the stride so the new row never shows a mid-step frame
			s.Facing = dir
			s.Frame = 0
			s.Timer = 0
			return
		}

		s.Timer += delta
		if s.Timer >= s.Interval {
			s.Frame = (s.Frame + 1) % WalkFrames
			s.Timer = 0
		}
		return
	}

	if s.Frame == 0 {
		return
	}
	s.Timer += delta
	if s.Timer >= s.settleAfter() {
		s.Frame = 0
		s.Timer = 0
	}
}

// Stop puts the character into its idle pose immediately
func (s *State) Stop() {
	s.Moving = false
	s.Frame = 0
	s.Timer = 0
}

func (s *State) settleAfter() time.Duration {
	return time.Duration(float64(s.Interval) * s.SettleFactor)
}

// BaseFrame returns the idle frame for a facing
func BaseFrame(d entity.Direction) int {
	switch d {
	case entity.DirLeft:
		return 3
	case entity.DirRight:
		return 6
	case entity.DirUp:
		return 9
	default:
		return 0
	}
}

// DisplayedFrame returns the sheet frame for the current state
func (s *State) DisplayedFrame() int {
	frame := BaseFrame(s.Facing)
	if s.Moving {
		frame += s.Frame
	}
	return frame
}

// Apply shows the current frame on target. Frames beyond the sheet are
// skipped and the previous frame stays visible. Reports whether a frame was
// set.
func (s *State) Apply(target FrameSetter) bool {
	if target == nil {
		return false
	}
	frame := s.DisplayedFrame()
	if frame < 0 || frame >= target.FrameCount() {
		return false
	}
	target.SetFrame(frame)
	return true
}
