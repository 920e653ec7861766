package motion

import (
	"math"
	"testing"

	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/entity"
	"chosenoffset.com/adventure/internal/input"
)

type recordingBody struct {
	vx, vy float64
	calls  int
}

func (b *recordingBody) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
	b.calls++
}

func TestSingleAxisFullSpeed(t *testing.T) {
	r := NewResolver(0.707)
	s := input.Sampler{Speed: 160, Deadzone: 10}

	for _, keys := range []input.Keys{{Left: true}, {Right: true}, {Up: true}, {Down: true}} {
		v := r.Resolve(s.Sample(keys, nil).Velocity)
		if math.Abs(v.Len()-160) > 1e-9 {
			t.Errorf("%+v: expected magnitude 160, got %v", keys, v.Len())
		}
		if v.X != 0 && v.Y != 0 {
			t.Errorf("%+v: expected perpendicular component 0, got %v", keys, v)
		}
	}
}

func TestDiagonalNormalized(t *testing.T) {
	r := NewResolver(0.707)
	s := input.Sampler{Speed: 160, Deadzone: 10}

	tests := []input.Keys{
		{Left: true, Up: true},
		{Left: true, Down: true},
		{Right: true, Up: true},
		{Right: true, Down: true},
	}
	for _, keys := range tests {
		v := r.Resolve(s.Sample(keys, nil).Velocity)
		if math.Abs(math.Abs(v.X)-160*0.707) > 1e-9 || math.Abs(math.Abs(v.Y)-160*0.707) > 1e-9 {
			t.Errorf("%+v: expected %v per axis, got %v", keys, 160*0.707, v)
		}
	}
}

func TestApplySetsVelocity(t *testing.T) {
	r := NewResolver(0)
	if r.DiagonalFactor != DefaultDiagonalFactor {
		t.Fatalf("Expected default factor, got %v", r.DiagonalFactor)
	}

	body := &recordingBody{}
	r.Apply(body, geom.Point{X: 160, Y: 0})
	if body.vx != 160 || body.vy != 0 || body.calls != 1 {
		t.Errorf("Unexpected body state %+v", body)
	}

	r.Apply(body, geom.Point{})
	if body.vx != 0 || body.vy != 0 {
		t.Errorf("Expected body stopped, got %+v", body)
	}

	// A nil body is tolerated
	r.Apply(nil, geom.Point{X: 1, Y: 1})
}

func TestJoystickDiagonal(t *testing.T) {
	r := NewResolver(0.707)
	s := input.Sampler{Speed: 160, Deadzone: 10}
	joy := &input.Joystick{Radius: 50, Region: 80}
	joy.Press(0, geom.Point{X: 50, Y: 50})

	in := s.Sample(input.Keys{}, joy)
	if in.Direction != entity.DirDown {
		t.Errorf("Expected vertical label, got %v", in.Direction)
	}
	v := r.Resolve(in.Velocity)
	// Thumb clamped to length 50 along the diagonal, so each axis is 50/sqrt2
	want := 50 / math.Sqrt2 / 50 * 160 * 0.707
	if math.Abs(v.X-want) > 1e-9 || math.Abs(v.Y-want) > 1e-9 {
		t.Errorf("Expected %v per axis, got %v", want, v)
	}
}
