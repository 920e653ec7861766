package physics

import (
	"testing"

	"chosenoffset.com/adventure/internal/core/geom"
)

func TestStepMovesDynamicBodies(t *testing.T) {
	w := NewWorld(1000, 1000)
	player := &Body{Pos: geom.Point{X: 100, Y: 100}, W: 20, H: 20}
	rock := &Body{Pos: geom.Point{X: 300, Y: 300}, W: 20, H: 20, Static: true}
	w.Add(player)
	w.Add(rock)

	player.SetVelocity(160, -80)
	rock.SetVelocity(160, 0)
	w.Step(0.5)

	if player.Pos.X != 180 || player.Pos.Y != 60 {
		t.Errorf("Expected player at (180, 60), got %v", player.Pos)
	}
	if rock.Pos.X != 300 {
		t.Errorf("Static body moved to %v", rock.Pos)
	}
}

func TestStepKeepsBodyInsideWorld(t *testing.T) {
	w := NewWorld(200, 100)
	b := &Body{Pos: geom.Point{X: 20, Y: 50}, W: 20, H: 20, CollideWorldBounds: true}
	w.Add(b)

	b.SetVelocity(-1000, 1000)
	w.Step(1)
	if b.Pos.X != 10 || b.Pos.Y != 90 {
		t.Errorf("Expected body clamped to (10, 90), got %v", b.Pos)
	}
}

func TestOverlapping(t *testing.T) {
	w := NewWorld(1000, 1000)
	player := &Body{Pos: geom.Point{X: 100, Y: 100}, W: 24, H: 24}
	near := &Body{Pos: geom.Point{X: 110, Y: 110}, W: 24, H: 24, Static: true}
	far := &Body{Pos: geom.Point{X: 400, Y: 400}, W: 24, H: 24, Static: true}
	w.Add(near)
	w.Add(far)
	w.Add(player)

	hits := w.Overlapping(player.Bounds(), player)
	if len(hits) != 1 || hits[0] != 0 {
		t.Errorf("Expected only body 0 to overlap, got %v", hits)
	}

	if hits := w.Overlapping(geom.Rect{X: 900, Y: 900, W: 10, H: 10}, nil); len(hits) != 0 {
		t.Errorf("Expected no overlaps, got %v", hits)
	}
}
