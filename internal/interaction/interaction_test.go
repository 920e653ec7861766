package interaction

import (
	"math"
	"testing"

	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/entity"
)

func npcAt(id string, x, y float64) *entity.NPC {
	return entity.NewNPC(id, id, x, y, "hello")
}

func TestNearestNoneInRange(t *testing.T) {
	npcs := []*entity.NPC{npcAt("far", 100, 100)}
	if got := Nearest(geom.Point{}, npcs, 50); got != -1 {
		t.Errorf("Expected no target, got %d", got)
	}
}

func TestNearestBoundary(t *testing.T) {
	tests := []struct {
		dist float64
		want int
	}{
		{49, 0},
		{49.999, 0},
		{51, -1},
	}
	for _, tt := range tests {
		// Place the NPC on a diagonal so the distance is not axis aligned
		c := tt.dist / math.Sqrt2
		npcs := []*entity.NPC{npcAt("npc", c, c)}
		if got := Nearest(geom.Point{}, npcs, 50); got != tt.want {
			t.Errorf("Distance %v: expected %d, got %d", tt.dist, tt.want, got)
		}
	}

	// Axis aligned exact values
	if got := Nearest(geom.Point{}, []*entity.NPC{npcAt("a", 50, 0)}, 50); got != -1 {
		t.Errorf("Expected NPC at exactly 50 to be ignored, got %d", got)
	}
	if got := Nearest(geom.Point{}, []*entity.NPC{npcAt("a", 49, 0)}, 50); got != 0 {
		t.Errorf("Expected NPC at 49 to be found, got %d", got)
	}
	if got := Nearest(geom.Point{}, []*entity.NPC{npcAt("a", 0, 51)}, 50); got != -1 {
		t.Errorf("Expected NPC at 51 to be ignored, got %d", got)
	}
}

func TestNearestPicksClosest(t *testing.T) {
	npcs := []*entity.NPC{
		npcAt("a", 40, 0),
		npcAt("b", 0, 10),
		npcAt("c", 30, 30),
	}
	if got := Nearest(geom.Point{}, npcs, 50); got != 1 {
		t.Errorf("Expected closest NPC b, got %d", got)
	}
}

func TestNearestTieGoesToFirst(t *testing.T) {
	npcs := []*entity.NPC{
		npcAt("a", 20, 0),
		npcAt("b", -20, 0),
		npcAt("c", 0, 20),
	}
	if got := Nearest(geom.Point{}, npcs, 50); got != 0 {
		t.Errorf("Expected first of tied NPCs, got %d", got)
	}
}

func TestFind(t *testing.T) {
	r := Resolver{Radius: 50}
	npcs := []*entity.NPC{npcAt("a", 200, 0), npcAt("b", 210, 10)}
	if got := Find(r, geom.Point{X: 205, Y: 5}, npcs); got != 0 {
		t.Errorf("Expected tie at equal distance to pick a, got %d", got)
	}
	if got := Find(r, geom.Point{}, npcs); got != -1 {
		t.Errorf("Expected no target, got %d", got)
	}
}
