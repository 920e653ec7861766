package game

import (
	"sort"

	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/physics"
)

// Stage exposes the player's body, sprite and the camera to the scene
type Stage struct {
	World  *physics.World
	Player *physics.Body
	Camera *Camera
	Skins  *SkinRegistry

	// Frame is the sheet frame last selected by the scene
	Frame int

	npcByBody map[int]int
}

// NewStage registers the player's body in the world
func NewStage(world *physics.World, player *physics.Body, camera *Camera, skins *SkinRegistry) *Stage {
	world.Add(player)
	return &Stage{
		World:     world,
		Player:    player,
		Camera:    camera,
		Skins:     skins,
		npcByBody: make(map[int]int),
	}
}

// AddNPC registers an NPC's body under its index in the scene's NPC list
func (s *Stage) AddNPC(npcIndex int, body *physics.Body) {
	s.npcByBody[s.World.Add(body)] = npcIndex
}

// Position returns the player's world position
func (s *Stage) Position() (float64, float64) {
	return s.Player.Pos.X, s.Player.Pos.Y
}

// SetVelocity sets the player's velocity
func (s *Stage) SetVelocity(vx, vy float64) {
	s.Player.SetVelocity(vx, vy)
}

// SetFrame selects the player's sheet frame
func (s *Stage) SetFrame(frame int) {
	s.Frame = frame
}

// FrameCount returns the frame count of the active sheet
func (s *Stage) FrameCount() int {
	if s.Skins == nil {
		return 0
	}
	return s.Skins.Active().FrameCount()
}

// WorldPoint converts a screen position through the camera
func (s *Stage) WorldPoint(sx, sy float64) (float64, float64) {
	if s.Camera == nil {
		return sx, sy
	}
	return s.Camera.ScreenToWorld(sx, sy)
}

// OverlapQuery returns the NPC indices whose bodies overlap the rectangle
func (s *Stage) OverlapQuery(x, y, w, h float64) []int {
	var out []int
	for _, bi := range s.World.Overlapping(geom.Rect{X: x, Y: y, W: w, H: h}, s.Player) {
		if ni, ok := s.npcByBody[bi]; ok {
			out = append(out, ni)
		}
	}
	sort.Ints(out)
	return out
}
