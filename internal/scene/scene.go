// Package scene runs the village scene: it consumes the tick's input events,
// drives dialogue and the registries, and turns held input into velocity and
// walk frames on a render.Stage.
package scene

import (
	"log"
	"time"

	"chosenoffset.com/adventure/internal/anim"
	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/dialogue"
	"chosenoffset.com/adventure/internal/entity"
	"chosenoffset.com/adventure/internal/input"
	"chosenoffset.com/adventure/internal/interaction"
	"chosenoffset.com/adventure/internal/inventory"
	"chosenoffset.com/adventure/internal/motion"
	"chosenoffset.com/adventure/internal/quest"
	"chosenoffset.com/adventure/internal/render"
)

// SkinSwitcher changes the player's sprite sheet
type SkinSwitcher interface {
	SelectSkin(slot int)
	RegenerateSkin()
}

// State is everything the scene mutates during a tick
type State struct {
	NPCs      []*entity.NPC
	Dialogue  *dialogue.Machine
	Inventory *inventory.Inventory
	Quests    *quest.Log
	Joystick  *input.Joystick
	Anim      *anim.State
	Events    *input.Queue

	ShowInventory bool

	Sampler   input.Sampler
	Motion    motion.Resolver
	Interact  interaction.Resolver
	ActorSize float64

	Skins SkinSwitcher

	// OnInventoryToggle is called with the new visibility
	OnInventoryToggle func(visible bool)
	// OnNotice shows a short message to the player
	OnNotice func(text string)
}

// New creates the scene state for the given NPCs
func New(cfg *config.Config, npcs []*entity.NPC) *State {
	return &State{
		NPCs:      npcs,
		Dialogue:  dialogue.NewMachine(npcs),
		Inventory: inventory.New(),
		Quests:    quest.NewLog(StarterQuests...),
		Joystick:  input.NewJoystick(cfg.Joystick),
		Anim:      anim.NewState(cfg.FrameInterval(), cfg.Animation.SettleFactor),
		Events:    &input.Queue{},
		Sampler: input.Sampler{
			Speed:    cfg.Movement.Speed,
			Deadzone: cfg.Joystick.Deadzone,
		},
		Motion:    motion.NewResolver(cfg.Movement.DiagonalFactor),
		Interact:  interaction.Resolver{Radius: cfg.Interaction.Radius},
		ActorSize: cfg.World.ActorSize,
	}
}

// Tick handles queued events, then moves and animates the actor. Held
// movement is ignored while a dialogue is open.
func (s *State) Tick(stage render.Stage, keys input.Keys, delta time.Duration) {
	for _, ev := range s.Events.Drain() {
		s.handle(stage, ev)
	}

	if stage == nil {
		return
	}
	s.updateTouching(stage)

	if s.Dialogue.Active() {
		stage.SetVelocity(0, 0)
		s.Anim.Stop()
		s.Anim.Apply(stage)
		return
	}

	in := s.Sampler.Sample(keys, s.Joystick)
	s.Motion.Apply(stage, in.Velocity)
	s.Anim.Update(in.Direction, in.Moving(), delta)
	s.Anim.Apply(stage)
}

func (s *State) handle(stage render.Stage, ev input.Event) {
	// Touch players have no Space key, so the E button and taps page through
	// an open dialogue instead.
	if ev.Touch && s.Dialogue.Active() &&
		(ev.Kind == input.EventInteract || ev.Kind == input.EventInteractAt) {
		s.Dialogue.Advance()
		return
	}

	switch ev.Kind {
	case input.EventInteract:
		if stage == nil {
			return
		}
		x, y := stage.Position()
		s.InteractFrom(geom.Point{X: x, Y: y}, interaction.TriggerInteract)
	case input.EventInteractAt:
		if stage == nil {
			return
		}
		x, y := stage.WorldPoint(ev.Screen.X, ev.Screen.Y)
		s.InteractFrom(geom.Point{X: x, Y: y}, interaction.TriggerTap)
	case input.EventAdvanceDialogue:
		s.Dialogue.Advance()
	case input.EventToggleInventory:
		s.ToggleInventory()
	case input.EventSelectSkin:
		if s.Skins != nil {
			s.Skins.SelectSkin(ev.Skin)
		}
	case input.EventRegenerateSkin:
		if s.Skins != nil {
			s.Skins.RegenerateSkin()
		}
	}
}

// InteractFrom starts a dialogue with the nearest NPC in range of p. It does
// nothing while a dialogue is open. Reports whether a dialogue started.
func (s *State) InteractFrom(p geom.Point, trigger interaction.TriggerType) bool {
	if s.Dialogue.Active() {
		return false
	}

	i := interaction.Find(s.Interact, p, s.NPCs)
	if i < 0 {
		return false
	}
	log.Printf("Interaction (%s) with %s at (%.0f, %.0f)", trigger, s.NPCs[i].Name, p.X, p.Y)
	return s.startDialogue(s.NPCs[i])
}

func (s *State) startDialogue(npc *entity.NPC) bool {
	if !s.Dialogue.Start(npc) {
		return false
	}

	if npc.ID == ElderID && s.Inventory.IsEmpty() {
		s.Inventory.Add(StarterItem)
		s.notice("Received: " + StarterItem.Name)
	}
	return true
}

// ToggleInventory flips the inventory panel
func (s *State) ToggleInventory() {
	s.ShowInventory = !s.ShowInventory
	if s.OnInventoryToggle != nil {
		s.OnInventoryToggle(s.ShowInventory)
	}
}

// updateTouching marks the NPCs whose boxes overlap the actor this frame
func (s *State) updateTouching(stage render.Stage) {
	for _, n := range s.NPCs {
		n.Touching = false
	}

	x, y := stage.Position()
	half := s.ActorSize / 2
	for _, i := range stage.OverlapQuery(x-half, y-half, s.ActorSize, s.ActorSize) {
		if i >= 0 && i < len(s.NPCs) {
			s.NPCs[i].Touching = true
		}
	}
}

func (s *State) notice(text string) {
	if s.OnNotice != nil {
		s.OnNotice(text)
	}
}
