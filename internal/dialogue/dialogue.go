// Package dialogue runs conversations with NPCs. A conversation walks an
// NPC's lines in order and ends after the last one; only one can be active.
package dialogue

import (
	"log"

	"chosenoffset.com/adventure/internal/entity"
)

// Machine is the dialogue state machine. The zero value is idle and knows no
// NPCs; use NewMachine so highlights can be cleared when a dialogue ends.
type Machine struct {
	npcs    []*entity.NPC
	current *entity.NPC

	// OnChange is called after every transition (start, advance, end)
	OnChange func()
}

// NewMachine creates an idle machine for the scene's NPCs
func NewMachine(npcs []*entity.NPC) *Machine {
	return &Machine{npcs: npcs}
}

// Active reports whether a dialogue is in progress
func (m *Machine) Active() bool {
	return m.current != nil
}

// Current returns the NPC being talked to, or nil when idle
func (m *Machine) Current() *entity.NPC {
	return m.current
}

// Line returns the line being shown, or "" when idle
func (m *Machine) Line() string {
	if m.current == nil {
		return ""
	}
	return m.current.CurrentLine()
}

// Start begins a dialogue at the NPC's first line. It does nothing and
// returns false if a dialogue is already active or the NPC has nothing to say.
func (m *Machine) Start(npc *entity.NPC) bool {
	if m.current != nil || npc == nil || len(npc.Lines) == 0 {
		return false
	}

	m.current = npc
	npc.Line = 0
	npc.Highlighted = true
	log.Printf("Dialogue started with %s (%d lines)", npc.Name, len(npc.Lines))

	m.notifyChange()
	return true
}

// Advance moves to the next line, ending the dialogue after the last one.
// Reports whether this call ended the dialogue.
func (m *Machine) Advance() bool {
	if m.current == nil {
		return false
	}

	if next := m.current.Line + 1; next < len(m.current.Lines) {
		m.current.Line = next
		m.notifyChange()
		return false
	}

	log.Printf("Dialogue with %s ended", m.current.Name)
	m.current = nil
	for _, n := range m.npcs {
		n.Highlighted = false
	}

	m.notifyChange()
	return true
}

func (m *Machine) notifyChange() {
	if m.OnChange != nil {
		m.OnChange()
	}
}
