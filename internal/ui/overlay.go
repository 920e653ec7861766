package ui

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"chosenoffset.com/adventure/internal/dialogue"
	"chosenoffset.com/adventure/internal/inventory"
	"chosenoffset.com/adventure/internal/quest"
	"chosenoffset.com/adventure/internal/render"
)

// TitleCaser capitalizes item and NPC names for display
var TitleCaser = cases.Title(language.English)

// DisplayName returns a name as shown on screen
func DisplayName(name string) string {
	return TitleCaser.String(name)
}

// dialogueFadeSeconds is how long the dialogue panel takes to appear
const dialogueFadeSeconds = 0.2

// Overlay owns the scene's text panels
type Overlay struct {
	Inventory *Panel
	Quests    *Panel
	Dialogue  *Panel

	dialogueFade *gween.Tween
}

// NewOverlay lays the panels out for a screen size
func NewOverlay(screenWidth, screenHeight int) *Overlay {
	inv := NewPanel("Inventory", screenWidth/2-200, screenHeight/2-150, 400, 300)
	inv.Visible = false

	quests := NewPanel("Quests", 16, 64, 250, 200)
	quests.bgColor.A = 180
	quests.textScale = 0.85
	quests.lineHeight = 16

	dlg := NewPanel("", screenWidth/2-300, screenHeight-150, 600, 100)
	dlg.Visible = false

	return &Overlay{
		Inventory: inv,
		Quests:    quests,
		Dialogue:  dlg,
	}
}

// RebuildInventory replaces the inventory panel content
func (o *Overlay) RebuildInventory(inv *inventory.Inventory) {
	items := inv.Items()
	entries := make([]string, 0, len(items))
	for _, it := range items {
		entries = append(entries, fmt.Sprintf("%s: %s", DisplayName(it.Name), it.Description))
	}
	if len(entries) == 0 {
		entries = append(entries, "(empty)")
	}
	o.Inventory.SetLines(entries)
}

// SetInventoryVisible shows or hides the inventory panel
func (o *Overlay) SetInventoryVisible(visible bool) {
	o.Inventory.Visible = visible
}

// RebuildQuests replaces the quest panel content
func (o *Overlay) RebuildQuests(log *quest.Log) {
	quests := log.Quests()
	entries := make([]string, 0, len(quests))
	for _, q := range quests {
		entries = append(entries, "• "+q.Description)
	}
	o.Quests.SetLines(entries)
}

// RebuildDialogue shows the current line, fading the panel in when a
// dialogue opens, or hides the panel when none is active.
func (o *Overlay) RebuildDialogue(m *dialogue.Machine) {
	npc := m.Current()
	if npc == nil {
		o.Dialogue.Visible = false
		o.dialogueFade = nil
		return
	}

	if !o.Dialogue.Visible {
		o.Dialogue.Visible = true
		o.Dialogue.Alpha = 0
		o.dialogueFade = gween.New(0, 1, dialogueFadeSeconds, ease.OutQuad)
	}
	o.Dialogue.Title = DisplayName(npc.Name)
	o.Dialogue.SetLines([]string{m.Line()})
}

// Update advances panel animations by dt seconds
func (o *Overlay) Update(dt float64) {
	if o.dialogueFade == nil {
		return
	}
	alpha, done := o.dialogueFade.Update(float32(dt))
	o.Dialogue.Alpha = float64(alpha)
	if done {
		o.Dialogue.Alpha = 1
		o.dialogueFade = nil
	}
}

// Draw renders every visible panel, dialogue on top
func (o *Overlay) Draw(r render.Renderer, screen render.Image) {
	o.Quests.Draw(r, screen)
	o.Inventory.Draw(r, screen)
	o.Dialogue.Draw(r, screen)
}
