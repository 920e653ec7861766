package scene

import (
	"chosenoffset.com/adventure/internal/entity"
	"chosenoffset.com/adventure/internal/inventory"
)

// ElderID identifies the NPC who hands out the starter item
const ElderID = "elder"

// NPCData describes one NPC placed at scene start
type NPCData struct {
	ID     string
	Name   string
	X, Y   float64
	Sprite string // Placeholder sprite key
	Lines  []string
}

// DefaultNPCs is the village cast, in interaction tie-break order
var DefaultNPCs = []NPCData{
	{
		ID: ElderID, Name: "village elder", X: 200, Y: 200, Sprite: "elder",
		Lines: []string{
			"Greetings, hero!",
			"Welcome to our village.",
			"If you ever need help, just ask.",
		},
	},
	{
		ID: "merchant", Name: "merchant", X: 600, Y: 400, Sprite: "merchant",
		Lines: []string{
			"I have plenty of fine goods!",
			"There are some special items too, take a look.",
			"Come again soon!",
		},
	},
	{
		ID: "traveler", Name: "traveler", X: 300, Y: 500, Sprite: "traveler",
		Lines: []string{
			"I have come from far away.",
			"This village looks truly peaceful.",
			"I heard many good stories on my journey.",
		},
	},
}

// StarterItem is granted by the elder while the inventory is empty
var StarterItem = inventory.Item{
	Name:        "healing potion",
	Description: "A potion that restores health.",
	Icon:        "potion",
}

// StarterQuests are in the quest log when the scene opens
var StarterQuests = []string{
	"Talk to the villagers",
	"Check your inventory (I key)",
}

// BuildNPCs creates NPCs from a data table, preserving its order
func BuildNPCs(data []NPCData) []*entity.NPC {
	npcs := make([]*entity.NPC, 0, len(data))
	for _, d := range data {
		npc := entity.NewNPC(d.ID, d.Name, d.X, d.Y, d.Lines...)
		if d.Sprite != "" {
			npc.SpriteName = d.Sprite
		}
		npcs = append(npcs, npc)
	}
	return npcs
}
