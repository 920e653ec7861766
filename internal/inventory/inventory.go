// Package inventory provides the player's item list. Items are only ever
// appended; there is no stacking, removal or use.
package inventory

import (
	"fmt"
	"sync"
)

// Item represents a single item in the inventory
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"` // Sprite key for the panel icon
}

// Inventory holds all items for a player
type Inventory struct {
	mu    sync.RWMutex
	items []Item

	// OnChange callback when inventory changes (for UI updates)
	OnChange func()
}

// New creates a new empty inventory
func New() *Inventory {
	return &Inventory{}
}

// Add appends an item
func (inv *Inventory) Add(item Item) {
	inv.mu.Lock()
	inv.items = append(inv.items, item)
	inv.mu.Unlock()

	// Called without the lock so the callback can read the inventory
	inv.notifyChange()
}

// Has checks if an item with the given name is present
func (inv *Inventory) Has(name string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, it := range inv.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Items returns a copy of the items in the order they were added
func (inv *Inventory) Items() []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Count returns the number of items
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// IsEmpty returns true if the inventory has no items
func (inv *Inventory) IsEmpty() bool {
	return inv.Count() == 0
}

// notifyChange calls the OnChange callback if set
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// Debug returns a string representation of the inventory
func (inv *Inventory) Debug() string {
	return fmt.Sprintf("Inventory{%d items}", inv.Count())
}
