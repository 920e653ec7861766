// Package quest keeps the list of quests shown in the quest panel.
package quest

import "sync"

// Quest is a single objective
type Quest struct {
	Description string
}

// Log is an append-only list of quests
type Log struct {
	mu     sync.RWMutex
	quests []Quest

	// OnChange callback when a quest is added (for UI updates)
	OnChange func()
}

// NewLog creates a log holding the given quests
func NewLog(descriptions ...string) *Log {
	l := &Log{}
	for _, d := range descriptions {
		l.quests = append(l.quests, Quest{Description: d})
	}
	return l
}

// Add appends a quest
func (l *Log) Add(description string) {
	l.mu.Lock()
	l.quests = append(l.quests, Quest{Description: description})
	l.mu.Unlock()

	if l.OnChange != nil {
		l.OnChange()
	}
}

// Has reports whether a quest with this description exists
func (l *Log) Has(description string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, q := range l.quests {
		if q.Description == description {
			return true
		}
	}
	return false
}

// Quests returns a copy of all quests in insertion order
func (l *Log) Quests() []Quest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Quest, len(l.quests))
	copy(out, l.quests)
	return out
}

// Count returns the number of quests
func (l *Log) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.quests)
}
