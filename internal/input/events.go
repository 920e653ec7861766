package input

import "chosenoffset.com/adventure/internal/core/geom"

// EventKind identifies a discrete input action
type EventKind int

const (
	EventInteract        EventKind = iota // E key or on-screen E button
	EventInteractAt                       // Tap on the world at Screen
	EventAdvanceDialogue                  // Space
	EventToggleInventory                  // I key or on-screen I button
	EventSelectSkin                       // Digit keys, Skin holds the slot
	EventRegenerateSkin                   // R key
)

// String returns a readable name for debug logs
func (k EventKind) String() string {
	switch k {
	case EventInteract:
		return "interact"
	case EventInteractAt:
		return "interact_at"
	case EventAdvanceDialogue:
		return "advance_dialogue"
	case EventToggleInventory:
		return "toggle_inventory"
	case EventSelectSkin:
		return "select_skin"
	case EventRegenerateSkin:
		return "regenerate_skin"
	default:
		return "unknown"
	}
}

// Event is a single discrete input action
type Event struct {
	Kind   EventKind
	Skin   int        // Zero-based slot for EventSelectSkin
	Screen geom.Point // Screen position for EventInteractAt
	Touch  bool       // Came from an on-screen button or a tap
}

// Queue collects events during input capture and hands them to the scene
// once per tick.
type Queue struct {
	events []Event
	spare  []Event
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue. The returned slice
// is only valid until the next call to Drain; events pushed while handling
// it are delivered on the next drain.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = q.spare[:0]
	q.spare = out
	return out
}
