package input

import (
	"log"

	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/render"
)

// Button is a round on-screen button that emits an event when tapped
type Button struct {
	Label  string
	Center geom.Point
	Radius float64
	Event  EventKind
}

// Contains reports whether a screen point hits the button
func (b Button) Contains(p geom.Point) bool {
	return p.Dist(b.Center) <= b.Radius
}

// Capture polls the device once per tick. Held movement keys are returned as
// a snapshot; everything else becomes an Event on the queue.
type Capture struct {
	Input    render.InputManager
	Joystick *Joystick
	Buttons  []Button

	// Touch enables the on-screen controls. It switches on by itself the
	// first time a touch is seen.
	Touch bool
}

// Poll reads this frame's input
func (c *Capture) Poll(q *Queue) Keys {
	im := c.Input
	keys := Keys{
		Left:  im.IsKeyPressed(render.KeyLeft) || im.IsKeyPressed(render.KeyA),
		Right: im.IsKeyPressed(render.KeyRight) || im.IsKeyPressed(render.KeyD),
		Up:    im.IsKeyPressed(render.KeyUp) || im.IsKeyPressed(render.KeyW),
		Down:  im.IsKeyPressed(render.KeyDown) || im.IsKeyPressed(render.KeyS),
	}

	if im.IsKeyJustPressed(render.KeyI) {
		q.Push(Event{Kind: EventToggleInventory})
	}
	if im.IsKeyJustPressed(render.KeyE) {
		q.Push(Event{Kind: EventInteract})
	}
	if im.IsKeyJustPressed(render.KeySpace) {
		q.Push(Event{Kind: EventAdvanceDialogue})
	}
	for slot, key := range render.SkinKeys {
		if im.IsKeyJustPressed(key) {
			q.Push(Event{Kind: EventSelectSkin, Skin: slot})
		}
	}
	if im.IsKeyJustPressed(render.KeyR) {
		q.Push(Event{Kind: EventRegenerateSkin})
	}

	c.pollPointers(q)
	return keys
}

func (c *Capture) pollPointers(q *Queue) {
	im := c.Input

	if !c.Touch && len(im.TouchIDs()) > 0 {
		c.Touch = true
		log.Println("Touch input detected, enabling on-screen controls")
	}
	if !c.Touch {
		return
	}

	// Update a held stick before handling new presses so a finger lifted
	// and another placed in the same frame is handled in order.
	if j := c.Joystick; j != nil && j.Active {
		if j.Owner() == mouseOwner {
			if im.IsMouseButtonJustReleased(render.MouseButtonLeft) || !im.IsMouseButtonPressed(render.MouseButtonLeft) {
				j.Release()
			} else {
				x, y := im.GetCursorPosition()
				j.Move(geom.Point{X: float64(x), Y: float64(y)})
			}
		} else if im.IsTouchJustReleased(j.Owner()) {
			j.Release()
		} else {
			x, y := im.TouchPosition(j.Owner())
			j.Move(geom.Point{X: float64(x), Y: float64(y)})
		}
	}

	for _, id := range im.JustPressedTouchIDs() {
		x, y := im.TouchPosition(id)
		c.press(q, id, geom.Point{X: float64(x), Y: float64(y)})
	}

	// The mouse stands in for a finger so touch controls work on desktop
	if im.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := im.GetCursorPosition()
		c.press(q, mouseOwner, geom.Point{X: float64(x), Y: float64(y)})
	}
}

func (c *Capture) press(q *Queue, owner render.TouchID, p geom.Point) {
	for _, b := range c.Buttons {
		if b.Contains(p) {
			q.Push(Event{Kind: b.Event, Touch: true})
			return
		}
	}

	if j := c.Joystick; j != nil && j.InRegion(p) {
		if !j.Active {
			j.Press(owner, p)
		}
		return
	}

	q.Push(Event{Kind: EventInteractAt, Screen: p, Touch: true})
}
