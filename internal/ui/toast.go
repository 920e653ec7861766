package ui

import (
	"image/color"
	"log"

	"chosenoffset.com/adventure/internal/render"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Toasts is a stack of short-lived messages
type Toasts struct {
	Messages []Message
	Duration float64
}

// NewToasts creates an empty stack with a three second lifetime
func NewToasts() *Toasts {
	return &Toasts{Duration: 3.0}
}

// Show adds a new message to be displayed on screen.
func (t *Toasts) Show(text string) {
	t.Messages = append(t.Messages, Message{
		Text:     text,
		TimeLeft: t.Duration,
		MaxTime:  t.Duration,
	})
	log.Printf("Message: %s", text)
}

// Update expires messages after dt seconds
func (t *Toasts) Update(dt float64) {
	var active []Message
	for _, msg := range t.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	t.Messages = active
}

// Draw stacks the messages centered near the top of the screen. Each one
// fades out over the last second of its life.
func (t *Toasts) Draw(r render.Renderer, screen render.Image) {
	w, _ := screen.Size()
	y := 80
	for _, msg := range t.Messages {
		alpha := msg.TimeLeft
		if alpha > 1 {
			alpha = 1
		}
		tw, th := r.MeasureText(msg.Text, 1)
		x := (w - tw) / 2
		r.FillRect(screen, float32(x-6), float32(y-4), float32(tw+12), float32(th+8), fade(color.RGBA{0, 0, 0, 180}, alpha))
		r.DrawText(screen, msg.Text, x, y, fade(color.RGBA{255, 255, 255, 255}, alpha), 1)
		y += th + 12
	}
}
