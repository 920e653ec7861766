package ui

import (
	"image/color"

	"chosenoffset.com/adventure/internal/input"
	"chosenoffset.com/adventure/internal/render"
)

var (
	stickBaseColor  = color.RGBA{40, 40, 40, 100}
	stickRingColor  = color.RGBA{255, 255, 255, 120}
	stickThumbColor = color.RGBA{255, 255, 255, 170}
	buttonColor     = color.RGBA{0, 0, 0, 140}
	buttonRingColor = color.RGBA{255, 255, 255, 160}
)

// DrawTouchControls renders the virtual joystick and the on-screen buttons
func DrawTouchControls(r render.Renderer, screen render.Image, joy *input.Joystick, buttons []input.Button) {
	if joy != nil {
		bx, by := float32(joy.Base.X), float32(joy.Base.Y)
		r.FillCircle(screen, bx, by, float32(joy.Radius), stickBaseColor)
		r.StrokeCircle(screen, bx, by, float32(joy.Radius), 2, stickRingColor)
		thumb := joy.Base.Add(joy.Thumb)
		r.FillCircle(screen, float32(thumb.X), float32(thumb.Y), float32(joy.Radius)*0.4, stickThumbColor)
	}

	for _, b := range buttons {
		cx, cy := float32(b.Center.X), float32(b.Center.Y)
		r.FillCircle(screen, cx, cy, float32(b.Radius), buttonColor)
		r.StrokeCircle(screen, cx, cy, float32(b.Radius), 2, buttonRingColor)
		tw, th := r.MeasureText(b.Label, 1.5)
		r.DrawText(screen, b.Label, int(b.Center.X)-tw/2, int(b.Center.Y)-th/2, buttonRingColor, 1.5)
	}
}
