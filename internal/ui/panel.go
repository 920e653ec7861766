// Package ui draws the text overlays on top of the scene: the inventory,
// quest and dialogue panels, toast messages, NPC name labels and the
// on-screen touch controls.
package ui

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"chosenoffset.com/adventure/internal/render"
)

// Panel is a translucent box with an optional title and wrapped lines.
// Its content is replaced wholesale whenever the data behind it changes.
type Panel struct {
	// Dimensions
	X, Y          int
	Width, Height int

	Title   string
	Visible bool

	// Alpha scales the whole panel, 0..1
	Alpha float64

	lines []string

	// Visual settings
	bgColor    color.RGBA
	textColor  color.RGBA
	titleColor color.RGBA
	lineHeight int
	padding    int
	textScale  float64
}

// NewPanel creates a visible, opaque panel
func NewPanel(title string, x, y, width, height int) *Panel {
	return &Panel{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Title:      title,
		Visible:    true,
		Alpha:      1,
		bgColor:    color.RGBA{0, 0, 0, 200},
		textColor:  color.RGBA{255, 255, 255, 255},
		titleColor: color.RGBA{255, 220, 120, 255},
		lineHeight: 18,
		padding:    10,
		textScale:  1,
	}
}

// SetLines replaces the content, wrapping each entry to the panel width
func (p *Panel) SetLines(entries []string) {
	p.lines = p.lines[:0]
	for _, e := range entries {
		p.lines = append(p.lines, wrapText(e, p.Width-p.padding*2)...)
	}
}

// Lines returns the wrapped content
func (p *Panel) Lines() []string {
	return p.lines
}

// Draw renders the panel if it is visible
func (p *Panel) Draw(r render.Renderer, screen render.Image) {
	if !p.Visible || p.Alpha <= 0 {
		return
	}

	r.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), fade(p.bgColor, p.Alpha))

	y := p.Y + p.padding
	if p.Title != "" {
		tw, _ := r.MeasureText(p.Title, p.textScale)
		r.DrawText(screen, p.Title, p.X+(p.Width-tw)/2, y, fade(p.titleColor, p.Alpha), p.textScale)
		y += p.lineHeight + 4
	}

	for _, line := range p.lines {
		if y+p.lineHeight > p.Y+p.Height {
			break
		}
		r.DrawText(screen, line, p.X+p.padding, y, fade(p.textColor, p.Alpha), p.textScale)
		y += p.lineHeight
	}
}

// fade scales a color's alpha by a
func fade(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	// Premultiplied, so every channel scales
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// wrapText breaks text into lines that fit maxWidth pixels
func wrapText(text string, maxWidth int) []string {
	// Rough approximation: 7 pixels per character
	charsPerLine := maxWidth / 7
	if charsPerLine < 20 {
		charsPerLine = 20
	}

	words := strings.Fields(text)
	var lines []string
	var currentLine string

	for _, word := range words {
		if utf8.RuneCountInString(currentLine)+utf8.RuneCountInString(word)+1 > charsPerLine {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		} else {
			if currentLine != "" {
				currentLine += " "
			}
			currentLine += word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
