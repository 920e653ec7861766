package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Character sheets have one row per facing (down, left, right, up) and one
// column per walk frame.
const (
	SheetColumns = 3
	SheetRows    = 4
)

// Sheet rows, matching the facing order used for frame selection
const (
	RowDown = iota
	RowLeft
	RowRight
	RowUp
)

// CharacterPalette colors one character sheet
type CharacterPalette struct {
	Name string
	Body color.RGBA
	Skin color.RGBA
	Hair color.RGBA
}

// Presets are the six built-in player sheets selected with the digit keys
var Presets = []CharacterPalette{
	{Name: "ranger", Body: color.RGBA{60, 140, 70, 255}, Skin: color.RGBA{240, 200, 160, 255}, Hair: color.RGBA{90, 60, 30, 255}},
	{Name: "knight", Body: color.RGBA{150, 155, 170, 255}, Skin: color.RGBA{225, 185, 145, 255}, Hair: color.RGBA{40, 35, 30, 255}},
	{Name: "mage", Body: color.RGBA{70, 70, 180, 255}, Skin: color.RGBA{245, 215, 180, 255}, Hair: color.RGBA{220, 220, 230, 255}},
	{Name: "rogue", Body: color.RGBA{50, 45, 60, 255}, Skin: color.RGBA{200, 150, 110, 255}, Hair: color.RGBA{150, 40, 30, 255}},
	{Name: "bard", Body: color.RGBA{200, 60, 90, 255}, Skin: color.RGBA{235, 190, 150, 255}, Hair: color.RGBA{230, 180, 60, 255}},
	{Name: "monk", Body: color.RGBA{230, 140, 40, 255}, Skin: color.RGBA{170, 120, 85, 255}, Hair: color.RGBA{20, 20, 20, 255}},
}

// NPCPalettes colors the villagers by sprite key
var NPCPalettes = map[string]CharacterPalette{
	"elder":    {Name: "elder", Body: ColorPalette.Elder, Skin: color.RGBA{235, 200, 170, 255}, Hair: color.RGBA{230, 230, 230, 255}},
	"merchant": {Name: "merchant", Body: ColorPalette.Merchant, Skin: color.RGBA{210, 160, 120, 255}, Hair: color.RGBA{60, 40, 20, 255}},
	"traveler": {Name: "traveler", Body: ColorPalette.Traveler, Skin: color.RGBA{240, 205, 165, 255}, Hair: color.RGBA{120, 80, 40, 255}},
}

// CreateItemIcon draws a small icon for an inventory item key
func CreateItemIcon(icon string, size int) *image.RGBA {
	switch icon {
	case "potion":
		img := CreateCircle(color.RGBA{220, 40, 60, 255}, Darken(ColorPalette.Item, 0.5), size)
		neck := image.Rect(size*2/5, 0, size*3/5, size/4)
		fillRect(img, neck, ColorPalette.Border)
		return img
	default:
		return CreateBorderedTile(ColorPalette.Item, Darken(ColorPalette.Item, 0.6), size, 1)
	}
}

var skinTones = []color.RGBA{
	{245, 215, 180, 255},
	{235, 190, 150, 255},
	{200, 150, 110, 255},
	{170, 120, 85, 255},
	{120, 80, 55, 255},
}

// RandomPalette picks a pleasant random palette. The same rng state gives
// the same palette.
func RandomPalette(rng *rand.Rand) CharacterPalette {
	body := colorful.Hsv(rng.Float64()*360, 0.45+rng.Float64()*0.4, 0.55+rng.Float64()*0.4)
	hair := colorful.Hsv(rng.Float64()*60, 0.3+rng.Float64()*0.5, 0.15+rng.Float64()*0.7)
	return CharacterPalette{
		Name: "custom",
		Body: toRGBA(body),
		Skin: skinTones[rng.Intn(len(skinTones))],
		Hair: toRGBA(hair),
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// CreateCharacterSheet draws every facing and walk frame for a palette
func CreateCharacterSheet(p CharacterPalette, frameW, frameH int) *image.RGBA {
	cells := make([]*image.RGBA, 0, SheetColumns*SheetRows)
	for row := 0; row < SheetRows; row++ {
		for step := 0; step < SheetColumns; step++ {
			cells = append(cells, CreateCharacterFrame(p, row, step, frameW, frameH))
		}
	}
	return CreateAtlas(cells, SheetColumns, frameW, frameH)
}

// CreateCharacterFrame draws a single frame. Step 0 is the idle pose; steps
// 1 and 2 lift alternate legs.
func CreateCharacterFrame(p CharacterPalette, row, step, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	outline := Darken(p.Body, 0.6)

	// Legs
	legW := max(w/8, 1)
	legTop := h * 4 / 5
	legBottom := h - 1
	leftX := w/2 - legW - 1
	rightX := w/2 + 1
	leftLift, rightLift := 0, 0
	switch step {
	case 1:
		leftLift = 2
	case 2:
		rightLift = 2
	}
	if row == RowLeft || row == RowRight {
		// Side view: legs swing forward and back instead of lifting
		swing := 0
		if step == 1 {
			swing = 2
		} else if step == 2 {
			swing = -2
		}
		if row == RowLeft {
			swing = -swing
		}
		leftX += swing
		rightX -= swing
	}
	fillRect(img, image.Rect(leftX, legTop, leftX+legW, legBottom-leftLift), outline)
	fillRect(img, image.Rect(rightX, legTop, rightX+legW, legBottom-rightLift), outline)

	// Body
	body := image.Rect(w*3/10, h/2, w*7/10, legTop)
	fillRect(img, body, outline)
	fillRect(img, body.Inset(1), p.Body)

	// Head
	cx, cy := w/2, h*3/10
	radius := max(w*2/9, 2)
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			img.Set(x, y, headColor(p, row, dx, dy))
		}
	}

	// Eyes
	eye := Darken(p.Skin, 0.25)
	switch row {
	case RowDown:
		img.Set(cx-radius/2, cy+1, eye)
		img.Set(cx+radius/2, cy+1, eye)
	case RowLeft:
		img.Set(cx-radius/2-1, cy+1, eye)
	case RowRight:
		img.Set(cx+radius/2+1, cy+1, eye)
	}

	return img
}

// headColor returns hair or skin for a pixel offset from the head center
func headColor(p CharacterPalette, row, dx, dy int) color.RGBA {
	switch row {
	case RowUp:
		return p.Hair
	case RowLeft:
		if dx > 0 || dy < 0 {
			return p.Hair
		}
	case RowRight:
		if dx < 0 || dy < 0 {
			return p.Hair
		}
	default:
		if dy < 0 {
			return p.Hair
		}
	}
	return p.Skin
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}
