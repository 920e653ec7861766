package placeholders

import (
	"image"
	"image/color"
	"math/rand"
)

// grassShades are mixed per tile for a natural looking meadow
var grassShades = []color.RGBA{
	{0x90, 0xee, 0x90, 0xff},
	{0x98, 0xfb, 0x98, 0xff},
	{0x8f, 0xbc, 0x8f, 0xff},
	{0x9a, 0xcd, 0x32, 0xff},
	{0x7c, 0xfc, 0x00, 0xff},
}

// CreateGround paints the village meadow: randomly shaded grass tiles with
// the odd flower, a few trees, a pond and some stones. The same seed gives
// the same picture.
func CreateGround(width, height int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rng := rand.New(rand.NewSource(seed))

	for ty := 0; ty < height; ty += TileSize {
		for tx := 0; tx < width; tx += TileSize {
			shade := grassShades[rng.Intn(len(grassShades))]
			fillRect(img, image.Rect(tx, ty, tx+TileSize, ty+TileSize), shade)

			cx, cy := tx+TileSize/2, ty+TileSize/2
			if rng.Float64() < 0.05 {
				fillDisc(img, cx, cy, 2, ColorPalette.Flower)
			}
			if rng.Float64() < 0.03 {
				fillDisc(img, cx, cy, 1, ColorPalette.Blossom)
			}
		}
	}

	// Scenery is placed relative to the first screen so it is visible at spawn
	for _, p := range [][2]int{{100, 100}, {700, 150}, {200, 500}} {
		fillDisc(img, p[0], p[1], 30, ColorPalette.Tree)
		fillDisc(img, p[0]-6, p[1]-6, 12, Lighten(ColorPalette.Tree, 0.2))
	}

	fillEllipse(img, 650, 450, 30, 20, ColorPalette.Water)
	fillEllipse(img, 650, 450, 25, 15, ColorPalette.Shallow)

	fillDisc(img, 300, 200, 4, ColorPalette.Stone)
	fillDisc(img, 320, 210, 3, ColorPalette.Stone)
	fillDisc(img, 310, 195, 2, ColorPalette.Stone)

	return img
}

func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	fillEllipse(img, cx, cy, r, r, c)
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		img.Set(cx, cy, c)
		return
	}
	b := img.Bounds()
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
