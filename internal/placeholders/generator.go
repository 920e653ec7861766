// Package placeholders generates simple procedural art so the scene runs
// without any asset files.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the edge of ground tiles and character frames
const TileSize = 32

// ColorPalette defines colors for the village scene
var ColorPalette = struct {
	// Scenery
	Flower  color.RGBA
	Blossom color.RGBA
	Tree    color.RGBA
	Water   color.RGBA
	Shallow color.RGBA
	Stone   color.RGBA

	// NPCs
	Elder    color.RGBA
	Merchant color.RGBA
	Traveler color.RGBA

	// Items
	Item color.RGBA

	// UI
	Border color.RGBA
}{
	Flower:  color.RGBA{255, 105, 180, 255}, // Hot pink
	Blossom: color.RGBA{255, 255, 0, 255},   // Yellow
	Tree:    color.RGBA{139, 69, 19, 255},   // Saddle brown
	Water:   color.RGBA{70, 130, 180, 255},  // Steel blue
	Shallow: color.RGBA{95, 158, 160, 255},  // Cadet blue
	Stone:   color.RGBA{105, 105, 105, 255}, // Dim gray

	Elder:    color.RGBA{150, 110, 200, 255}, // Robe purple
	Merchant: color.RGBA{230, 170, 50, 255},  // Merchant gold
	Traveler: color.RGBA{90, 110, 160, 255},  // Steel blue

	Item: color.RGBA{255, 215, 0, 255}, // Gold

	Border: color.RGBA{200, 200, 200, 255}, // Light gray
}

// CreateSolidTile creates a size x size tile of one color
func CreateSolidTile(col color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with an inset border, used for item icons
func CreateBorderedTile(fillColor, borderColor color.RGBA, size, borderWidth int) *image.RGBA {
	img := CreateSolidTile(borderColor, size)
	inner := image.Rect(borderWidth, borderWidth, size-borderWidth, size-borderWidth)
	draw.Draw(img, inner, &image.Uniform{fillColor}, image.Point{}, draw.Src)
	return img
}

// CreateCircle creates a round sprite with a one pixel outline on a
// transparent background
func CreateCircle(fillColor, outlineColor color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := size / 2
	radius := size/2 - 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateAtlas packs equally sized cells into a sheet, left to right and top
// to bottom. Nil cells are left transparent.
func CreateAtlas(cells []*image.RGBA, columns, cellW, cellH int) *image.RGBA {
	rows := (len(cells) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))

	for i, cell := range cells {
		if cell == nil {
			continue
		}
		x := (i % columns) * cellW
		y := (i / columns) * cellH
		draw.Draw(atlas, image.Rect(x, y, x+cellW, y+cellH), cell, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath, err)
	}
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
