package sprite

import (
	"fmt"
	"image"

	"chosenoffset.com/adventure/internal/render"
)

// Sheet slices a sprite sheet image into equally sized frames. Frames are
// numbered left to right, top to bottom.
type Sheet struct {
	Image  render.Image
	FrameW int
	FrameH int
	Name   string
}

// NewSheet wraps an image as a sheet of frameW x frameH frames
func NewSheet(name string, img render.Image, frameW, frameH int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("sheet %s has no image", name)
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions for sheet %s: %dx%d", name, frameW, frameH)
	}
	w, h := img.Size()
	if w < frameW || h < frameH {
		return nil, fmt.Errorf("sheet %s (%dx%d) is smaller than one frame (%dx%d)", name, w, h, frameW, frameH)
	}
	return &Sheet{Image: img, FrameW: frameW, FrameH: frameH, Name: name}, nil
}

// Columns returns the number of frames per row
func (s *Sheet) Columns() int {
	w, _ := s.Image.Size()
	return w / s.FrameW
}

// Rows returns the number of frame rows
func (s *Sheet) Rows() int {
	_, h := s.Image.Size()
	return h / s.FrameH
}

// FrameCount returns how many whole frames fit in the sheet
func (s *Sheet) FrameCount() int {
	if s == nil || s.Image == nil {
		return 0
	}
	return s.Columns() * s.Rows()
}

// FrameRect returns the source rectangle of a frame
func (s *Sheet) FrameRect(i int) image.Rectangle {
	cols := s.Columns()
	x := (i % cols) * s.FrameW
	y := (i / cols) * s.FrameH
	b := s.Image.Bounds()
	return image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+s.FrameW, b.Min.Y+y+s.FrameH)
}

// Frame returns the sub-image for frame i, or nil if i is out of range
func (s *Sheet) Frame(i int) render.Image {
	if i < 0 || i >= s.FrameCount() {
		return nil
	}
	return s.Image.SubImage(s.FrameRect(i))
}
