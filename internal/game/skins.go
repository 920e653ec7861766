package game

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/placeholders"
	"chosenoffset.com/adventure/internal/render"
	"chosenoffset.com/adventure/internal/skins"
	"chosenoffset.com/adventure/internal/sprite"
)

// generatedSheet is a sheet painted off the update loop
type generatedSheet struct {
	img  *image.RGBA
	name string
	took time.Duration
}

// SkinRegistry owns the player's sprite sheets: one per digit key slot, plus
// the most recent procedurally generated sheet.
type SkinRegistry struct {
	Renderer render.Renderer
	Loader   render.ResourceLoader

	frameW, frameH int

	slots  []*sprite.Sheet
	active *sprite.Sheet
	custom *sprite.Sheet

	limiter   *rate.Limiter
	generated chan generatedSheet
	busy      bool
	pending   bool
	seed      int64
	count     int

	// OnChange is called with the name of the newly active sheet
	OnChange func(name string)
}

// NewSkinRegistry creates an empty registry; call Load before use
func NewSkinRegistry(r render.Renderer, loader render.ResourceLoader, cfg *config.Config) *SkinRegistry {
	burst := cfg.Skins.RegenBurst
	if burst < 1 {
		burst = 1
	}
	return &SkinRegistry{
		Renderer:  r,
		Loader:    loader,
		frameW:    cfg.Animation.FrameWidth,
		frameH:    cfg.Animation.FrameHeight,
		limiter:   rate.NewLimiter(rate.Limit(cfg.Skins.RegenPerSecond), burst),
		generated: make(chan generatedSheet, 1),
		seed:      time.Now().UnixNano(),
	}
}

// Load fills the slots with the preset sheets, replacing them in order with
// any PNG sheets found in dir. The first slot becomes active.
func (s *SkinRegistry) Load(dir string) error {
	s.slots = s.slots[:0]
	for _, p := range placeholders.Presets {
		sheet, err := s.upload(p.Name, placeholders.CreateCharacterSheet(p, s.frameW, s.frameH))
		if err != nil {
			return fmt.Errorf("failed to create preset skin %s: %w", p.Name, err)
		}
		s.slots = append(s.slots, sheet)
	}

	if s.Loader == nil || dir == "" {
		s.active = s.slots[0]
		return nil
	}

	entries, err := skins.ScanDirectory(dir)
	if err != nil {
		return fmt.Errorf("failed to load skins: %w", err)
	}
	for i, e := range entries {
		img, err := s.Loader.LoadImage(e.Path)
		if err != nil {
			log.Printf("Warning: Failed to load skin %s: %v", e.Path, err)
			continue
		}
		sheet, err := sprite.NewSheet(e.Name, img, s.frameW, s.frameH)
		if err != nil {
			log.Printf("Warning: Skipping skin %s: %v", e.Path, err)
			continue
		}
		s.slots[i] = sheet
		log.Printf("Loaded skin %s (%s, %d frames) into slot %d", e.Name, humanize.Bytes(uint64(e.Size)), sheet.FrameCount(), i+1)
	}

	s.active = s.slots[0]
	return nil
}

func (s *SkinRegistry) upload(name string, img *image.RGBA) (*sprite.Sheet, error) {
	return sprite.NewSheet(name, s.Renderer.NewImageFromImage(img), s.frameW, s.frameH)
}

// Active returns the sheet shown for the player
func (s *SkinRegistry) Active() *sprite.Sheet {
	return s.active
}

// Slots returns the number of selectable sheets
func (s *SkinRegistry) Slots() int {
	return len(s.slots)
}

// SelectSkin activates a slot. Out of range slots are ignored.
func (s *SkinRegistry) SelectSkin(slot int) {
	if slot < 0 || slot >= len(s.slots) {
		return
	}
	s.setActive(s.slots[slot])
}

// RegenerateSkin starts painting a randomly colored sheet in the background.
// A request made while one is in flight or faster than the rate limit is
// kept as a single pending request and started by a later Poll.
func (s *SkinRegistry) RegenerateSkin() {
	if s.busy || !s.limiter.Allow() {
		if !s.pending {
			log.Println("Skin generation queued")
		}
		s.pending = true
		return
	}
	s.startGeneration()
}

func (s *SkinRegistry) startGeneration() {
	s.busy = true
	s.count++
	seed := s.seed + int64(s.count)
	name := fmt.Sprintf("custom-%d", s.count)
	w, h := s.frameW, s.frameH
	out := s.generated

	go func() {
		start := time.Now()
		p := placeholders.RandomPalette(rand.New(rand.NewSource(seed)))
		out <- generatedSheet{
			img:  placeholders.CreateCharacterSheet(p, w, h),
			name: name,
			took: time.Since(start),
		}
	}()
}

// Poll applies a finished generated sheet and starts a pending request once
// the rate limit allows. It never blocks and must be called from the update
// loop. Reports whether a sheet was applied.
func (s *SkinRegistry) Poll() bool {
	applied := false
	select {
	case g := <-s.generated:
		s.busy = false
		applied = s.apply(g)
	default:
	}

	if s.pending && !s.busy && s.limiter.Allow() {
		s.pending = false
		s.startGeneration()
	}
	return applied
}

func (s *SkinRegistry) apply(g generatedSheet) bool {
	sheet, err := s.upload(g.name, g.img)
	if err != nil {
		log.Printf("Warning: Failed to use generated skin: %v", err)
		return false
	}
	log.Printf("Generated skin %s (%s) in %v", g.name, humanize.Bytes(uint64(len(g.img.Pix))), g.took)

	previous := s.custom
	s.custom = sheet
	s.setActive(sheet)
	if previous != nil {
		previous.Image.Dispose()
	}
	return true
}

func (s *SkinRegistry) setActive(sheet *sprite.Sheet) {
	if sheet == nil || sheet == s.active {
		return
	}
	s.active = sheet
	log.Printf("Player skin changed to %s", sheet.Name)
	if s.OnChange != nil {
		s.OnChange(sheet.Name)
	}
}
