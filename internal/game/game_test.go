package game

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/physics"
	"chosenoffset.com/adventure/internal/render"
)

type fakeImage struct {
	bounds   image.Rectangle
	disposed bool
}

func (f *fakeImage) Bounds() image.Rectangle { return f.bounds }
func (f *fakeImage) Size() (int, int)        { return f.bounds.Dx(), f.bounds.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r}
}
func (f *fakeImage) Fill(color.Color)                                 {}
func (f *fakeImage) Clear()                                           {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (f *fakeImage) Dispose()                                         { f.disposed = true }

type fakeRenderer struct{}

func (fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{bounds: image.Rect(0, 0, w, h)}
}
func (fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	return &fakeImage{bounds: src.Bounds()}
}
func (fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color)        {}
func (fakeRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
}
func (fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}
func (fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 7, 14
}

// fakeLoader serves fixed-size images for any path
type fakeLoader struct {
	w, h   int
	loaded []string
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.loaded = append(l.loaded, path)
	return &fakeImage{bounds: image.Rect(0, 0, l.w, l.h)}, nil
}

type fakeGeoM struct{}

func (fakeGeoM) Translate(float64, float64) {}
func (fakeGeoM) Scale(float64, float64)     {}
func (fakeGeoM) Reset()                     {}

// fakeInput holds keys down and never reports pointers
type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, justPressed: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool                    { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool                { return f.justPressed[k] }
func (f *fakeInput) GetCursorPosition() (int, int)                     { return 0, 0 }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool      { return false }
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool  { return false }
func (f *fakeInput) IsMouseButtonJustReleased(render.MouseButton) bool { return false }
func (f *fakeInput) TouchIDs() []render.TouchID                        { return nil }
func (f *fakeInput) JustPressedTouchIDs() []render.TouchID             { return nil }
func (f *fakeInput) IsTouchJustReleased(render.TouchID) bool           { return false }
func (f *fakeInput) TouchPosition(render.TouchID) (int, int)           { return 0, 0 }

func TestCameraFollowClamps(t *testing.T) {
	c := &Camera{ViewW: 800, ViewH: 600, WorldW: 1600, WorldH: 1200}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"centered", 800, 600, 400, 300},
		{"top-left corner", 10, 10, 0, 0},
		{"bottom-right corner", 1590, 1190, 800, 600},
	}
	for _, tt := range tests {
		c.Follow(tt.x, tt.y)
		if c.X != tt.wantX || c.Y != tt.wantY {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", tt.name, tt.wantX, tt.wantY, c.X, c.Y)
		}
	}

	small := &Camera{ViewW: 800, ViewH: 600, WorldW: 400, WorldH: 300}
	small.Follow(200, 150)
	if small.X != 0 || small.Y != 0 {
		t.Errorf("Expected small world pinned at origin, got (%v, %v)", small.X, small.Y)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := &Camera{X: 120, Y: 80}
	wx, wy := c.ScreenToWorld(10, 20)
	if wx != 130 || wy != 100 {
		t.Fatalf("Expected world (130, 100), got (%v, %v)", wx, wy)
	}
	sx, sy := c.WorldToScreen(wx, wy)
	if sx != 10 || sy != 20 {
		t.Errorf("Expected screen (10, 20), got (%v, %v)", sx, sy)
	}
}

func newTestSkins(t *testing.T) *SkinRegistry {
	t.Helper()
	cfg := config.DefaultConfig()
	s := NewSkinRegistry(fakeRenderer{}, nil, cfg)
	if err := s.Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestStageOverlapQuery(t *testing.T) {
	world := physics.NewWorld(1000, 1000)
	player := &physics.Body{Pos: geom.Point{X: 100, Y: 100}, W: 24, H: 24}
	stage := NewStage(world, player, &Camera{}, newTestSkins(t))

	stage.AddNPC(0, &physics.Body{Pos: geom.Point{X: 500, Y: 500}, W: 24, H: 24, Static: true})
	stage.AddNPC(1, &physics.Body{Pos: geom.Point{X: 110, Y: 100}, W: 24, H: 24, Static: true})

	hits := stage.OverlapQuery(88, 88, 24, 24)
	if len(hits) != 1 || hits[0] != 1 {
		t.Errorf("Expected only NPC 1 to overlap, got %v", hits)
	}
}

func TestStagePort(t *testing.T) {
	world := physics.NewWorld(1000, 1000)
	player := &physics.Body{Pos: geom.Point{X: 50, Y: 60}, W: 24, H: 24}
	stage := NewStage(world, player, &Camera{X: 100, Y: 200}, newTestSkins(t))

	stage.SetVelocity(160, 0)
	world.Step(0.5)
	if x, y := stage.Position(); x != 130 || y != 60 {
		t.Errorf("Expected player at (130, 60), got (%v, %v)", x, y)
	}

	if stage.FrameCount() != 12 {
		t.Errorf("Expected 12 frames on a preset sheet, got %d", stage.FrameCount())
	}

	if x, y := stage.WorldPoint(5, 5); x != 105 || y != 205 {
		t.Errorf("Expected world point (105, 205), got (%v, %v)", x, y)
	}
}

func TestSkinRegistrySelect(t *testing.T) {
	s := newTestSkins(t)
	if s.Slots() != 6 {
		t.Fatalf("Expected 6 slots, got %d", s.Slots())
	}

	var changes []string
	s.OnChange = func(name string) { changes = append(changes, name) }

	first := s.Active()
	s.SelectSkin(2)
	if s.Active() == first || s.Active().Name != "mage" {
		t.Errorf("Expected slot 3 active, got %s", s.Active().Name)
	}
	s.SelectSkin(9)
	s.SelectSkin(-1)
	if s.Active().Name != "mage" {
		t.Error("Expected out of range slots to be ignored")
	}
	s.SelectSkin(2)
	if len(changes) != 1 {
		t.Errorf("Expected one change notification, got %v", changes)
	}
}

func TestSkinRegistryLoadsPNGs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"hero.png", "zz.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
			t.Fatalf("Failed to write skin: %v", err)
		}
	}

	loader := &fakeLoader{w: 96, h: 128}
	s := NewSkinRegistry(fakeRenderer{}, loader, config.DefaultConfig())
	if err := s.Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loader.loaded) != 2 {
		t.Fatalf("Expected 2 PNGs loaded, got %v", loader.loaded)
	}
	if s.Active().Name != "hero" {
		t.Errorf("Expected disk skin in slot 1, got %s", s.Active().Name)
	}
	s.SelectSkin(2)
	if s.Active().Name != "mage" {
		t.Errorf("Expected preset kept in slot 3, got %s", s.Active().Name)
	}
}

func waitForSkin(t *testing.T, s *SkinRegistry) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !s.Poll() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for generated skin")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSkinRegistryRegenerate(t *testing.T) {
	s := newTestSkins(t)

	s.RegenerateSkin()
	s.RegenerateSkin() // Queued behind the one in flight
	s.RegenerateSkin() // Collapses into the queued request
	waitForSkin(t, s)

	first := s.Active()
	if first.Name != "custom-1" || first.FrameCount() != 12 {
		t.Fatalf("Expected custom-1 with 12 frames, got %s with %d", first.Name, first.FrameCount())
	}

	waitForSkin(t, s)
	if s.Active().Name != "custom-2" {
		t.Fatalf("Expected the queued request to apply custom-2, got %s", s.Active().Name)
	}
	if s.pending || s.busy {
		t.Errorf("Expected nothing left to generate, pending=%v busy=%v", s.pending, s.busy)
	}
	if s.count != 2 {
		t.Errorf("Expected 2 generations, got %d", s.count)
	}
}

func TestSkinRegistryRateLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Skins.RegenPerSecond = 1000
	cfg.Skins.RegenBurst = 1
	s := NewSkinRegistry(fakeRenderer{}, nil, cfg)
	if err := s.Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s.RegenerateSkin()
	waitForSkin(t, s)
	first := s.Active()

	time.Sleep(5 * time.Millisecond)
	s.RegenerateSkin()
	waitForSkin(t, s)
	if s.Active() == first {
		t.Fatal("Expected a second generated skin")
	}
	if !first.Image.(*fakeImage).disposed {
		t.Error("Expected the replaced generated skin to be disposed")
	}

	cfg.Skins.RegenPerSecond = 0.001
	slow := NewSkinRegistry(fakeRenderer{}, nil, cfg)
	if err := slow.Load(""); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	slow.RegenerateSkin()
	waitForSkin(t, slow)
	slow.RegenerateSkin()
	time.Sleep(20 * time.Millisecond)
	if slow.Poll() {
		t.Error("Expected the second request to be throttled")
	}
	if !slow.pending || slow.busy {
		t.Errorf("Expected the throttled request kept pending, pending=%v busy=%v", slow.pending, slow.busy)
	}
}

func newTestGame(t *testing.T, in render.InputManager) *Game {
	t.Helper()
	g, err := New(config.DefaultConfig(), fakeRenderer{}, in, nil, Options{TPS: 60})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestGameUpdateMovesPlayer(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(t, in)
	start := g.Player.Pos

	in.pressed[render.KeyD] = true
	for i := 0; i < 60; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	moved := g.Player.Pos.X - start.X
	if moved < 159 || moved > 161 {
		t.Errorf("Expected about 160 units moved in one second, got %v", moved)
	}
	if g.Player.Pos.Y != start.Y {
		t.Errorf("Expected no vertical movement, got %v", g.Player.Pos.Y-start.Y)
	}
	if g.Scene.Anim.Facing.String() != "right" {
		t.Errorf("Expected to face right, got %s", g.Scene.Anim.Facing)
	}
}

func TestGameTalkToElder(t *testing.T) {
	in := newFakeInput()
	g := newTestGame(t, in)

	elder := g.Scene.NPCs[0]
	g.Player.Pos = elder.Pos.Add(geom.Point{X: 20})

	in.justPressed[render.KeyE] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	in.justPressed[render.KeyE] = false

	if !g.Scene.Dialogue.Active() || !g.Overlay.Dialogue.Visible {
		t.Fatal("Expected dialogue panel open")
	}
	if g.Scene.Inventory.Count() != 1 {
		t.Errorf("Expected the starter item, got %d items", g.Scene.Inventory.Count())
	}
	if len(g.Toasts.Messages) != 1 {
		t.Errorf("Expected a toast for the item, got %d", len(g.Toasts.Messages))
	}

	in.justPressed[render.KeyI] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !g.Overlay.Inventory.Visible {
		t.Error("Expected inventory panel visible")
	}
	if got := g.Overlay.Inventory.Lines(); len(got) != 1 || got[0] != "Healing Potion: A potion that restores health." {
		t.Errorf("Unexpected inventory lines %v", got)
	}
}

func TestGameDraw(t *testing.T) {
	prev := render.NewGeoM
	render.NewGeoM = func() render.GeoM { return fakeGeoM{} }
	defer func() { render.NewGeoM = prev }()

	g := newTestGame(t, newFakeInput())
	g.Capture.Touch = true
	g.Scene.NPCs[0].Touching = true
	g.Scene.NPCs[1].Highlighted = true
	g.Stage.Frame = 99 // Out of range falls back to the idle frame

	g.Draw(&fakeImage{bounds: image.Rect(0, 0, 800, 600)})
}

func TestLayout(t *testing.T) {
	g := newTestGame(t, newFakeInput())
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600, got %dx%d", w, h)
	}
}
