// Package game wires the village scene to the engine: it owns the physics
// world, the camera, the player's sprite sheets and the overlays, and runs
// one scene tick per engine update.
package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/core/geom"
	"chosenoffset.com/adventure/internal/entity"
	"chosenoffset.com/adventure/internal/input"
	"chosenoffset.com/adventure/internal/physics"
	"chosenoffset.com/adventure/internal/placeholders"
	"chosenoffset.com/adventure/internal/render"
	"chosenoffset.com/adventure/internal/scene"
	"chosenoffset.com/adventure/internal/ui"
)

// groundSeed keeps the meadow identical between runs
const groundSeed = 1

// Options are the runtime choices made on the command line
type Options struct {
	Touch bool // Show touch controls from the start
	TPS   int  // Engine updates per second
}

// Game holds all game state and logic.
type Game struct {
	Config   *config.Config
	Renderer render.Renderer
	InputMgr render.InputManager

	Scene   *scene.State
	Capture *input.Capture
	Stage   *Stage
	World   *physics.World
	Player  *physics.Body
	Camera  *Camera
	Skins   *SkinRegistry
	Overlay *ui.Overlay
	Toasts  *ui.Toasts

	Ground     render.Image
	NPCSprites map[string]render.Image
	ItemIcons  map[string]render.Image
	Background color.RGBA

	tps   int
	Ticks int
}

// New builds the scene and uploads its art
func New(cfg *config.Config, r render.Renderer, in render.InputManager, loader render.ResourceLoader, opts Options) (*Game, error) {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	g := &Game{
		Config:     cfg,
		Renderer:   r,
		InputMgr:   in,
		Background: cfg.BackgroundColor(),
		NPCSprites: make(map[string]render.Image),
		ItemIcons:  make(map[string]render.Image),
		Overlay:    ui.NewOverlay(cfg.Window.Width, cfg.Window.Height),
		Toasts:     ui.NewToasts(),
		tps:        opts.TPS,
	}

	g.Skins = NewSkinRegistry(r, loader, cfg)
	if err := g.Skins.Load(cfg.Skins.Dir); err != nil {
		return nil, fmt.Errorf("failed to load player skins: %w", err)
	}
	g.Skins.OnChange = func(name string) { g.Toasts.Show("Skin: " + ui.DisplayName(name)) }

	// World and bodies
	g.World = physics.NewWorld(cfg.World.Width, cfg.World.Height)
	size := cfg.World.ActorSize
	g.Player = &physics.Body{
		Pos:                geom.Point{X: cfg.World.SpawnX, Y: cfg.World.SpawnY},
		W:                  size,
		H:                  size,
		CollideWorldBounds: true,
	}
	g.Camera = &Camera{
		ViewW:  float64(cfg.Window.Width),
		ViewH:  float64(cfg.Window.Height),
		WorldW: cfg.World.Width,
		WorldH: cfg.World.Height,
	}
	g.Camera.Follow(g.Player.Pos.X, g.Player.Pos.Y)
	g.Stage = NewStage(g.World, g.Player, g.Camera, g.Skins)

	npcs := scene.BuildNPCs(scene.DefaultNPCs)
	for i, npc := range npcs {
		g.Stage.AddNPC(i, &physics.Body{Pos: npc.Pos, W: size, H: size, Static: true})
	}

	// Scene state and its views
	g.Scene = scene.New(cfg, npcs)
	g.Scene.Skins = g.Skins
	g.Scene.OnNotice = g.Toasts.Show
	g.Scene.OnInventoryToggle = g.Overlay.SetInventoryVisible
	g.Scene.Inventory.OnChange = func() { g.Overlay.RebuildInventory(g.Scene.Inventory) }
	g.Scene.Quests.OnChange = func() { g.Overlay.RebuildQuests(g.Scene.Quests) }
	g.Scene.Dialogue.OnChange = func() { g.Overlay.RebuildDialogue(g.Scene.Dialogue) }
	g.Overlay.RebuildInventory(g.Scene.Inventory)
	g.Overlay.RebuildQuests(g.Scene.Quests)

	jc := cfg.Joystick
	g.Capture = &input.Capture{
		Input:    in,
		Joystick: g.Scene.Joystick,
		Buttons: []input.Button{
			{Label: "E", Center: geom.Point{X: jc.InteractX, Y: jc.InteractY}, Radius: jc.ButtonRadius, Event: input.EventInteract},
			{Label: "I", Center: geom.Point{X: jc.InventoryX, Y: jc.InventoryY}, Radius: jc.ButtonRadius, Event: input.EventToggleInventory},
		},
		Touch: opts.Touch,
	}

	g.createArt(npcs)
	return g, nil
}

// createArt generates the ground, NPC and item images
func (g *Game) createArt(npcs []*entity.NPC) {
	cfg := g.Config
	ground := placeholders.CreateGround(int(cfg.World.Width), int(cfg.World.Height), groundSeed)
	g.Ground = g.Renderer.NewImageFromImage(ground)
	log.Printf("Generated ground %dx%d (%s)", ground.Bounds().Dx(), ground.Bounds().Dy(), humanize.Bytes(uint64(len(ground.Pix))))

	fw, fh := cfg.Animation.FrameWidth, cfg.Animation.FrameHeight
	for _, npc := range npcs {
		if _, ok := g.NPCSprites[npc.SpriteName]; ok {
			continue
		}
		p, ok := placeholders.NPCPalettes[npc.SpriteName]
		if !ok {
			log.Printf("Warning: No palette for NPC sprite %q, using a preset", npc.SpriteName)
			p = placeholders.Presets[0]
		}
		frame := placeholders.CreateCharacterFrame(p, placeholders.RowDown, 0, fw, fh)
		g.NPCSprites[npc.SpriteName] = g.Renderer.NewImageFromImage(frame)
	}

	icon := scene.StarterItem.Icon
	g.ItemIcons[icon] = g.Renderer.NewImageFromImage(placeholders.CreateItemIcon(icon, 24))
}

// Update runs one tick: input, scene, physics, camera, then overlays.
func (g *Game) Update() error {
	dt := 1.0 / float64(g.tps)
	delta := time.Second / time.Duration(g.tps)

	// Finished background work lands before input is handled
	g.Skins.Poll()

	keys := g.Capture.Poll(g.Scene.Events)
	g.Scene.Tick(g.Stage, keys, delta)
	g.World.Step(dt)
	g.Camera.Follow(g.Player.Pos.X, g.Player.Pos.Y)

	g.Overlay.Update(dt)
	g.Toasts.Update(dt)
	g.Ticks++
	return nil
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}
