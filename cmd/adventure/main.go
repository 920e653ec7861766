package main

import (
	"flag"
	"log"
	"time"

	"github.com/hako/durafmt"

	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/game"
	"chosenoffset.com/adventure/internal/input"
	ebitenrender "chosenoffset.com/adventure/internal/render/ebiten"
)

// statusEvery is how often the debug log reports the player's state
const statusEvery = 5 * time.Second

// debugGame logs the player's state periodically
type debugGame struct {
	*game.Game
	every int
}

func (d *debugGame) Update() error {
	if err := d.Game.Update(); err != nil {
		return err
	}
	if d.every > 0 && d.Ticks%d.every == 0 {
		logDebug("tick=%d pos=(%.0f, %.0f) facing=%s frame=%d dialogue=%v %s",
			d.Ticks, d.Player.Pos.X, d.Player.Pos.Y, d.Scene.Anim.Facing,
			d.Stage.Frame, d.Scene.Dialogue.Active(), d.Scene.Inventory.Debug())
	}
	return nil
}

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	skinsDir := flag.String("skins", "", "directory of PNG player sheets (overrides config)")
	touch := flag.Bool("touch", false, "show on-screen touch controls")
	debug := flag.Bool("debug", false, "enable debug logging")
	logDir := flag.String("logdir", "", "also write logs to this directory")
	flag.Parse()

	setupLogging(*logDir, *debug)
	start := time.Now()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *skinsDir != "" {
		cfg.Skins.Dir = *skinsDir
	}
	logDebug("config: %+v", *cfg)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	touchMode := *touch || input.IsTouchDevice()
	if touchMode {
		log.Println("Touch controls enabled")
	}

	g, err := game.New(cfg, renderer, inputMgr, loader, game.Options{
		Touch: touchMode,
		TPS:   engine.TPS(),
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	dg := &debugGame{Game: g}
	if *debug {
		dg.every = engine.TPS() * int(statusEvery/time.Second)
	}

	log.Println("Starting game...")
	err = engine.RunGame(dg)
	log.Printf("Session lasted %s", durafmt.Parse(time.Since(start)).LimitFirstN(2))
	closeLogs()
	if err != nil {
		log.Fatal(err)
	}
}
