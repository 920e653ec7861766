// Package config provides the tunable rules for the demo scene.
// Values are loaded from an optional JSON file layered over the defaults.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds all settings for the scene
type Config struct {
	Window      WindowConfig      `json:"window"`
	World       WorldConfig       `json:"world"`
	Movement    MovementConfig    `json:"movement"`
	Joystick    JoystickConfig    `json:"joystick"`
	Interaction InteractionConfig `json:"interaction"`
	Animation   AnimationConfig   `json:"animation"`
	Skins       SkinConfig        `json:"skins"`
}

// WindowConfig defines the logical screen
type WindowConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	Background string `json:"background"` // Hex color, e.g. "#87CEEB"
}

// WorldConfig defines the playable area
type WorldConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	ActorSize  float64 `json:"actor_size"` // Collision box edge for the player and NPCs
	SpawnX     float64 `json:"spawn_x"`
	SpawnY     float64 `json:"spawn_y"`
	ActorScale float64 `json:"actor_scale"` // Draw scale for character sprites
}

// MovementConfig defines how input becomes velocity
type MovementConfig struct {
	Speed          float64 `json:"speed"`           // Units per second along one axis
	DiagonalFactor float64 `json:"diagonal_factor"` // Applied to both axes when moving diagonally
}

// JoystickConfig defines the on-screen touch controls
type JoystickConfig struct {
	BaseX    float64 `json:"base_x"`
	BaseY    float64 `json:"base_y"`
	Radius   float64 `json:"radius"`   // Maximum thumb offset
	Deadzone float64 `json:"deadzone"` // Offsets at or below this are ignored per axis
	Region   float64 `json:"region"`   // Touches starting within this distance of the base grab the stick

	ButtonRadius float64 `json:"button_radius"`
	InteractX    float64 `json:"interact_x"`
	InteractY    float64 `json:"interact_y"`
	InventoryX   float64 `json:"inventory_x"`
	InventoryY   float64 `json:"inventory_y"`
}

// InteractionConfig defines the NPC talk range
type InteractionConfig struct {
	Radius float64 `json:"radius"` // NPCs must be strictly closer than this
}

// AnimationConfig defines the walk cycle timing
type AnimationConfig struct {
	FrameIntervalMS int     `json:"frame_interval_ms"`
	SettleFactor    float64 `json:"settle_factor"` // Fraction of the interval before snapping back to idle
	FrameWidth      int     `json:"frame_width"`
	FrameHeight     int     `json:"frame_height"`
}

// SkinConfig defines where player sprite sheets come from
type SkinConfig struct {
	Dir            string  `json:"dir"`
	RegenPerSecond float64 `json:"regen_per_second"` // Limit for procedurally generated sheets
	RegenBurst     int     `json:"regen_burst"`
}

// DefaultConfig returns the values the demo was tuned with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Title:      "An Unexpected Adventure",
			Background: "#87CEEB",
		},
		World: WorldConfig{
			Width:      1600,
			Height:     1200,
			ActorSize:  24,
			SpawnX:     400,
			SpawnY:     300,
			ActorScale: 1.5,
		},
		Movement: MovementConfig{
			Speed:          160,
			DiagonalFactor: 0.707,
		},
		Joystick: JoystickConfig{
			BaseX:        100,
			BaseY:        500,
			Radius:       50,
			Deadzone:     10,
			Region:       80,
			ButtonRadius: 28,
			InteractX:    700,
			InteractY:    500,
			InventoryX:   700,
			InventoryY:   420,
		},
		Interaction: InteractionConfig{
			Radius: 50,
		},
		Animation: AnimationConfig{
			FrameIntervalMS: 60,
			SettleFactor:    0.5,
			FrameWidth:      32,
			FrameHeight:     32,
		},
		Skins: SkinConfig{
			Dir:            "data/skins",
			RegenPerSecond: 2,
			RegenBurst:     1,
		},
	}
}

// LoadConfig loads the config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values the scene cannot run without
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Movement.Speed <= 0 {
		return fmt.Errorf("movement speed must be positive")
	}
	if c.Joystick.Radius <= 0 {
		return fmt.Errorf("joystick radius must be positive")
	}
	if c.Animation.FrameIntervalMS <= 0 {
		return fmt.Errorf("animation frame interval must be positive")
	}
	if c.Animation.FrameWidth <= 0 || c.Animation.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame size: %dx%d", c.Animation.FrameWidth, c.Animation.FrameHeight)
	}
	if _, err := colorful.Hex(c.Window.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// FrameInterval returns the walk cycle step as a duration
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Animation.FrameIntervalMS) * time.Millisecond
}

// BackgroundColor returns the parsed clear color, falling back to sky blue
func (c *Config) BackgroundColor() color.RGBA {
	col, err := colorful.Hex(c.Window.Background)
	if err != nil {
		return color.RGBA{0x87, 0xce, 0xeb, 0xff}
	}
	r, g, b := col.RGB255()
	return color.RGBA{r, g, b, 0xff}
}
