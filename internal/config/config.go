// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Renderer names accepted by game.renderer.
const (
	RendererTerminal = "terminal"
	RendererWindow   = "window"
)

// minRoomSize is the smallest room the painter can stamp corners, walls,
// a door and a centered prop into.
const minRoomSize = 7

// GameConfig holds session settings.
type GameConfig struct {
	// Seed for random number generation. A seed of 0 means a time-based seed.
	Seed int64 `mapstructure:"seed"`
	// Renderer is the frontend: "terminal" or "window".
	Renderer string `mapstructure:"renderer"`
	// Locale selects the HUD translation catalog.
	Locale string `mapstructure:"locale"`
	// StepFrames is the number of frames between two steps while a key is held.
	StepFrames int `mapstructure:"step_frames"`
	// DescendFrames is the length of the fade after reaching the stairs.
	DescendFrames int `mapstructure:"descend_frames"`
}

// RangeConfig is an inclusive min/max pair.
type RangeConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// DungeonConfig holds level generation settings.
type DungeonConfig struct {
	Width       int         `mapstructure:"width"`
	Height      int         `mapstructure:"height"`
	DoorPadding int         `mapstructure:"door_padding"`
	MaxRooms    int         `mapstructure:"max_rooms"`
	RoomWidth   RangeConfig `mapstructure:"room_width"`
	RoomHeight  RangeConfig `mapstructure:"room_height"`
	OnlyOdd     bool        `mapstructure:"only_odd"`
}

// WindowConfig holds graphical frontend settings.
type WindowConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	TileSize int    `mapstructure:"tile_size"`
	Title    string `mapstructure:"title"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the log destination. The terminal frontend owns stdout.
	File string `mapstructure:"file"`
}

// TelemetryConfig holds tracing export settings.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT when set.
	Endpoint string `mapstructure:"endpoint"`
}

// Config is the top-level application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Dungeon   DungeonConfig   `mapstructure:"dungeon"`
	Window    WindowConfig    `mapstructure:"window"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	for _, err := range []error{
		validateGame(c.Game),
		validateDungeon(c.Dungeon),
		validateWindow(c.Window),
		validateLogging(c.Logging),
		validateTelemetry(c.Telemetry),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Renderer != RendererTerminal && g.Renderer != RendererWindow {
		errs = append(errs, fmt.Sprintf("game.renderer must be one of [terminal, window], got %q", g.Renderer))
	}
	if g.Locale == "" {
		errs = append(errs, "game.locale must not be empty")
	}
	if g.StepFrames < 0 {
		errs = append(errs, fmt.Sprintf("game.step_frames must be >= 0, got %d", g.StepFrames))
	}
	if g.DescendFrames < 1 {
		errs = append(errs, fmt.Sprintf("game.descend_frames must be >= 1, got %d", g.DescendFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDungeon(d DungeonConfig) error {
	var errs []string

	// A door stamp is three tiles wide and must leave the corner tiles intact.
	if d.DoorPadding < 2 {
		errs = append(errs, fmt.Sprintf("dungeon.door_padding must be >= 2, got %d", d.DoorPadding))
	}
	if d.MaxRooms < 1 {
		errs = append(errs, fmt.Sprintf("dungeon.max_rooms must be >= 1, got %d", d.MaxRooms))
	}

	minSize := max(minRoomSize, 2*d.DoorPadding+1)
	for _, r := range []struct {
		name  string
		rng   RangeConfig
		limit int
	}{
		{"room_width", d.RoomWidth, d.Width},
		{"room_height", d.RoomHeight, d.Height},
	} {
		if r.rng.Min < minSize {
			errs = append(errs, fmt.Sprintf("dungeon.%s.min must be >= %d, got %d", r.name, minSize, r.rng.Min))
		}
		if r.rng.Max < r.rng.Min {
			errs = append(errs, fmt.Sprintf("dungeon.%s.max must not be below min (%d < %d)", r.name, r.rng.Max, r.rng.Min))
		} else if d.OnlyOdd && r.rng.Min|1 > r.rng.Max {
			errs = append(errs, fmt.Sprintf("dungeon.%s has no odd size in [%d, %d]", r.name, r.rng.Min, r.rng.Max))
		}
		if r.rng.Max > r.limit {
			errs = append(errs, fmt.Sprintf("dungeon.%s.max %d does not fit the dungeon (%d)", r.name, r.rng.Max, r.limit))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateWindow(w WindowConfig) error {
	var errs []string
	if w.Width < 1 || w.Height < 1 {
		errs = append(errs, fmt.Sprintf("window size must be positive, got %dx%d", w.Width, w.Height))
	}
	if w.TileSize < 4 {
		errs = append(errs, fmt.Sprintf("window.tile_size must be >= 4, got %d", w.TileSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.File == "" {
		return errors.New("logging.file must not be empty")
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if t.Enabled && t.ServiceName == "" {
		return errors.New("telemetry.service_name must not be empty when telemetry is enabled")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with INFGAME_ prefix
	v.SetEnvPrefix("INFGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Renderer:      RendererTerminal,
			Locale:        "en",
			StepFrames:    6,
			DescendFrames: 15,
		},
		Dungeon: DungeonConfig{
			Width:       50,
			Height:      50,
			DoorPadding: 2,
			MaxRooms:    50,
			RoomWidth:   RangeConfig{Min: 7, Max: 15},
			RoomHeight:  RangeConfig{Min: 7, Max: 15},
			OnlyOdd:     true,
		},
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			TileSize: 48,
			Title:    "inf-game",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "inf-game.log",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "inf-game",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("game.seed", d.Game.Seed)
	v.SetDefault("game.renderer", d.Game.Renderer)
	v.SetDefault("game.locale", d.Game.Locale)
	v.SetDefault("game.step_frames", d.Game.StepFrames)
	v.SetDefault("game.descend_frames", d.Game.DescendFrames)

	v.SetDefault("dungeon.width", d.Dungeon.Width)
	v.SetDefault("dungeon.height", d.Dungeon.Height)
	v.SetDefault("dungeon.door_padding", d.Dungeon.DoorPadding)
	v.SetDefault("dungeon.max_rooms", d.Dungeon.MaxRooms)
	v.SetDefault("dungeon.room_width.min", d.Dungeon.RoomWidth.Min)
	v.SetDefault("dungeon.room_width.max", d.Dungeon.RoomWidth.Max)
	v.SetDefault("dungeon.room_height.min", d.Dungeon.RoomHeight.Min)
	v.SetDefault("dungeon.room_height.max", d.Dungeon.RoomHeight.Max)
	v.SetDefault("dungeon.only_odd", d.Dungeon.OnlyOdd)

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.tile_size", d.Window.TileSize)
	v.SetDefault("window.title", d.Window.Title)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
}
