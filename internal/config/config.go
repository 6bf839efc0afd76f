// Package config loads game configuration from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration options.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig holds the generation parameters supplied once before the map is
// built.
type MapConfig struct {
	Width    uint32  `yaml:"width"`
	Height   uint32  `yaml:"height"`
	TileSize float64 `yaml:"tile_size"` // world units per cell
}

// GameConfig holds timing parameters for the simulation loop.
type GameConfig struct {
	MoveTime   float64 `yaml:"move_time"`   // seconds to cross one cell
	TickMillis int     `yaml:"tick_millis"` // simulation tick interval
}

// LoggingConfig selects the zap logger's level and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Default returns the built-in configuration: a 31x31 map of 16-unit tiles,
// half-second steps, ~30Hz ticks.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:    31,
			Height:   31,
			TileSize: 16.0,
		},
		Game: GameConfig{
			MoveTime:   0.5,
			TickMillis: 33,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML config at path, layered over the defaults. A missing
// file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Map.Width == 0 || c.Map.Height == 0 {
		return errors.New("map dimensions must be positive")
	}
	if c.Map.TileSize <= 0 {
		return errors.New("tile_size must be positive")
	}
	if c.Game.MoveTime <= 0 {
		return errors.New("move_time must be positive")
	}
	if c.Game.TickMillis <= 0 {
		return errors.New("tick_millis must be positive")
	}
	return nil
}
