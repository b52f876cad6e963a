// Package config provides YAML-based game configuration loading for the
// ping-pong game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// Limits on configurable values.
const (
	MinArenaSize = 3
	MaxArenaSize = 200
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the ping-pong game.
type Config struct {
	Arena ArenaConfig `yaml:"arena"`
	Speed int         `yaml:"speed"`
	Ball  BallConfig  `yaml:"ball"`
}

// ArenaConfig defines the playfield interior size.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines ball presentation options.
type BallConfig struct {
	ProximityGlyph bool `yaml:"proximity_glyph"`
}

// Validate checks that the config describes a playable arena.
func (c Config) Validate() error {
	if c.Arena.Width < MinArenaSize || c.Arena.Width > MaxArenaSize {
		return fmt.Errorf("%w: arena.width %d outside [%d, %d]", ErrInvalid, c.Arena.Width, MinArenaSize, MaxArenaSize)
	}
	if c.Arena.Height < MinArenaSize || c.Arena.Height > MaxArenaSize {
		return fmt.Errorf("%w: arena.height %d outside [%d, %d]", ErrInvalid, c.Arena.Height, MinArenaSize, MaxArenaSize)
	}
	if c.Speed < core.MinSpeed || c.Speed > core.MaxSpeed {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalid, c.Speed, core.MinSpeed, core.MaxSpeed)
	}
	return nil
}

// Runtime converts the config into the game's runtime configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ArenaW:         c.Arena.Width,
		ArenaH:         c.Arena.Height,
		Speed:          c.Speed,
		Seed:           seed,
		ProximityGlyph: c.Ball.ProximityGlyph,
	}
}
