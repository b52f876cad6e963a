package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

//go:embed defaults/pingpong.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  core.DefaultArenaWidth,
			Height: core.DefaultArenaHeight,
		},
		Speed: core.DefaultSpeed,
		Ball: BallConfig{
			ProximityGlyph: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
