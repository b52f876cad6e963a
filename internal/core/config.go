package core

// Arena and speed defaults used when no configuration overrides them.
const (
	DefaultArenaWidth  = 15
	DefaultArenaHeight = 15
	DefaultSpeed       = 1
)

// Speed levels. The tick interval shrinks as the level rises.
const (
	MinSpeed = 1
	MaxSpeed = 20
)

// RuntimeConfig contains configuration passed to the game at construction.
// The arena is fixed for the whole session.
type RuntimeConfig struct {
	ArenaW int   // Interior width in cells (border excluded)
	ArenaH int   // Interior height in cells (border excluded)
	Speed  int   // Fixed speed level, MinSpeed..MaxSpeed
	Seed   int64 // RNG seed for deterministic gameplay (0 = time-based)

	// ProximityGlyph enables the glyph change when the ball is level with the paddle.
	// Off by default: the classic game keeps the ball's glyph fixed.
	ProximityGlyph bool
}

// DefaultConfig returns a RuntimeConfig with the classic 15x15 arena.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ArenaW:         DefaultArenaWidth,
		ArenaH:         DefaultArenaHeight,
		Speed:          DefaultSpeed,
		Seed:           0, // 0 means use current time
		ProximityGlyph: false,
	}
}

// ScreenSize returns the drawable size: the interior plus a one-cell border.
func (c RuntimeConfig) ScreenSize() (w, h int) {
	return c.ArenaW + 2, c.ArenaH + 2
}
