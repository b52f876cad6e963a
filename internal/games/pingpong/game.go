// Package pingpong implements a single-paddle ping-pong game on a bordered
// character grid. The paddle is steered from the keyboard; the ball bounces
// off the arena borders on its own.
package pingpong

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// Tick interval settings, in milliseconds.
const (
	MinInterval = 200
	MaxInterval = 700
)

// PaddleColumn is the fixed column of the paddle.
const PaddleColumn = 2

// InputSource delivers commands to the game loop.
// PollCommand blocks for at most maxWait and reports false when no command
// arrived in time. Read failures are reported as no command.
type InputSource interface {
	PollCommand(maxWait time.Duration) (core.Command, bool)
}

// Renderer presents frames produced by the game loop.
type Renderer interface {
	Render(f Frame)
}

// State is the game loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Game owns the paddle and the ball and drives them with a fixed-tick loop.
type Game struct {
	config   core.RuntimeConfig
	player   *Player
	ball     *Ball
	rng      *rand.Rand
	clock    core.Clock
	input    InputSource
	renderer Renderer
	logger   *log.Logger
	state    State
	tick     uint64
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used to time ticks.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger used for session and tick events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game for the given arena, reading commands from input and
// drawing through renderer.
func New(cfg core.RuntimeConfig, input InputSource, renderer Renderer, opts ...Option) *Game {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	g := &Game{
		config:   cfg,
		rng:      rng,
		player:   NewPlayer(PaddleColumn, 1+cfg.ArenaH/3, cfg.ArenaH/3),
		ball:     NewBall(cfg.ArenaW/2, cfg.ArenaH/2, rng),
		clock:    core.SystemClock{},
		input:    input,
		renderer: renderer,
		logger:   log.New(io.Discard),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TickInterval returns the time budget of one tick at the given speed.
// The step between speeds uses integer division.
func TickInterval(speed int) time.Duration {
	ms := MinInterval + ((MaxInterval-MinInterval)/core.MaxSpeed)*(core.MaxSpeed-speed)
	return time.Duration(ms) * time.Millisecond
}

// Interval returns the tick interval for this session's speed.
func (g *Game) Interval() time.Duration {
	return TickInterval(g.config.Speed)
}

// Player returns the paddle.
func (g *Game) Player() *Player {
	return g.player
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Config returns the runtime configuration, with the resolved seed.
func (g *Game) Config() core.RuntimeConfig {
	return g.config
}

// Run draws the initial frame and then runs ticks until a Quit command
// arrives or ctx is done. It returns nil after Quit and ctx.Err() otherwise.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("session started",
		"arena_w", g.config.ArenaW,
		"arena_h", g.config.ArenaH,
		"speed", g.config.Speed,
		"interval", g.Interval(),
		"seed", g.config.Seed,
	)
	g.render()

	var err error
	for g.state == StateRunning {
		if err = g.awaitTick(ctx); err != nil {
			g.state = StateTerminated
			break
		}
		g.Step()
		g.render()
	}

	g.logger.Info("session ended", "ticks", g.tick)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// errQuit ends the loop after a Quit command.
var errQuit = errors.New("pingpong: quit")

// awaitTick spends one tick interval polling for commands. It returns
// errQuit or ctx's error when the session must end before the tick runs.
func (g *Game) awaitTick(ctx context.Context) error {
	interval := g.Interval()
	start := g.clock.Now()

	for {
		elapsed := g.clock.Now().Sub(start)
		if elapsed >= interval {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, ok := g.input.PollCommand(interval - elapsed)
		if !ok {
			continue
		}
		if g.HandleCommand(cmd) {
			return errQuit
		}
	}
}

// HandleCommand applies a command received during a tick and reports
// whether it ends the session. Directional commands only arm a paddle move;
// the move itself happens in Step.
func (g *Game) HandleCommand(cmd core.Command) bool {
	switch cmd {
	case core.CommandQuit:
		g.logger.Debug("quit requested", "tick", g.tick)
		return true
	case core.CommandUp, core.CommandDown:
		g.player.Steer(cmd)
	}
	return false
}

// Step advances the simulation by one tick: the pending paddle move and one
// ball step, plus the proximity glyph effect when the config enables it.
func (g *Game) Step() {
	g.tick++

	g.player.Move(g.config.ArenaH)
	g.ball.Move(g.config.ArenaW, g.config.ArenaH)
	if g.config.ProximityGlyph {
		g.ball.OverlapsWith(g.player)
	}

	g.logger.Debug("tick",
		"tick", g.tick,
		"paddle_y", g.player.Position().Y,
		"ball_x", g.ball.Position().X,
		"ball_y", g.ball.Position().Y,
	)
}

// Frame returns the current state as a frame to draw.
func (g *Game) Frame() Frame {
	return Frame{
		Tick:         g.tick,
		ArenaW:       g.config.ArenaW,
		ArenaH:       g.config.ArenaH,
		Paddle:       g.player.Position(),
		PaddleHeight: g.player.Height(),
		Ball:         g.ball.Position(),
		BallGlyph:    g.ball.Glyph(),
	}
}

func (g *Game) render() {
	if g.renderer != nil {
		g.renderer.Render(g.Frame())
	}
}
