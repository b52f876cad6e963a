// Package tui provides the Bubble Tea frontend for the ping-pong game.
// A Session owns the terminal through a tea.Program and adapts it to the
// game loop's blocking InputSource and Renderer interfaces.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pingpong/internal/core"
	"github.com/vovakirdan/tui-pingpong/internal/games/pingpong"
)

// commandBuffer bounds keys queued between two polls.
const commandBuffer = 16

// Session runs one game inside a Bubble Tea program.
type Session struct {
	config   core.RuntimeConfig
	program  *tea.Program
	commands chan core.Command
	done     chan struct{}
	runErr   error
	logger   *log.Logger
}

// NewSession prepares a program for cfg. Extra program options select the
// terminal (e.g. an SSH session's input and output). A nil renderer uses
// lipgloss's default renderer.
func NewSession(cfg core.RuntimeConfig, logger *log.Logger, r *lipgloss.Renderer, opts ...tea.ProgramOption) *Session {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	commands := make(chan core.Command, commandBuffer)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
	}, opts...)

	return &Session{
		config:   cfg,
		program:  tea.NewProgram(NewModel(cfg, commands, r), opts...),
		commands: commands,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// PollCommand implements pingpong.InputSource.
// Once the program has exited every poll reports Quit.
func (s *Session) PollCommand(maxWait time.Duration) (core.Command, bool) {
	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	select {
	case cmd := <-s.commands:
		return cmd, true
	case <-s.done:
		return core.CommandQuit, true
	case <-timer.C:
		return core.CommandNone, false
	}
}

// Render implements pingpong.Renderer.
func (s *Session) Render(f pingpong.Frame) {
	screen := core.NewScreen(f.Size())
	f.Paint(screen)
	s.program.Send(frameMsg{screen: screen})
}

// Resize reports a terminal size change to the program. Needed when the
// program's output is not a local terminal, as with SSH sessions.
func (s *Session) Resize(width, height int) {
	s.program.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Run starts the program, plays one game on the calling goroutine and
// restores the terminal before returning. Program start-up failures are
// returned as errors.
func (s *Session) Run(ctx context.Context, opts ...pingpong.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(s.done)
		defer cancel()
		if _, err := s.program.Run(); err != nil {
			s.runErr = err
		}
	}()

	opts = append([]pingpong.Option{pingpong.WithLogger(s.logger)}, opts...)
	game := pingpong.New(s.config, s, s, opts...)
	playErr := game.Run(ctx)

	s.program.Quit()
	<-s.done

	return exitError(s.runErr, playErr)
}

// exitError folds the program's and the game's results into the session
// result. A killed or interrupted program and a cancelled game are clean exits.
func exitError(runErr, playErr error) error {
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) && !errors.Is(runErr, tea.ErrInterrupted) {
		return fmt.Errorf("tui: %w", runErr)
	}
	if errors.Is(playErr, context.Canceled) {
		return nil
	}
	return playErr
}
