// Package console is a direct terminal frontend built on tcell. It draws
// cell by cell and reads keys from tcell's event queue, without Bubble Tea.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pingpong/internal/core"
	"github.com/vovakirdan/tui-pingpong/internal/games/pingpong"
)

// eventBuffer bounds terminal events queued between two polls.
const eventBuffer = 100

// styles maps core colors to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorBrightCyan:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
}

// Console runs the game on a tcell screen.
type Console struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	logger *log.Logger
}

// New initializes screen for play. The caller hands ownership of the screen
// to the Console; Close restores the terminal.
func New(screen tcell.Screen, logger *log.Logger) (*Console, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	c := &Console{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		logger: logger,
	}
	go screen.ChannelEvents(c.events, c.quit)
	return c, nil
}

// Open creates a console on the process terminal.
func Open(logger *log.Logger) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: cannot open terminal: %w", err)
	}
	return New(screen, logger)
}

// PollCommand implements pingpong.InputSource. Events that do not map to a
// command are consumed and count as no command.
func (c *Console) PollCommand(maxWait time.Duration) (core.Command, bool) {
	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	select {
	case ev, ok := <-c.events:
		if !ok {
			c.logger.Debug("event channel closed")
			return core.CommandNone, false
		}
		return c.translate(ev)
	case <-timer.C:
		return core.CommandNone, false
	}
}

// translate maps a tcell event to a command.
func (c *Console) translate(ev tcell.Event) (core.Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return CommandForKey(ev)
	case *tcell.EventResize:
		c.screen.Sync()
	case *tcell.EventError:
		c.logger.Debug("terminal input error", "error", ev.Error())
	}
	return core.CommandNone, false
}

// CommandForKey translates a key event: q, Q, Esc and Ctrl+C quit; the
// arrow keys steer. Everything else is ignored.
func CommandForKey(ev *tcell.EventKey) (core.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.CommandQuit, true
	case tcell.KeyUp:
		return core.CommandUp, true
	case tcell.KeyDown:
		return core.CommandDown, true
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			return core.CommandQuit, true
		case r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			// Some terminals report Ctrl+C as a modified rune.
			return core.CommandQuit, true
		}
	}
	return core.CommandNone, false
}

// Render implements pingpong.Renderer.
func (c *Console) Render(f pingpong.Frame) {
	buf := core.NewScreen(f.Size())
	f.Paint(buf)

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.GetCell(x, y)
			style, ok := styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			c.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	c.screen.Show()
}

// Size returns the terminal size in cells.
func (c *Console) Size() (w, h int) {
	return c.screen.Size()
}

// Close stops the event pump and restores the terminal.
func (c *Console) Close() {
	close(c.quit)
	c.screen.Fini()
}

// Play runs one game with cfg on the console and closes it afterwards.
func Play(ctx context.Context, c *Console, cfg core.RuntimeConfig, opts ...pingpong.Option) error {
	defer c.Close()

	needW, needH := cfg.ScreenSize()
	if w, h := c.Size(); w < needW || h < needH {
		return fmt.Errorf("console: terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
	}

	opts = append([]pingpong.Option{pingpong.WithLogger(c.logger)}, opts...)
	err := pingpong.New(cfg, c, c, opts...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
