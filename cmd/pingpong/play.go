package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pingpong/internal/core"
	"github.com/vovakirdan/tui-pingpong/internal/logging"
	"github.com/vovakirdan/tui-pingpong/internal/platform/console"
	"github.com/vovakirdan/tui-pingpong/internal/platform/tui"
)

const (
	frontendTea   = "tea"
	frontendTcell = "tcell"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Up/Down    - Move the paddle
  Q/Esc      - Quit
  Ctrl+C     - Quit

Frontends:
  tea    - Bubble Tea program with a help line (default)
  tcell  - Direct tcell screen

Examples:
  pingpong play
  pingpong play --frontend tcell
  pingpong play --config ./my-pingpong.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTea, "Terminal frontend: tea or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	_, rc, err := loadRuntime()
	if err != nil {
		fail("%v", err)
	}

	if err := checkTerminal(rc); err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "pingpong",
	})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := play(ctx, rc, logger); err != nil {
		closer.Close()
		fail("%v", err)
	}
}

func play(ctx context.Context, rc core.RuntimeConfig, logger *log.Logger) error {
	switch flagFrontend {
	case frontendTcell:
		c, err := console.Open(logger)
		if err != nil {
			return err
		}
		return console.Play(ctx, c, rc)
	case frontendTea, "":
		return tui.NewSession(rc, logger, nil).Run(ctx)
	default:
		return errUnknownFrontend(flagFrontend)
	}
}

// checkTerminal rejects non-interactive output and terminals that cannot fit
// the arena and its border.
func checkTerminal(rc core.RuntimeConfig) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		// Size unknown; the frontends check again once they own the screen.
		return nil
	}
	needW, needH := rc.ScreenSize()
	if w < needW || h < needH {
		return errTooSmall(needW, needH, w, h)
	}
	return nil
}
