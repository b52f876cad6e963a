// pingpong is a terminal ping-pong game: steer a paddle while a ball bounces
// around a bordered arena.
//
// Usage:
//
//	pingpong                 - Play in this terminal
//	pingpong play            - Same as above, with frontend options
//	pingpong serve           - Start SSH server for remote play
//	pingpong config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pingpong/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a rotating file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pingpong/internal/config"
	"github.com/vovakirdan/tui-pingpong/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Terminal ping-pong",
	Long: `pingpong draws a paddle and a bouncing ball inside a bordered arena
and lets you steer the paddle with the arrow keys.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pingpong
  pingpong play --frontend tcell
  pingpong --seed 42 --log-file /tmp/pingpong.log
  pingpong serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (play discards logs when empty)")

	rootCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTea, "Terminal frontend: tea or tcell")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuntime resolves the config file and turns it into the game's runtime
// settings.
func loadRuntime() (config.Config, core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, core.RuntimeConfig{}, err
	}
	return cfg, cfg.Runtime(flagSeed), nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
