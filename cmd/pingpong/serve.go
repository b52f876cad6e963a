package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pingpong/internal/logging"
	"github.com/vovakirdan/tui-pingpong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pingpong SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent game. Sessions share the
arena and speed from the config file; every session gets a fresh seed
unless --seed is set.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pingpong/host_key

Examples:
  pingpong serve                           # Listen on :23234 with auto-generated key
  pingpong serve --ssh :2222               # Listen on port 2222
  pingpong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	_, rc, err := loadRuntime()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Output: os.Stderr,
		Prefix: "pingpong-ssh",
	})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = rc

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		closer.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting pingpong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closer.Close()
		fail("server: %v", err)
	}
}
