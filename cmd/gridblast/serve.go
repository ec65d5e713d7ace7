package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridblast/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Grid Blast SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - --host-key (or GRIDBLAST_HOST_KEY) names the key file
  - An empty path auto-generates a key in the gridblast data directory

Examples:
  gridblast serve                           # Listen on :2222
  gridblast serve --ssh :23234              # Listen on port 23234
  gridblast serve --host-key ./my_host_key  # Use specific host key
  gridblast serve --db ./scores.db          # Use specific database
  gridblast serve --idle-timeout 5m         # Drop idle players sooner

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", settings.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", settings.HostKey, "Path to host key file (empty = auto-generated)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", settings.IdleTimeout, "Idle time before disconnecting (e.g. 30s, 15m)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfigFromSettings(settings)
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("gridblast-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Grid Blast SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
