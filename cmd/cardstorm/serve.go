package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagSSHDBPath      string
	flagIdleTimeout    int
	flagServeConfig    string
	flagServeDifficult string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cardstorm SSH server",
	Long: `Start an SSH server that lets users connect and play over the network.

Each SSH connection gets its own run; the run history is stored
per-server, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cardstorm/host_key

Examples:
  cardstorm serve                           # Listen on :23234 with auto-generated key
  cardstorm serve --ssh :2222               # Listen on port 2222
  cardstorm serve --host-key ./my_host_key  # Use specific host key
  cardstorm serve --difficulty hard         # Everyone suffers together

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.cardstorm/runs.db", "Path to runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom sim config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficult, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		ConfigPath:  flagServeConfig,
		Difficulty:  config.ParsePreset(flagServeDifficult),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting cardstorm SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
