package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
	"github.com/vovakirdan/cardstorm/internal/platform/tui"
	"github.com/vovakirdan/cardstorm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the current terminal.

Controls:
  WASD/Arrows - Steer (keep moving; space halts)
  T           - Toggle auto/manual aim (manual follows the mouse)
  1/2/3       - Pick a card on level up
  P/Esc       - Pause and edit the inventory order
  R           - Restart (after a run ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More HP, gentler wave scaling
  normal - Default balance
  hard   - Less HP, steeper wave scaling
  fixed  - No wave scaling at all

Examples:
  cardstorm play
  cardstorm play --difficulty hard
  cardstorm play --seed 42
  cardstorm play --config ./my-sim.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom sim config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	simCfg, err := config.LoadSim(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplySimPreset(&simCfg, config.ParsePreset(flagDifficulty))

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(&simCfg, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
