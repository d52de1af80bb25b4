// cardstorm is a terminal survival arena driven by an ordered card inventory.
//
// Usage:
//
//	cardstorm play            - Start a run in the current terminal
//	cardstorm serve           - Start SSH server for remote play
//	cardstorm history         - Show recorded run history
//	cardstorm cards           - List the card catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.cardstorm/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cardstorm",
	Short: "Cardstorm - card-driven survival arena in your terminal",
	Long: `Cardstorm is a top-down survival arena where your weapons are cards:
the order of the inventory decides how effects, buffs, and artifacts
combine, and reordering it mid-run is the core strategic move.

Available commands:
  play     - Start a run in the current terminal
  serve    - Start SSH server for remote play
  history  - View recorded run history
  cards    - List the card catalog

Examples:
  cardstorm play
  cardstorm play --difficulty hard
  cardstorm serve --ssh :2222
  cardstorm history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cardstorm/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(cardsCmd)
}
