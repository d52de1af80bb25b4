package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cardstorm/internal/storage"
)

var flagHistoryRecent bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded run history",
	Long: `Display the top 10 recorded runs, ranked by wave reached then kills.

Examples:
  cardstorm history
  cardstorm history --recent`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "Order by date instead of by wave reached")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunEntry
	if flagHistoryRecent {
		runs, err = store.RecentRuns(10)
	} else {
		runs, err = store.TopRuns(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cardstorm play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-7s  %-9s  %s\n", "Rank", "Wave", "Level", "Kills", "Time", "Outcome", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-7s  %-9s  %s\n", "----", "----", "-----", "-----", "----", "-------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%02d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-5d  %-6d  %-6d  %-7s  %-9s  %s\n",
			i+1, entry.Wave, entry.Level, entry.Kills, timeStr, entry.Outcome, dateStr)
	}

	stats, err := store.GetRunStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best wave: %d  Victories: %d/%d  Total kills: %d\n",
			stats.BestWave, stats.Victories, stats.RunsCount, stats.TotalKills)
	}
}
