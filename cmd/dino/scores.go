package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// gameID is the journal key runs are recorded under.
const gameID = "dino"

var (
	flagLimit int
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run journal",
	Long: `Display the best recorded runs.

On a terminal the journal opens as an interactive table; pipes and
--plain get a text listing.

Examples:
  dino scores
  dino scores --plain --limit 20
  dino scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	tickRate := config.MustLoad().World.TickRate
	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunScoreboard(store, gameID, tickRate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Dino Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dino play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-20d  %s\n",
			i+1, r.Score, r.Duration(tickRate).Round(100 * time.Millisecond), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("%d runs, best %d, average %.1f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
}
