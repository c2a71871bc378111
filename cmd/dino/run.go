package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/driver"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/script"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagScript string
	flagTicks  int
	flagRecord bool
	flagFrame  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an input script headlessly",
	Long: `Run the simulation without a terminal UI and print the final state.

Without --script the actor stands still for --ticks ticks. A script fixes
its own seed and length; --seed overrides the script's seed when given.

Script format:
  seed: 42
  ticks: 600
  events:
    - {tick: 10, action: jump}
    - {tick: 200, action: duck, held: 30}

Examples:
  dino run --ticks 1000 --seed 7
  dino run --script ./runs/jumpy.yaml --frame
  dino run --script ./runs/jumpy.yaml --record`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "Path to an input script (YAML)")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Ticks to run when no script is given")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Record finished runs in the journal")
	runCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame as text")
}

func runRun(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("embedded constants rejected, using built-in defaults", "error", err)
	}

	var s *script.Script
	if flagScript != "" {
		s, err = script.Load(flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("seed") {
			s.Seed = flagSeed
		}
	} else {
		if flagTicks <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --ticks must be positive")
			os.Exit(1)
		}
		s = script.Idle(seed(), flagTicks)
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.World.TickRate
	game := runner.NewGame(cfg, rt)

	logger.Debug("replaying", "seed", s.Seed, "ticks", s.Ticks, "events", len(s.Events))
	out := script.Replay(game, s)

	if flagRecord && len(out.Finished) > 0 {
		recordRuns(game, s.Seed, out.Finished)
	}

	printOutcome(s, out)

	if flagFrame {
		screen := core.NewScreen(80, 20)
		tui.NewRenderer(game.Simulation().WorldWidth()).Render(screen, driver.Snapshot{
			World: out.Final,
			Phase: out.Final.Phase(),
			Seed:  s.Seed,
		})
		fmt.Println()
		fmt.Println(screen.String())
	}
}

// recordRuns saves every finished run to the journal.
func recordRuns(game *runner.Game, seed int64, finished []runner.World) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for _, w := range finished {
		err := store.SaveRun(driver.RunResult{
			GameID:    game.ID(),
			Seed:      seed,
			Score:     w.Score,
			HighScore: w.HighScore,
			Ticks:     w.Tick,
			EndedAt:   time.Now(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

func printOutcome(s *script.Script, out script.Outcome) {
	w := out.Final
	fmt.Printf("Seed:       %d\n", s.Seed)
	fmt.Printf("Ticks:      %d of %d\n", w.Tick, s.Ticks)
	fmt.Printf("Phase:      %s\n", w.Phase())
	fmt.Printf("Score:      %d\n", w.Score)
	fmt.Printf("High score: %d\n", w.HighScore)
	fmt.Printf("Speed:      %.3f\n", w.Speed)
	fmt.Printf("Obstacles:  %d\n", len(w.Obstacles))

	if len(out.Finished) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %s\n", "Run", "Score", "Ticks")
	fmt.Printf("  %-4s  %-8s  %s\n", "---", "-----", "-----")
	for i, f := range out.Finished {
		fmt.Printf("  %-4d  %-8d  %d\n", i+1, f.Score, f.Tick)
	}
}
