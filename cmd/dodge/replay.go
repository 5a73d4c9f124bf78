package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagHeadless bool
	flagDelete   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded session",
	Long: `Re-simulate a recorded session from its seed and inputs.

By default the replay plays back in the terminal at the --fps rate.
With --headless it is simulated instantly and the final state is printed,
which is handy for checking that a recording still reproduces.

Examples:
  dodge replay 3
  dodge replay 3 --fps 120
  dodge replay 3 --headless
  dodge replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without a UI and print the result")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay instead of playing it")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagDelete {
		if err := store.DeleteReplay(id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted replay #%d\n", id)
		return nil
	}

	rec, err := store.LoadReplay(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no replay with id %d, run 'dodge replays' to see recorded sessions: %w", id, err)
	}
	if err != nil {
		return err
	}

	if flagHeadless {
		final := replay.Play(rec)
		fmt.Fprintf(out, "Replay #%d (seed %d)\n", id, rec.Seed)
		fmt.Fprintf(out, "  Ticks:     %d\n", final.Tick)
		fmt.Fprintf(out, "  Score:     %d\n", final.Score)
		fmt.Fprintf(out, "  Speed:     %.1f\n", final.Speed)
		fmt.Fprintf(out, "  Game over: %v\n", final.GameOver)
		return nil
	}

	if err := tui.RunReplay(id, rec, runtimeConfig()); err != nil {
		return fmt.Errorf("running replay: %w", err)
	}
	return nil
}
