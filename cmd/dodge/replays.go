package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sessions, newest first.

With --browse, opens an interactive list: Enter watches the selected
replay, X deletes it.

Examples:
  dodge replays
  dodge replays --limit 50
  dodge replays --browse`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of replays to show")
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse replays interactively")
}

func runReplays(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		return browseReplays(store)
	}
	return listReplays(cmd.OutOrStdout(), store, flagLimit)
}

// listReplays prints the most recent replays as a table.
func listReplays(out io.Writer, store *storage.Store, limit int) error {
	replays, err := store.ListReplays(limit)
	if err != nil {
		return fmt.Errorf("retrieving replays: %w", err)
	}

	fmt.Fprintln(out, "Recorded sessions")
	fmt.Fprintln(out)

	if len(replays) == 0 {
		fmt.Fprintln(out, "No replays recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'dodge play' to record one!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-6s  %-8s  %-9s  %-20s  %s\n", "ID", "Ticks", "Length", "Seed", "Date")
	fmt.Fprintf(out, "  %-6s  %-8s  %-9s  %-20s  %s\n", "--", "-----", "------", "----", "----")

	for _, r := range replays {
		fmt.Fprintf(out, "  %-6d  %-8d  %-9s  %-20d  %s\n",
			r.ID, r.Ticks, r.Duration.Round(100*time.Millisecond).String(), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'dodge replay <id>' to watch one.")
	return nil
}

// browseReplays runs the interactive list and plays whatever is picked,
// returning to the list afterwards.
func browseReplays(store *storage.Store) error {
	for {
		rc := runtimeConfig()
		id, err := tui.RunReplayList(store, rc.ScreenW, rc.ScreenH)
		if err != nil {
			return fmt.Errorf("running replay list: %w", err)
		}
		if id == 0 {
			return nil
		}

		rec, err := store.LoadReplay(id)
		if err != nil {
			return err
		}
		if err := tui.RunReplay(id, rec, rc); err != nil {
			return fmt.Errorf("running replay: %w", err)
		}
	}
}
