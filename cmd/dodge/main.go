// dodge is a terminal arcade game: slide along the bottom of the playfield,
// avoid the falling red blocks and catch the green ones.
//
// Usage:
//
//	dodge play               - Play in the terminal
//	dodge replays            - List recorded sessions
//	dodge replay <id>        - Watch a recorded session
//	dodge config             - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.dodge/replays.db)
//	--log-file <path>  - Write logs to a file (default: no logging)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - avoid the falling blocks in your terminal",
	Long: `Dodge is a terminal arcade game. Move the blue square along the
bottom of the playfield, avoid the red blocks and catch the green ones.
The blocks fall faster every few seconds.

Available commands:
  play     - Play a session
  replays  - List or browse recorded sessions
  replay   - Watch a recorded session
  config   - Print the effective game configuration

Examples:
  dodge play
  dodge play --config ./hard.yaml
  dodge replays --browse
  dodge replay 3`,
	SilenceErrors: true, // Printed once by main
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/replays.db", "Path to replays database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the platform settings from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}
