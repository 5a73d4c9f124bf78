package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration 'dodge play' would use, as YAML.

Configuration is loaded from the first of:
  --config <path>
  ~/.dodge/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  dodge config
  dodge config --config ./my-dodge.yaml
  dodge config --defaults > ~/.dodge/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
