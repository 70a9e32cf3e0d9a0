package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagShowConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Load and validate the game config the same way 'play' does, then print
it as YAML. Useful as a starting point for a custom config file.

Search order:
  --config path, ~/.arcade/configs/flappy.yaml, ./configs/flappy.yaml,
  built-in defaults

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml
  flappy config > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadFlappy(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
