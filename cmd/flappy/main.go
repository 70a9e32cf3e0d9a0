// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play a game
//	flappy scores [-i]       - Show high scores
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective game config
//	flappy list              - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// gameID is the registered game the commands operate on.
const gameID = "flappy"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap a bird through pipes in your terminal",
	Long: `Flappy is a terminal Flappy Bird clone. Flap through the gaps between
pipes; every column of pipes that appears scores a point.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game config
  list     - Show available games

Examples:
  flappy play
  flappy play --seed 42 --config ./my-flappy.yaml
  flappy scores -i
  flappy serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
