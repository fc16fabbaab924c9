// snake is a terminal snake game on a fixed 10x10 board.
//
// Usage:
//
//	snake                 - Play a game (same as "snake play")
//	snake play            - Play a game
//	snake serve           - Start SSH server for remote play
//	snake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a 10x10 board. Eat apples to grow; the game ends when the
snake leaves the board or runs into itself.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --fps 6
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
