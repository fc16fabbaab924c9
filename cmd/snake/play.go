package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagFPS  int
	flagSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl - Change direction
  Esc/Q/Ctrl+C     - Quit

The snake waits for the first direction key before moving.

Examples:
  snake play
  snake play --fps 8
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in steps per second (0 = config value)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for apple placement (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	// Screen size keeps the defaults when stdout is not a terminal
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate
	rc.Seed = flagSeed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	result, err := tui.Run(cfg, rc)
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}

	logger.Info("game finished",
		"score", result.Score,
		"ticks", result.Tick,
		"end", result.End,
		"head", result.Head.String(),
	)
}
