package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, as YAML.

Search order: --config, ~/.snake/config.yaml, ./configs/snake.yaml,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Error("cannot encode config", "error", err)
		os.Exit(1)
	}
	cmd.OutOrStdout().Write(data) //nolint:errcheck // stdout write
}
