package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: core.DefaultTickRate,
		Cell: CellConfig{
			Width:  2,
			Height: 1,
		},
		Glyphs: GlyphConfig{
			Snake: "█",
			Head:  "█",
			Apple: "●",
		},
		Colors: ColorConfig{
			Snake:  "yellow",
			Apple:  "red",
			Border: "white",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
