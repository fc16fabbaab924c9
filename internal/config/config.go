// Package config provides YAML-based configuration for the snake front ends.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Config contains the presentation settings. Board geometry is fixed and not
// configurable.
type Config struct {
	TickRate int         `yaml:"tick_rate"`
	Cell     CellConfig  `yaml:"cell"`
	Glyphs   GlyphConfig `yaml:"glyphs"`
	Colors   ColorConfig `yaml:"colors"`
}

// CellConfig is the size of one board cell in screen characters.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GlyphConfig holds the single-character glyphs for board elements.
type GlyphConfig struct {
	Snake string `yaml:"snake"`
	Head  string `yaml:"head"`
	Apple string `yaml:"apple"`
}

// ColorConfig holds color names for board elements.
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Apple  string `yaml:"apple"`
	Border string `yaml:"border"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.Cell.Width, c.Cell.Height))
	}
	for _, g := range []struct{ name, value string }{
		{"snake", c.Glyphs.Snake},
		{"head", c.Glyphs.Head},
		{"apple", c.Glyphs.Apple},
	} {
		if utf8.RuneCountInString(g.value) != 1 {
			errs = append(errs, fmt.Errorf("glyphs.%s must be a single character, got %q", g.name, g.value))
		}
	}
	if _, err := c.Style(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Style converts the glyph and color settings into a render style.
func (c Config) Style() (render.Style, error) {
	st := render.DefaultStyle()

	var err error
	if st.SnakeColor, err = core.ParseColor(c.Colors.Snake); err != nil {
		return st, fmt.Errorf("colors.snake: %w", err)
	}
	if st.AppleColor, err = core.ParseColor(c.Colors.Apple); err != nil {
		return st, fmt.Errorf("colors.apple: %w", err)
	}
	if st.BorderColor, err = core.ParseColor(c.Colors.Border); err != nil {
		return st, fmt.Errorf("colors.border: %w", err)
	}

	st.Snake = firstRune(c.Glyphs.Snake, st.Snake)
	st.Head = firstRune(c.Glyphs.Head, st.Head)
	st.Apple = firstRune(c.Glyphs.Apple, st.Apple)
	return st, nil
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
