// Package config provides YAML-based puzzle configuration loading and
// environment-driven process settings for gridblast.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridblast/internal/core"
	blast "github.com/vovakirdan/gridblast/internal/games/blast/core"
)

// BlastConfig contains all configuration for the grid puzzle.
type BlastConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Theme    ThemeConfig    `yaml:"theme"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig sets the side length of each registered variant.
type BoardConfig struct {
	Size   int `yaml:"size"`    // classic variant
	XLSize int `yaml:"xl_size"` // blast_xl variant
}

// ThemeConfig names the colors used by the renderer.
// Values are color names understood by core.ParseColor.
type ThemeConfig struct {
	Filled  string `yaml:"filled"`
	Empty   string `yaml:"empty"`
	Valid   string `yaml:"valid"`
	Invalid string `yaml:"invalid"`
	Border  string `yaml:"border"`
	Used    string `yaml:"used"`
	Accent  string `yaml:"accent"`
}

// ControlsConfig tunes cursor behavior.
type ControlsConfig struct {
	WrapCursor bool `yaml:"wrap_cursor"`
}

// Palette is a ThemeConfig resolved to screen colors.
type Palette struct {
	Filled  core.Color
	Empty   core.Color
	Valid   core.Color
	Invalid core.Color
	Border  core.Color
	Used    core.Color
	Accent  core.Color
}

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks board sizes and theme color names.
func (c BlastConfig) Validate() error {
	if !blast.ValidBoardSize(c.Board.Size) {
		return fmt.Errorf("%w: board.size %d is outside %d..%d", ErrInvalidConfig, c.Board.Size, blast.MinBoardSize, blast.MaxBoardSize)
	}
	if !blast.ValidBoardSize(c.Board.XLSize) {
		return fmt.Errorf("%w: board.xl_size %d is outside %d..%d", ErrInvalidConfig, c.Board.XLSize, blast.MinBoardSize, blast.MaxBoardSize)
	}
	for _, field := range c.Theme.fields() {
		if field.value == "" {
			continue
		}
		if _, ok := core.ParseColor(field.value); !ok {
			return fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalidConfig, field.name, field.value)
		}
	}
	return nil
}

type themeField struct {
	name  string
	value string
}

func (t ThemeConfig) fields() []themeField {
	return []themeField{
		{"filled", t.Filled},
		{"empty", t.Empty},
		{"valid", t.Valid},
		{"invalid", t.Invalid},
		{"border", t.Border},
		{"used", t.Used},
		{"accent", t.Accent},
	}
}

// Palette resolves the theme. Empty or unknown names fall back to the
// default theme's color for that role.
func (t ThemeConfig) Palette() Palette {
	def := DefaultBlastConfig().Theme
	pick := func(name, fallback string) core.Color {
		if c, ok := core.ParseColor(name); ok && name != "" {
			return c
		}
		c, _ := core.ParseColor(fallback)
		return c
	}
	return Palette{
		Filled:  pick(t.Filled, def.Filled),
		Empty:   pick(t.Empty, def.Empty),
		Valid:   pick(t.Valid, def.Valid),
		Invalid: pick(t.Invalid, def.Invalid),
		Border:  pick(t.Border, def.Border),
		Used:    pick(t.Used, def.Used),
		Accent:  pick(t.Accent, def.Accent),
	}
}
