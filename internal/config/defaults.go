package config

import (
	_ "embed"
)

//go:embed defaults/blast.yaml
var defaultBlastYAML []byte

// DefaultBlastConfig returns the default puzzle configuration.
func DefaultBlastConfig() BlastConfig {
	return BlastConfig{
		Board: BoardConfig{
			Size:   8,
			XLSize: 10,
		},
		Theme: ThemeConfig{
			Filled:  "bright-cyan",
			Empty:   "gray",
			Valid:   "bright-green",
			Invalid: "bright-red",
			Border:  "white",
			Used:    "gray",
			Accent:  "bright-yellow",
		},
		Controls: ControlsConfig{
			WrapCursor: false,
		},
	}
}
