package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gridblast/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parseBlast(defaultBlastYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBlastConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBlastConfig())
	}
}

func TestLoadBlastCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 6\ncontrols:\n  wrap_cursor: true\n")

	cfg, src, err := loadBlast(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, expected 6", cfg.Board.Size)
	}
	if cfg.Board.XLSize != 10 {
		t.Errorf("Board.XLSize = %d, expected default 10", cfg.Board.XLSize)
	}
	if !cfg.Controls.WrapCursor {
		t.Error("WrapCursor should be true")
	}
}

func TestLoadBlastCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := loadBlast(filepath.Join(dir, "missing.yaml"), ""); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "small.yaml")
	writeFile(t, bad, "board:\n  size: 3\n")
	_, _, err := loadBlast(bad, "")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadBlastSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, src, err := loadBlast("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("Board.Size = %d, expected 8", cfg.Board.Size)
	}

	writeFile(t, filepath.Join(dir, "configs", blastFile), "board:\n  size: 7\n")
	cfg, src, _ = loadBlast("", "")
	if src != SourceLocal || cfg.Board.Size != 7 {
		t.Errorf("got (%q, %d), expected local config with size 7", src, cfg.Board.Size)
	}

	user := filepath.Join(dir, "user", blastFile)
	writeFile(t, user, "board:\n  size: 9\n")
	cfg, src, _ = loadBlast("", user)
	if src != SourceUser || cfg.Board.Size != 9 {
		t.Errorf("got (%q, %d), expected user config with size 9", src, cfg.Board.Size)
	}

	// A broken user file falls through to the next candidate.
	writeFile(t, user, "board: [not, a, map]\n")
	_, src, _ = loadBlast("", user)
	if src != SourceLocal {
		t.Errorf("source = %q, expected fallback to %q", src, SourceLocal)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlastConfig)
		valid  bool
	}{
		{"defaults", func(*BlastConfig) {}, true},
		{"minimum size", func(c *BlastConfig) { c.Board.Size = 5 }, true},
		{"size too small", func(c *BlastConfig) { c.Board.Size = 4 }, false},
		{"xl too small", func(c *BlastConfig) { c.Board.XLSize = 0 }, false},
		{"maximum size", func(c *BlastConfig) { c.Board.XLSize = 32 }, true},
		{"size too large", func(c *BlastConfig) { c.Board.Size = 33 }, false},
		{"size overflows", func(c *BlastConfig) { c.Board.Size = 1 << 32 }, false},
		{"xl too large", func(c *BlastConfig) { c.Board.XLSize = 200000 }, false},
		{"unknown color", func(c *BlastConfig) { c.Theme.Valid = "chartreuse" }, false},
		{"empty color", func(c *BlastConfig) { c.Theme.Border = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlastConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseBlastRejectsHugeBoard(t *testing.T) {
	cfg, err := parseBlast([]byte("board:\n  size: 200000\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if cfg != DefaultBlastConfig() {
		t.Errorf("config on error = %+v, expected defaults", cfg)
	}
}

func TestPalette(t *testing.T) {
	theme := DefaultBlastConfig().Theme
	theme.Filled = "magenta"
	theme.Border = ""

	p := theme.Palette()
	if p.Filled != core.ColorMagenta {
		t.Errorf("Filled = %v, expected magenta", p.Filled)
	}
	if p.Border != core.ColorWhite {
		t.Errorf("Border = %v, expected default white", p.Border)
	}
	if p.Invalid != core.ColorBrightRed {
		t.Errorf("Invalid = %v, expected bright-red", p.Invalid)
	}
}
