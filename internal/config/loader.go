package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// blastFile is the config file name relative to the gridblast config dir.
const blastFile = "blast.yaml"

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBlast loads the puzzle configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/gridblast/blast.yaml ->
// ./configs/blast.yaml -> embedded default -> DefaultBlastConfig.
func LoadBlast(customPath string) (BlastConfig, error) {
	cfg, _, err := LoadBlastWithSource(customPath)
	return cfg, err
}

// LoadBlastWithSource is LoadBlast that also reports which file won.
// A broken custom file is an error; broken files further down the search
// order are skipped.
func LoadBlastWithSource(customPath string) (BlastConfig, Source, error) {
	return loadBlast(customPath, userConfigPath(blastFile))
}

func loadBlast(customPath, userPath string) (BlastConfig, Source, error) {
	if customPath != "" {
		cfg, err := readBlast(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userPath != "" {
		if cfg, err := readBlast(userPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := readBlast(filepath.Join("configs", blastFile)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := parseBlast(defaultBlastYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBlastConfig(), SourceBuiltin, nil
}

// readBlast reads and validates one config file.
func readBlast(path string) (BlastConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBlastConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseBlast(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseBlast decodes YAML over the defaults so partial files keep the
// remaining settings.
func parseBlast(data []byte) (BlastConfig, error) {
	cfg := DefaultBlastConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBlastConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultBlastConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path of an existing user config file, or empty.
func userConfigPath(filename string) string {
	path, err := xdg.SearchConfigFile(filepath.Join("gridblast", filename))
	if err != nil {
		return ""
	}
	return path
}

// DataDir returns the per-user data directory for gridblast
// ($XDG_DATA_HOME/gridblast), creating it if needed.
func DataDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, "gridblast")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// DefaultDBPath returns the default scores database location.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, "gridblast", "scores.db")
}
