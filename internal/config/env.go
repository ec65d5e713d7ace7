package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
// Command-line flags use them as defaults and override them when set.
type Settings struct {
	DBPath      string        `env:"GRIDBLAST_DB"`
	SSHAddr     string        `env:"GRIDBLAST_SSH_ADDR"     envDefault:":2222"`
	HostKey     string        `env:"GRIDBLAST_HOST_KEY"` // empty: generated in DataDir
	FPS         int           `env:"GRIDBLAST_FPS"          envDefault:"30"`
	ConfigPath  string        `env:"GRIDBLAST_CONFIG"`
	LogLevel    string        `env:"GRIDBLAST_LOG_LEVEL"    envDefault:"info"`
	IdleTimeout time.Duration `env:"GRIDBLAST_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: %w", err)
	}
	if s.DBPath == "" {
		s.DBPath = DefaultDBPath()
	}
	if s.FPS <= 0 {
		return DefaultSettings(), fmt.Errorf("parse env: GRIDBLAST_FPS must be positive, got %d", s.FPS)
	}
	return s, nil
}

// DefaultSettings returns the settings used when the environment is empty.
func DefaultSettings() Settings {
	return Settings{
		DBPath:      DefaultDBPath(),
		SSHAddr:     ":2222",
		FPS:         30,
		LogLevel:    "info",
		IdleTimeout: 30 * time.Minute,
	}
}
