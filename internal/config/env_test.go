package config

import (
	"testing"
	"time"
)

func TestLoadSettingsDefaults(t *testing.T) {
	for _, key := range []string{
		"GRIDBLAST_DB", "GRIDBLAST_SSH_ADDR", "GRIDBLAST_HOST_KEY", "GRIDBLAST_FPS",
		"GRIDBLAST_CONFIG", "GRIDBLAST_LOG_LEVEL", "GRIDBLAST_IDLE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, expected %+v", s, DefaultSettings())
	}
	if s.HostKey != "" {
		t.Errorf("HostKey = %q, expected empty so the server picks the data directory", s.HostKey)
	}
	if s.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", s.IdleTimeout)
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("GRIDBLAST_DB", "/tmp/scores.db")
	t.Setenv("GRIDBLAST_SSH_ADDR", "127.0.0.1:2323")
	t.Setenv("GRIDBLAST_FPS", "60")
	t.Setenv("GRIDBLAST_LOG_LEVEL", "debug")
	t.Setenv("GRIDBLAST_IDLE_TIMEOUT", "90s")
	t.Setenv("GRIDBLAST_HOST_KEY", "/tmp/host_key")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DBPath != "/tmp/scores.db" {
		t.Errorf("DBPath = %q", s.DBPath)
	}
	if s.SSHAddr != "127.0.0.1:2323" {
		t.Errorf("SSHAddr = %q", s.SSHAddr)
	}
	if s.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", s.FPS)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.HostKey != "/tmp/host_key" {
		t.Errorf("HostKey = %q", s.HostKey)
	}
	if s.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v, expected 90s", s.IdleTimeout)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"GRIDBLAST_FPS", "fast"},
		{"GRIDBLAST_FPS", "-1"},
		{"GRIDBLAST_IDLE_TIMEOUT", "soon"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			s, err := LoadSettings()
			if err == nil {
				t.Fatal("expected error")
			}
			if s != DefaultSettings() {
				t.Errorf("settings on error = %+v, expected defaults", s)
			}
		})
	}
}
