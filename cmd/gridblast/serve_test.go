package main

import (
	"testing"
	"time"
)

func TestServeIdleTimeoutFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("idle-timeout")
	if flag == nil {
		t.Fatal("idle-timeout flag not registered")
	}
	if flag.DefValue != settings.IdleTimeout.String() {
		t.Errorf("default = %q, expected %q", flag.DefValue, settings.IdleTimeout.String())
	}
	t.Cleanup(func() { flagIdleTimeout = settings.IdleTimeout })

	tests := []struct {
		value string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"1h30m", 90 * time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			if err := serveCmd.Flags().Set("idle-timeout", tc.value); err != nil {
				t.Fatalf("Set(%q) failed: %v", tc.value, err)
			}
			if flagIdleTimeout != tc.want {
				t.Errorf("idle timeout = %v, expected %v", flagIdleTimeout, tc.want)
			}
		})
	}

	if err := serveCmd.Flags().Set("idle-timeout", "30"); err == nil {
		t.Error("a bare number should be rejected, not read as minutes")
	}
}
