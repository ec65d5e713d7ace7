package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"Bright-Green", ColorBrightGreen, true},
		{"bright_cyan", ColorBrightCyan, true},
		{" grey ", ColorGray, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c < ColorCount; c++ {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = (%v, %v), expected %v", c.String(), got, ok, c)
		}
	}
	if ColorCount.String() != "unknown" {
		t.Errorf("ColorCount.String() = %q, expected unknown", ColorCount.String())
	}
}
