package validation

import (
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxLen  int
		valid   bool
		message string
	}{
		{"normal text", "Solar energy for care homes", 0, true, ""},
		{"empty", "", 0, false, "text is required"},
		{"whitespace only", "   \n\t", 0, false, "text is required"},
		{"at limit", strings.Repeat("a", 100), 100, true, ""},
		{"over limit", strings.Repeat("a", 101), 100, false, "text is too long"},
		{"zero max uses default", strings.Repeat("a", 1000), 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateText(tt.text, tt.maxLen)
			if valid != tt.valid {
				t.Errorf("ValidateText() = %v, want %v", valid, tt.valid)
			}
			if msg != tt.message {
				t.Errorf("message = %q, want %q", msg, tt.message)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText("  some text \n"); got != "some text" {
		t.Errorf("NormalizeText() = %q", got)
	}
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"A.", true},
		{"A1.", true},
		{"A1.01", true},
		{"E1", true},
		{"", false},
		{"A 1", false},
		{"A/1", false},
		{strings.Repeat("A", 33), false},
	}

	for _, tt := range tests {
		if got := ValidateCode(tt.code); got != tt.valid {
			t.Errorf("ValidateCode(%q) = %v, want %v", tt.code, got, tt.valid)
		}
	}
}
