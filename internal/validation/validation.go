package validation

import (
	"regexp"
	"strings"
)

// DefaultMaxTextLen caps submitted text so a single request stays cheap to
// classify.
const DefaultMaxTextLen = 20000

// CodePattern defines the valid taxonomy code format for route parameters:
// letters, digits, dots, hyphens, underscores.
var CodePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// NormalizeText trims surrounding whitespace from submitted text.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// ValidateText checks that text is non-blank and within the length cap.
// Returns false with a user-facing message when invalid.
func ValidateText(text string, maxLen int) (bool, string) {
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLen
	}
	if strings.TrimSpace(text) == "" {
		return false, "text is required"
	}
	if len(text) > maxLen {
		return false, "text is too long"
	}
	return true, ""
}

// ValidateCode checks if a taxonomy code parameter matches the allowed
// pattern.
func ValidateCode(code string) bool {
	if code == "" || len(code) > 32 {
		return false
	}
	return CodePattern.MatchString(code)
}
