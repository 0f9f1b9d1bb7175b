// Package classifier matches free-form text against the ECARE keyword table.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ecaretag/internal/taxonomy"
)

// Result holds the outcome of classifying one piece of text. Codes preserves
// taxonomy table order; Reasoning carries exactly one entry per code.
type Result struct {
	Codes     []string          `json:"codes"`
	Reasoning map[string]string `json:"reasoning"`
}

// Classifier evaluates text against an immutable taxonomy table. It holds no
// per-call state and is safe for concurrent use.
type Classifier struct {
	table *taxonomy.Table
}

// New creates a Classifier over the given table.
func New(table *taxonomy.Table) *Classifier {
	return &Classifier{table: table}
}

// Classify returns the ECARE codes whose keywords occur in text, with a
// reasoning string per matched code. Matching is case-insensitive and
// word-boundary aware: a keyword only counts when it is not flanked by
// letters or digits, so "cat" never matches inside "category". Empty or
// whitespace-only input is valid and yields an empty result; Classify never
// fails for any string input.
func (c *Classifier) Classify(text string) Result {
	result := Result{
		Codes:     []string{},
		Reasoning: map[string]string{},
	}

	normalized := strings.ToLower(text)
	if strings.TrimSpace(normalized) == "" {
		return result
	}

	// Per code, the keywords that matched, in table keyword order. A code is
	// recorded once no matter how many of its keywords hit.
	hits := make(map[string][]string)
	var matched []string

	for _, entry := range c.table.Entries() {
		var found []string
		for _, kw := range entry.Keywords {
			if containsWord(normalized, kw) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			hits[entry.Code] = found
			matched = append(matched, entry.Code)
		}
	}

	matched = c.consolidate(matched)

	for _, code := range matched {
		entry, _ := c.table.Get(code)
		result.Codes = append(result.Codes, code)
		result.Reasoning[code] = reason(entry, hits[code])
	}

	return result
}

// consolidate folds child codes into their parent when the parent and every
// one of its children matched, so a fully-matched branch reports only its
// top code instead of repeating every level. Parents are visited in reverse
// table order, which handles the deepest branches first and lets a collapse
// cascade upward. Input and output are in table order.
func (c *Classifier) consolidate(codes []string) []string {
	if len(codes) < 2 {
		return codes
	}

	present := make(map[string]bool, len(codes))
	for _, code := range codes {
		present[code] = true
	}

	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		children := c.table.Children(code)
		if len(children) == 0 || !present[code] {
			continue
		}
		all := true
		for _, child := range children {
			if !present[child] {
				all = false
				break
			}
		}
		if all {
			for _, child := range children {
				delete(present, child)
			}
		}
	}

	kept := codes[:0]
	for _, code := range codes {
		if present[code] {
			kept = append(kept, code)
		}
	}
	return kept
}

// reason builds the human-readable justification for one matched code,
// listing every keyword that hit.
func reason(entry taxonomy.Entry, keywords []string) string {
	var b strings.Builder
	b.WriteString(entry.Code)
	if entry.Description != "" {
		b.WriteString(" (")
		b.WriteString(entry.Description)
		b.WriteString(")")
	}
	b.WriteString(": matched keywords [")
	b.WriteString(strings.Join(keywords, ", "))
	b.WriteString("]")
	return b.String()
}

// containsWord reports whether phrase occurs in text with word boundaries on
// both sides. Both arguments must already be lowercase.
func containsWord(text, phrase string) bool {
	for start := 0; start <= len(text)-len(phrase); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		if boundary(text, i, len(phrase)) {
			return true
		}
		start = i + 1
	}
	return false
}

// boundary reports whether the phrase occurrence at [i, i+n) is not flanked
// by letters or digits.
func boundary(text string, i, n int) bool {
	if before, size := utf8.DecodeLastRuneInString(text[:i]); size > 0 {
		if unicode.IsLetter(before) || unicode.IsDigit(before) {
			return false
		}
	}
	if after, size := utf8.DecodeRuneInString(text[i+n:]); size > 0 {
		if unicode.IsLetter(after) || unicode.IsDigit(after) {
			return false
		}
	}
	return true
}
