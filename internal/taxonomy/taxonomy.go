// Package taxonomy holds the ECARE code table the classifier matches against.
package taxonomy

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry defines one ECARE code with its trigger keywords.
type Entry struct {
	Code        string   `yaml:"code"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Table is an immutable, ordered set of taxonomy entries. It is built once at
// startup and shared read-only across requests, so no locking is needed.
type Table struct {
	entries  []Entry
	index    map[string]int
	children map[string][]string
}

// ECARE code syntax encodes the hierarchy level:
// "A." is a top-level code, "A1." second level, "A1.01" third level.
var (
	secondLevelPattern = regexp.MustCompile(`^[A-Z][0-9]+\.$`)
	thirdLevelPattern  = regexp.MustCompile(`^[A-Z][0-9]+\.[0-9]+$`)
)

// New builds a Table from entries, failing fast on configuration errors:
// empty or duplicate codes, and codes with no usable keywords. Keywords are
// trimmed and lowercased so matching is case-insensitive.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		index:    make(map[string]int, len(entries)),
		children: make(map[string][]string),
	}

	for _, e := range entries {
		code := strings.TrimSpace(e.Code)
		if code == "" {
			return nil, fmt.Errorf("taxonomy entry with empty code")
		}
		if _, exists := t.index[code]; exists {
			return nil, fmt.Errorf("duplicate taxonomy code %q", code)
		}

		var keywords []string
		for _, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("taxonomy code %q has no keywords", code)
		}

		t.index[code] = len(t.entries)
		t.entries = append(t.entries, Entry{
			Code:        code,
			Description: strings.TrimSpace(e.Description),
			Keywords:    keywords,
		})
	}

	if len(t.entries) == 0 {
		return nil, fmt.Errorf("taxonomy table is empty")
	}

	// Derive parent -> children from the code syntax. A child is only
	// registered when its parent actually exists in the table.
	for _, e := range t.entries {
		parent := parentCode(e.Code)
		if parent == "" {
			continue
		}
		if _, ok := t.index[parent]; ok {
			t.children[parent] = append(t.children[parent], e.Code)
		}
	}

	return t, nil
}

// parentCode returns the immediate parent implied by the code syntax, or ""
// for top-level and non-hierarchical codes.
func parentCode(code string) string {
	switch {
	case thirdLevelPattern.MatchString(code):
		return code[:strings.Index(code, ".")+1]
	case secondLevelPattern.MatchString(code):
		return code[:1] + "."
	default:
		return ""
	}
}

// Entries returns the table entries in definition order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Get returns the entry for a code.
func (t *Table) Get(code string) (Entry, bool) {
	i, ok := t.index[code]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Children returns the codes directly under the given code, in table order.
func (t *Table) Children(code string) []string {
	return t.children[code]
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// fileFormat is the shape of the external taxonomy YAML file.
type fileFormat struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a taxonomy table from a YAML file so the keyword table can be
// updated without code changes. Returns (nil, nil) if the file does not
// exist, letting the caller fall back to the built-in table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	return New(f.Entries)
}
