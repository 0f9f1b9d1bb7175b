package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name:    "empty table",
			entries: nil,
		},
		{
			name: "empty code",
			entries: []Entry{
				{Code: "", Keywords: []string{"solar"}},
			},
		},
		{
			name: "duplicate code",
			entries: []Entry{
				{Code: "E1", Keywords: []string{"solar"}},
				{Code: "E1", Keywords: []string{"wind"}},
			},
		},
		{
			name: "no keywords",
			entries: []Entry{
				{Code: "E1", Keywords: nil},
			},
		},
		{
			name: "only blank keywords",
			entries: []Entry{
				{Code: "E1", Keywords: []string{"  ", ""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.entries); err == nil {
				t.Errorf("New() accepted invalid table %q", tt.name)
			}
		})
	}
}

func TestNewNormalizesKeywords(t *testing.T) {
	table, err := New([]Entry{
		{Code: " E1 ", Keywords: []string{" Solar ", "PHOTOVOLTAIC", ""}},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	e, ok := table.Get("E1")
	if !ok {
		t.Fatal("code E1 not found after trimming")
	}
	want := []string{"solar", "photovoltaic"}
	if len(e.Keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", e.Keywords, want)
	}
	for i := range want {
		if e.Keywords[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, e.Keywords[i], want[i])
		}
	}
}

func TestHierarchyDerivation(t *testing.T) {
	table, err := New([]Entry{
		{Code: "A.", Keywords: []string{"engineering"}},
		{Code: "A1.", Keywords: []string{"structural"}},
		{Code: "A1.01", Keywords: []string{"composite"}},
		{Code: "A1.02", Keywords: []string{"metallic"}},
		{Code: "B.", Keywords: []string{"manufacturing"}},
		{Code: "X9", Keywords: []string{"other"}},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		code string
		want []string
	}{
		{"A.", []string{"A1."}},
		{"A1.", []string{"A1.01", "A1.02"}},
		{"B.", nil},
		{"X9", nil},
	}

	for _, tt := range tests {
		got := table.Children(tt.code)
		if len(got) != len(tt.want) {
			t.Errorf("Children(%q) = %v, want %v", tt.code, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Children(%q)[%d] = %q, want %q", tt.code, i, got[i], tt.want[i])
			}
		}
	}
}

func TestHierarchyIgnoresMissingParents(t *testing.T) {
	// A1.01 has no "A1." entry in the table, so it must not be registered
	// under anything.
	table, err := New([]Entry{
		{Code: "A.", Keywords: []string{"engineering"}},
		{Code: "A1.01", Keywords: []string{"composite"}},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if children := table.Children("A."); len(children) != 0 {
		t.Errorf("Children(A.) = %v, want none", children)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")

	content := `entries:
  - code: "E1"
    description: "Renewable energy"
    keywords: [energy, solar]
  - code: "C2"
    description: "Elderly care"
    keywords: [care, elderly]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write taxonomy file: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if table == nil {
		t.Fatal("Load() returned nil table for existing file")
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	e, ok := table.Get("E1")
	if !ok {
		t.Fatal("code E1 not found")
	}
	if e.Description != "Renewable energy" {
		t.Errorf("description = %q", e.Description)
	}
}

func TestLoadMissingFileReturnsNil(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() on missing file errored: %v", err)
	}
	if table != nil {
		t.Fatal("Load() on missing file returned a table")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	if err := os.WriteFile(path, []byte("entries: [whoops"), 0o644); err != nil {
		t.Fatalf("failed to write taxonomy file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed YAML")
	}
}

func TestDefaultEntriesBuildValidTable(t *testing.T) {
	table, err := New(DefaultEntries())
	if err != nil {
		t.Fatalf("default entries do not build: %v", err)
	}
	if table.Len() == 0 {
		t.Fatal("default table is empty")
	}
	// The built-in table carries the documented code hierarchy.
	if children := table.Children("A1."); len(children) != 2 {
		t.Errorf("Children(A1.) = %v, want two entries", children)
	}
}
