// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"

	"ecaretag/internal/taxonomy"
)

// TestTable builds a small two-code taxonomy table for handler and engine
// tests.
func TestTable(t *testing.T) *taxonomy.Table {
	t.Helper()

	table, err := taxonomy.New([]taxonomy.Entry{
		{Code: "E1", Description: "Renewable energy", Keywords: []string{"energy", "solar"}},
		{Code: "C2", Description: "Elderly care", Keywords: []string{"care", "elderly"}},
	})
	if err != nil {
		t.Fatalf("failed to build test table: %v", err)
	}
	return table
}
