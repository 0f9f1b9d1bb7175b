// Package store persists aggregate classification usage counters. Only
// counters are kept; classification results and input text are never stored.
package store

import (
	"context"

	"ecaretag/internal/models"
)

// Store records and reports usage counters for metrics export.
type Store interface {
	// IncrementCodeMatch bumps the match count for a taxonomy code.
	IncrementCodeMatch(ctx context.Context, code string) error
	// IncrementClassification bumps the count for a classification outcome.
	IncrementClassification(ctx context.Context, outcome string) error
	// CodeMatches returns all per-code counters.
	CodeMatches(ctx context.Context) ([]models.CodeMatch, error)
	// Classifications returns all per-outcome counters.
	Classifications(ctx context.Context) ([]models.ClassificationCount, error)
	// Ping reports whether the store can serve traffic.
	Ping(ctx context.Context) error
	// Close releases store resources.
	Close()
}
