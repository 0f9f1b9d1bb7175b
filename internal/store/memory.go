package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"ecaretag/internal/models"
)

// Memory is an in-process Store used when no DATABASE_URL is configured.
// Counters reset on restart, which is acceptable for a heuristic tool.
type Memory struct {
	mu              sync.Mutex
	codeMatches     map[string]*counter
	classifications map[string]*counter
}

type counter struct {
	count    int64
	lastSeen time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		codeMatches:     make(map[string]*counter),
		classifications: make(map[string]*counter),
	}
}

// IncrementCodeMatch bumps the match count for a taxonomy code.
func (m *Memory) IncrementCodeMatch(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bump(m.codeMatches, code)
	return nil
}

// IncrementClassification bumps the count for a classification outcome.
func (m *Memory) IncrementClassification(_ context.Context, outcome string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bump(m.classifications, outcome)
	return nil
}

func bump(counters map[string]*counter, key string) {
	c, ok := counters[key]
	if !ok {
		c = &counter{}
		counters[key] = c
	}
	c.count++
	c.lastSeen = time.Now()
}

// CodeMatches returns all per-code counters sorted by code.
func (m *Memory) CodeMatches(_ context.Context) ([]models.CodeMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]models.CodeMatch, 0, len(m.codeMatches))
	for code, c := range m.codeMatches {
		matches = append(matches, models.CodeMatch{
			Code:       code,
			Count:      c.count,
			LastSeenAt: c.lastSeen,
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Code < matches[j].Code })
	return matches, nil
}

// Classifications returns all per-outcome counters sorted by outcome.
func (m *Memory) Classifications(_ context.Context) ([]models.ClassificationCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make([]models.ClassificationCount, 0, len(m.classifications))
	for outcome, c := range m.classifications {
		counts = append(counts, models.ClassificationCount{
			Outcome:    outcome,
			Count:      c.count,
			LastSeenAt: c.lastSeen,
		})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Outcome < counts[j].Outcome })
	return counts, nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
