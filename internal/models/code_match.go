package models

import "time"

// Classification outcome constants
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// CodeMatch represents a per-code match count.
type CodeMatch struct {
	Code       string
	Count      int64
	LastSeenAt time.Time
}

// ClassificationCount represents a per-outcome classification count.
type ClassificationCount struct {
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
