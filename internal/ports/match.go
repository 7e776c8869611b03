// Package ports defines the shared types and interfaces that connect the
// matcher core, the session layer, and the adapters (storage, watcher).
package ports

import "time"

// Match is a single pattern occurrence in scanned text.
// Line and Column are 1-based; Column is the start of the match.
// Matches are immutable once produced.
type Match struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Pattern   string `json:"pattern"`
	Context   string `json:"context"`
	PatternID int    `json:"pattern_id"`
}

// BuildStats holds diagnostics from an automaton build.
// NodeCount includes the root. Rebuilding from the same pattern
// sequence always yields identical NodeCount and MaxDepth.
type BuildStats struct {
	NodeCount    int           `json:"node_count"`
	MaxDepth     int           `json:"max_depth"`
	PatternCount int           `json:"pattern_count"`
	Elapsed      time.Duration `json:"elapsed"`
}

// ScanRecord is a completed scan persisted to the history store.
type ScanRecord struct {
	ID           uint64    `json:"id"`
	When         time.Time `json:"when"`
	Source       string    `json:"source"` // file path or "manual"
	PatternCount int       `json:"pattern_count"`
	MatchCount   int       `json:"match_count"`
	Matches      []Match   `json:"matches"`
}
