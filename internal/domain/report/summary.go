// Package report aggregates scan results into per-pattern statistics.
// Pure: it only reads ordered []ports.Match slices.
package report

import (
	"sort"

	"github.com/corey/keyscan/internal/ports"
)

// PatternCount is the number of occurrences of one pattern.
type PatternCount struct {
	PatternID int
	Pattern   string
	Count     int
}

// Summary describes one scan's results: total matches, per-pattern counts
// ordered by pattern ID, and the line range the matches span.
type Summary struct {
	Total      int
	PerPattern []PatternCount
	FirstLine  int
	LastLine   int
}

// Summarize aggregates matches (assumed ordered by line, column, pattern
// ID — the matcher's output order). An empty slice yields a zero Summary.
func Summarize(matches []ports.Match) *Summary {
	s := &Summary{Total: len(matches)}
	if len(matches) == 0 {
		return s
	}

	counts := make(map[int]*PatternCount)
	var order []int
	for _, m := range matches {
		pc, ok := counts[m.PatternID]
		if !ok {
			pc = &PatternCount{PatternID: m.PatternID, Pattern: m.Pattern}
			counts[m.PatternID] = pc
			order = append(order, m.PatternID)
		}
		pc.Count++
	}

	// Deterministic output: ascending pattern ID.
	sort.Ints(order)
	for _, id := range order {
		s.PerPattern = append(s.PerPattern, *counts[id])
	}

	s.FirstLine = matches[0].Line
	s.LastLine = matches[len(matches)-1].Line
	return s
}
