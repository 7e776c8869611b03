package matcher

import (
	"sort"
	"strings"

	"github.com/corey/keyscan/internal/ports"
)

// Scan finds every occurrence of every pattern in text, including
// overlapping and nested occurrences. Each line is scanned independently
// from the root, so a pattern split across a line break never matches.
// contextSize bounds the display window after the match start; a value
// <= 0 selects DefaultContextSize. Results are ordered by
// (line, column, pattern ID) ascending. Scanning never errors: no
// matches is an empty result.
func (m *Matcher) Scan(text string, contextSize int) []ports.Match {
	if contextSize <= 0 {
		contextSize = DefaultContextSize
	}

	var matches []ports.Match
	cleaned := normalize(text, m.caseSensitive)

	lineNum := 0
	for _, line := range strings.Split(cleaned, "\n") {
		lineNum++
		cur := int32(0)

		for pos := 0; pos < len(line); pos++ {
			idx := charToIndex(line[pos])
			if idx < 0 {
				continue // outside the alphabet: state unchanged
			}

			for cur != 0 && m.nodes[cur].children[idx] == 0 {
				cur = m.nodes[cur].fail
			}
			if next := m.nodes[cur].children[idx]; next != 0 {
				cur = next
			}

			matches = m.collect(matches, cur, lineNum, pos, line, contextSize)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.PatternID < b.PatternID
	})
	return matches
}

// collect emits one match per pattern ending at pos, walking the output
// chain from cur so that shorter suffix patterns ending at the same
// position are reported too ("she" and "he" both ending on one symbol).
func (m *Matcher) collect(matches []ports.Match, cur int32, line, pos int, lineText string, contextSize int) []ports.Match {
	for t := cur; t != 0; t = m.nodes[t].output {
		for _, id := range m.nodes[t].patternIDs {
			length := len(m.normalized[id])

			start := pos - length + 1
			if start < 0 {
				start = 0
			}
			end := pos + contextSize
			if end > len(lineText) {
				end = len(lineText)
			}

			matches = append(matches, ports.Match{
				Line:      line,
				Column:    pos - length + 2, // 1-based start of the match
				Pattern:   m.patterns[id],
				Context:   collapseSpaces(lineText[start:end]),
				PatternID: id,
			})
		}
	}
	return matches
}
