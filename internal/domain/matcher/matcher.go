package matcher

import (
	"errors"
	"strings"
	"time"

	"github.com/corey/keyscan/internal/ports"
)

// DefaultContextSize is the context window used when the caller passes a
// non-positive size to Scan.
const DefaultContextSize = 20

// ErrNoPatterns is returned by New when the pattern list is empty.
var ErrNoPatterns = errors.New("pattern list is empty")

// Options configures automaton construction.
type Options struct {
	// CaseSensitive keeps letter case during normalization. Matching
	// itself always folds (the alphabet is case-folded by construction);
	// the flag controls the case of reported pattern and context text.
	CaseSensitive bool
}

// Matcher is an immutable Aho-Corasick automaton over a pattern list.
// Build it with New; rebuild from scratch to change anything.
type Matcher struct {
	nodes         []node
	patterns      []string // original pattern text, reported in matches
	normalized    []string // normalized form, drives position arithmetic
	caseSensitive bool
	stats         ports.BuildStats
}

// New builds the automaton: every pattern is normalized and inserted into
// the trie, then failure and output links are computed breadth first.
// Patterns that normalize to empty text are skipped silently; an empty
// pattern list fails with ErrNoPatterns before any node is created.
func New(patterns []string, opts Options) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	start := time.Now()
	m := &Matcher{
		nodes:         make([]node, 1, 64), // node 0 is the root
		patterns:      append([]string(nil), patterns...),
		normalized:    make([]string, len(patterns)),
		caseSensitive: opts.CaseSensitive,
	}

	for id, p := range patterns {
		norm := normalize(p, opts.CaseSensitive)
		m.normalized[id] = norm
		// Normalization keeps line breaks, but scanning is line-scoped:
		// a pattern spanning lines can never match, so it is skipped
		// like an empty pattern instead of reaching the trie (whose
		// symbol table has no slot for '\n').
		if norm == "" || strings.Contains(norm, "\n") {
			continue
		}
		m.insert(norm, id)
	}
	m.buildLinks()

	m.stats.NodeCount = len(m.nodes)
	m.stats.PatternCount = len(patterns)
	m.stats.Elapsed = time.Since(start)
	return m, nil
}

// Patterns returns the original pattern list the automaton was built from.
func (m *Matcher) Patterns() []string {
	return m.patterns
}

// Stats returns build diagnostics (node count, max trie depth).
func (m *Matcher) Stats() ports.BuildStats {
	return m.stats
}

// CaseSensitive reports the normalization mode the automaton was built with.
func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}
