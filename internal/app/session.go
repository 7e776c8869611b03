// Package app holds the session layer: the explicit, caller-held state
// that ties pattern sets, scan options, and the immutable automaton
// together. Changing the pattern set or the case mode always builds a
// fresh automaton — the previous one is discarded whole, never mutated.
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/corey/keyscan/internal/domain/matcher"
	"github.com/corey/keyscan/internal/ports"
)

// ErrNotReady is returned by Search before any pattern set is loaded.
var ErrNotReady = errors.New("no patterns loaded")

// Session carries the state of one scanning session. Not safe for
// concurrent use; the shell and the commands drive it from one goroutine.
type Session struct {
	ContextSize int
	Verbose     bool

	patterns      []string
	caseSensitive bool
	m             *matcher.Matcher
	lastResults   []ports.Match
}

// NewSession creates a session with the given defaults and no patterns.
func NewSession(cfg Config) *Session {
	return &Session{
		ContextSize:   cfg.ContextSize,
		Verbose:       cfg.Verbose,
		caseSensitive: cfg.CaseSensitive,
	}
}

// SetPatterns replaces the pattern set and rebuilds the automaton.
// On error (empty list) the previous automaton stays usable.
func (s *Session) SetPatterns(patterns []string) error {
	m, err := matcher.New(patterns, matcher.Options{CaseSensitive: s.caseSensitive})
	if err != nil {
		return err
	}
	s.patterns = append([]string(nil), patterns...)
	s.m = m
	s.logBuild()
	return nil
}

// SetCaseSensitive flips the case mode. If patterns are loaded the
// automaton is rebuilt from scratch under the new mode.
func (s *Session) SetCaseSensitive(on bool) error {
	if s.caseSensitive == on {
		return nil
	}
	s.caseSensitive = on
	if len(s.patterns) == 0 {
		return nil
	}
	m, err := matcher.New(s.patterns, matcher.Options{CaseSensitive: on})
	if err != nil {
		return err
	}
	s.m = m
	s.logBuild()
	return nil
}

// Search scans text with the current automaton and context size, storing
// the results as the session's last results.
func (s *Session) Search(text string) ([]ports.Match, error) {
	if s.m == nil {
		return nil, ErrNotReady
	}
	start := time.Now()
	results := s.m.Scan(text, s.ContextSize)
	s.lastResults = results
	if s.Verbose {
		fmt.Fprintf(os.Stderr, "[info] scan completed in %s: %d matches\n",
			time.Since(start).Round(time.Millisecond), len(results))
	}
	return results, nil
}

// Ready reports whether an automaton has been built.
func (s *Session) Ready() bool { return s.m != nil }

// CaseSensitive reports the current case mode.
func (s *Session) CaseSensitive() bool { return s.caseSensitive }

// Patterns returns a copy of the currently loaded pattern set.
func (s *Session) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// LastResults returns a copy of the results of the most recent Search.
func (s *Session) LastResults() []ports.Match {
	return append([]ports.Match(nil), s.lastResults...)
}

// Stats returns the current automaton's build diagnostics.
// Zero value before the first successful SetPatterns.
func (s *Session) Stats() ports.BuildStats {
	if s.m == nil {
		return ports.BuildStats{}
	}
	return s.m.Stats()
}

func (s *Session) logBuild() {
	if !s.Verbose {
		return
	}
	st := s.m.Stats()
	fmt.Fprintf(os.Stderr, "[info] automaton built in %s: %d nodes, max depth %d\n",
		st.Elapsed.Round(time.Millisecond), st.NodeCount, st.MaxDepth)
}
