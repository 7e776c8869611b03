package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/keyscan/internal/domain/report"
	"github.com/corey/keyscan/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatMatches formats a result list for terminal display.
//
//	⚡ 3 matches
//	  line    1, col    2: "she"
//	      context: "shers"
func formatMatches(matches []ports.Match, showContext bool) string {
	if len(matches) == 0 {
		return "no matches found\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d matches%s\n", colorBold, len(matches), colorReset))
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("  line %4d, col %4d: %s%q%s\n",
			m.Line, m.Column, colorCyan, m.Pattern, colorReset))
		if showContext {
			sb.WriteString(fmt.Sprintf("      %scontext: %q%s\n", colorGray, m.Context, colorReset))
		}
	}
	return sb.String()
}

// formatSummary formats the per-pattern statistics block.
func formatSummary(s *report.Summary) string {
	if s.Total == 0 {
		return "no matches to summarize\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ summary%s\n", colorBold, colorReset))
	sb.WriteString(fmt.Sprintf("  Total:    %d\n", s.Total))
	sb.WriteString("  Per pattern:\n")
	for _, pc := range s.PerPattern {
		sb.WriteString(fmt.Sprintf("    %s%-30s%s %d\n", colorGreen, pc.Pattern, colorReset, pc.Count))
	}
	sb.WriteString(fmt.Sprintf("  Lines:    %d–%d\n", s.FirstLine, s.LastLine))
	return sb.String()
}

// formatBuildStats formats automaton diagnostics for verbose output.
func formatBuildStats(st ports.BuildStats) string {
	return fmt.Sprintf("  Patterns: %d\n  Nodes:    %d\n  Depth:    %d\n",
		st.PatternCount, st.NodeCount, st.MaxDepth)
}
