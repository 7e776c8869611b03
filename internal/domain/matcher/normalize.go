package matcher

import "strings"

// normalize cleans raw text into the supported symbol domain. Letters are
// kept (folded to lowercase unless caseSensitive), space, hyphen and
// newline pass through, tab becomes a single space, and every other byte
// is dropped. Patterns and scan text go through the same normalization,
// so the automaton and the scanned text always share one symbol domain.
func normalize(text string, caseSensitive bool) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			sb.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			if caseSensitive {
				sb.WriteByte(c)
			} else {
				sb.WriteByte(c + ('a' - 'A'))
			}
		case c == ' ' || c == '-' || c == '\n':
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// collapseSpaces rewrites every run of consecutive spaces as a single
// space. Display-only: match detection happens before this runs.
func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevSpace := false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
