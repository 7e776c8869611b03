// Package matcher implements multi-pattern literal matching over an
// Aho-Corasick automaton. The automaton is built once from a pattern list
// and is immutable afterwards: any change to the pattern set or the
// case-sensitivity mode requires constructing a new Matcher. A built
// Matcher is safe for concurrent scans.
//
// The symbol domain is fixed at 28: the 26 Latin letters (case-folded),
// space, and hyphen. Everything else is outside the alphabet and is
// dropped during normalization.
package matcher

// AlphabetSize is the number of distinct trie symbols.
const AlphabetSize = 28

const (
	indexSpace  = 26
	indexHyphen = 27
)

// charToIndex maps a byte to its trie symbol index, or -1 when the byte
// is outside the supported alphabet. Letters always fold: 'A' and 'a'
// share an index regardless of the normalizer's case mode.
func charToIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c == ' ':
		return indexSpace
	case c == '-':
		return indexHyphen
	}
	return -1
}
