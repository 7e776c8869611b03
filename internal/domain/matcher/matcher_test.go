package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPatternList(t *testing.T) {
	m, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoPatterns)
	assert.Nil(t, m, "no partial automaton after a failed build")

	m, err = New([]string{}, Options{})
	assert.ErrorIs(t, err, ErrNoPatterns)
	assert.Nil(t, m)
}

func TestNew_TrieDiagnostics(t *testing.T) {
	// he: h,he. she: s,sh,she. hers: her,hers. 7 + root = 8 nodes.
	m, err := New([]string{"he", "she", "hers"}, Options{})
	require.NoError(t, err)

	st := m.Stats()
	assert.Equal(t, 8, st.NodeCount)
	assert.Equal(t, 4, st.MaxDepth)
	assert.Equal(t, 3, st.PatternCount)
	assert.Equal(t, []string{"he", "she", "hers"}, m.Patterns())
}

func TestNew_RebuildIsDeterministic(t *testing.T) {
	patterns := []string{"he", "she", "hers", "his"}
	a, err := New(patterns, Options{})
	require.NoError(t, err)
	b, err := New(patterns, Options{})
	require.NoError(t, err)

	assert.Equal(t, a.Stats().NodeCount, b.Stats().NodeCount)
	assert.Equal(t, a.Stats().MaxDepth, b.Stats().MaxDepth)
}

func TestNew_PatternNormalizingToEmptyIsSkipped(t *testing.T) {
	// "123" has no supported symbols; it must not add nodes, but the
	// build still succeeds and the remaining pattern keeps its ID.
	withJunk, err := New([]string{"123", "he"}, Options{})
	require.NoError(t, err)
	plain, err := New([]string{"he"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, plain.Stats().NodeCount, withJunk.Stats().NodeCount)

	got := withJunk.Scan("he", 0)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PatternID, "skipped pattern keeps ID 0 reserved")
}

func TestNew_AllPatternsUnsupported(t *testing.T) {
	// A non-empty list whose every pattern normalizes to empty builds a
	// root-only automaton that matches nothing.
	m, err := New([]string{"123", "!!!"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Stats().NodeCount)
	assert.Empty(t, m.Scan("one two three", 0))
}

func TestNew_PatternSpanningLinesIsSkipped(t *testing.T) {
	// Matching never crosses a line break, so a pattern containing one
	// is skipped at build time like an empty pattern. It must not add
	// nodes or panic the build.
	withBreak, err := New([]string{"a\nb", "he"}, Options{})
	require.NoError(t, err)
	plain, err := New([]string{"he"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, plain.Stats().NodeCount, withBreak.Stats().NodeCount)

	got := withBreak.Scan("a\nb\nhe", 0)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PatternID)

	// Neither fragment of the skipped pattern matches on its own.
	assert.Empty(t, withBreak.Scan("ab", 0))
}

func TestNew_DuplicatePatternsShareTerminalNode(t *testing.T) {
	m, err := New([]string{"he", "he"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Stats().NodeCount, "duplicate adds no nodes")

	// Both IDs terminate at the same node, so one occurrence emits two
	// matches, ordered by pattern ID.
	got := m.Scan("he", 0)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].PatternID)
	assert.Equal(t, 1, got[1].PatternID)
}

func TestCharToIndex(t *testing.T) {
	assert.Equal(t, 0, charToIndex('a'))
	assert.Equal(t, 25, charToIndex('z'))
	assert.Equal(t, 0, charToIndex('A'), "letters fold to one index")
	assert.Equal(t, 25, charToIndex('Z'))
	assert.Equal(t, 26, charToIndex(' '))
	assert.Equal(t, 27, charToIndex('-'))

	for _, c := range []byte{'0', '9', '.', ',', '\n', '\t', 0} {
		assert.Equal(t, -1, charToIndex(c), "byte %q is unsupported", c)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", normalize("Hello, World!", false))
	assert.Equal(t, "Hello World", normalize("Hello, World!", true))
	assert.Equal(t, "a b", normalize("a\tb", false), "tab becomes space")
	assert.Equal(t, "a\nb", normalize("a\r\nb", false), "CR dropped, LF kept")
	assert.Equal(t, "well-known", normalize("well-known", false))
	assert.Equal(t, "", normalize("1234!?", false), "unsupported bytes drop silently")
	assert.Equal(t, " ", normalize("1 2", false), "spaces survive even between dropped bytes")
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpaces("a   b  c"))
	assert.Equal(t, " a ", collapseSpaces("  a   "))
	assert.Equal(t, "abc", collapseSpaces("abc"))
	assert.Equal(t, "", collapseSpaces(""))
}
