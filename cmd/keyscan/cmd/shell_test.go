package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/keyscan/internal/app"
)

func newTestShell(input string) (*shellState, *bytes.Buffer) {
	out := &bytes.Buffer{}
	st := &shellState{
		sess: app.NewSession(app.DefaultConfig()),
		in:   bufio.NewScanner(strings.NewReader(input)),
		out:  out,
	}
	return st, out
}

func TestShell_ManualPatternsSearchAndResults(t *testing.T) {
	// 2: enter patterns, 4: enter text, 6: search, 7: results, 0: quit.
	st, out := newTestShell("2\nhe\nshe\nhers\n\n4\nushers\nEND\n6\n7\n0\n")
	st.loop()

	output := out.String()
	assert.Contains(t, output, "3 patterns loaded")
	assert.Contains(t, output, "search complete: 3 matches")
	assert.Contains(t, output, `"she"`)
	assert.Contains(t, output, `"hers"`)
}

func TestShell_SearchWithoutPatterns(t *testing.T) {
	st, out := newTestShell("6\n0\n")
	st.loop()
	assert.Contains(t, out.String(), "load patterns and text first")
}

func TestShell_EOFQuits(t *testing.T) {
	st, _ := newTestShell("")
	st.loop() // Must return, not spin.
}

func TestShell_OptionsSetContextSize(t *testing.T) {
	st, out := newTestShell("5\n2\n7\n0\n")
	st.loop()
	assert.Equal(t, 7, st.sess.ContextSize)
	assert.Contains(t, out.String(), "Context size:    7")
}

func TestShell_OptionsRejectBadContextSize(t *testing.T) {
	st, out := newTestShell("5\n2\nnope\n0\n")
	st.loop()
	assert.Equal(t, 20, st.sess.ContextSize)
	assert.Contains(t, out.String(), "must be a positive number")
}

func TestShell_ToggleCaseRebuilds(t *testing.T) {
	st, _ := newTestShell("2\nHe\n\n5\n1\n4\nhe HE\nEND\n6\n0\n")
	st.loop()

	assert.True(t, st.sess.CaseSensitive())
	results := st.sess.LastResults()
	require.Len(t, results, 2)
	assert.Equal(t, "he HE", results[0].Context, "rebuild preserved case in context")
}

func TestShell_LoadPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	st, out := newTestShell("1\n" + path + "\n0\n")
	st.loop()
	assert.Contains(t, out.String(), "2 patterns loaded")
}

func TestShell_ExportWithoutResults(t *testing.T) {
	st, out := newTestShell("9\n0\n")
	st.loop()
	assert.Contains(t, out.String(), "no results to export")
}

func TestShell_ExportHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	st, out := newTestShell("2\nhe\n\n4\nhe\nEND\n6\n9\n" + path + "\n0\n")
	st.loop()

	assert.Contains(t, out.String(), "results exported to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total matches: 1")
}
