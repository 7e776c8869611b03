package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/adapters/htmlexport"
	"github.com/corey/keyscan/internal/adapters/loader"
	"github.com/corey/keyscan/internal/app"
	"github.com/corey/keyscan/internal/domain/report"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session (load patterns/text, search, export)",
	RunE:  runShell,
}

// shellState is the interactive session: the app.Session plus the loaded
// text and the streams, so the loop is testable with fake stdin/stdout.
type shellState struct {
	sess *app.Session
	text string

	in  *bufio.Scanner
	out io.Writer
}

func runShell(cmd *cobra.Command, args []string) error {
	st := &shellState{
		sess: app.NewSession(loadConfig()),
		in:   bufio.NewScanner(os.Stdin),
		out:  os.Stdout,
	}
	st.loop()
	return nil
}

func (st *shellState) loop() {
	for {
		st.printStatus()
		st.printMenu()

		line, ok := st.readLine()
		if !ok {
			return // EOF quits
		}

		switch strings.TrimSpace(line) {
		case "1":
			st.loadPatternFile()
		case "2":
			st.enterPatterns()
		case "3":
			st.loadTextFile()
		case "4":
			st.enterText()
		case "5":
			st.options()
		case "6":
			st.search()
		case "7":
			st.showResults()
		case "8":
			st.showSummary()
		case "9":
			st.exportHTML()
		case "0":
			return
		default:
			fmt.Fprintln(st.out, "invalid option")
		}
	}
}

func (st *shellState) printStatus() {
	fmt.Fprintf(st.out, "\n%s⚡ session%s\n", colorBold, colorReset)
	fmt.Fprintf(st.out, "  Patterns:        %d\n", len(st.sess.Patterns()))
	fmt.Fprintf(st.out, "  Text:            %d chars\n", len(st.text))
	fmt.Fprintf(st.out, "  Context size:    %d\n", st.sess.ContextSize)
	fmt.Fprintf(st.out, "  Case sensitive:  %v\n", st.sess.CaseSensitive())
	fmt.Fprintf(st.out, "  Verbose:         %v\n", st.sess.Verbose)
	fmt.Fprintf(st.out, "  Last search:     %d matches\n", len(st.sess.LastResults()))
}

func (st *shellState) printMenu() {
	fmt.Fprint(st.out, `
1. Load patterns from file
2. Enter patterns manually
3. Load text from file
4. Enter text manually
5. Options
6. Search
7. Show results
8. Show summary
9. Export results to HTML
0. Quit
> `)
}

func (st *shellState) readLine() (string, bool) {
	if !st.in.Scan() {
		return "", false
	}
	return st.in.Text(), true
}

func (st *shellState) prompt(msg string) (string, bool) {
	fmt.Fprint(st.out, msg)
	return st.readLine()
}

func (st *shellState) fail(err error) {
	fmt.Fprintf(st.out, "error: %v\n", err)
}

func (st *shellState) loadPatternFile() {
	path, ok := st.prompt("pattern file path: ")
	if !ok {
		return
	}
	patterns, err := loader.Patterns(strings.TrimSpace(path))
	if err != nil {
		st.fail(err)
		return
	}
	if err := st.sess.SetPatterns(patterns); err != nil {
		st.fail(err)
		return
	}
	fmt.Fprintf(st.out, "%d patterns loaded\n", len(patterns))
}

func (st *shellState) enterPatterns() {
	fmt.Fprintln(st.out, "enter patterns, one per line (empty line to finish):")
	var patterns []string
	for {
		line, ok := st.readLine()
		if !ok || line == "" {
			break
		}
		patterns = append(patterns, line)
	}
	if len(patterns) == 0 {
		fmt.Fprintln(st.out, "no patterns entered")
		return
	}
	if err := st.sess.SetPatterns(patterns); err != nil {
		st.fail(err)
		return
	}
	fmt.Fprintf(st.out, "%d patterns loaded\n", len(patterns))
}

func (st *shellState) loadTextFile() {
	path, ok := st.prompt("text file path: ")
	if !ok {
		return
	}
	text, err := loader.Text(strings.TrimSpace(path))
	if err != nil {
		st.fail(err)
		return
	}
	st.text = text
	fmt.Fprintf(st.out, "text loaded (%d chars)\n", len(text))
}

func (st *shellState) enterText() {
	fmt.Fprintln(st.out, `enter text ("END" on its own line to finish):`)
	var sb strings.Builder
	for {
		line, ok := st.readLine()
		if !ok || line == "END" {
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	st.text = sb.String()
	fmt.Fprintf(st.out, "text loaded (%d chars)\n", len(st.text))
}

func (st *shellState) options() {
	fmt.Fprintf(st.out, "1. Toggle case sensitivity (now %v)\n", st.sess.CaseSensitive())
	fmt.Fprintf(st.out, "2. Set context size (now %d)\n", st.sess.ContextSize)
	fmt.Fprintf(st.out, "3. Toggle verbose (now %v)\n", st.sess.Verbose)

	choice, ok := st.prompt("> ")
	if !ok {
		return
	}
	switch strings.TrimSpace(choice) {
	case "1":
		// Flipping case mode rebuilds the automaton from the kept patterns.
		if err := st.sess.SetCaseSensitive(!st.sess.CaseSensitive()); err != nil {
			st.fail(err)
		}
	case "2":
		raw, ok := st.prompt("new context size: ")
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			fmt.Fprintln(st.out, "context size must be a positive number")
			return
		}
		st.sess.ContextSize = n
	case "3":
		st.sess.Verbose = !st.sess.Verbose
	default:
		fmt.Fprintln(st.out, "invalid option")
	}
}

func (st *shellState) search() {
	if !st.sess.Ready() || st.text == "" {
		fmt.Fprintln(st.out, "load patterns and text first")
		return
	}
	matches, err := st.sess.Search(st.text)
	if err != nil {
		st.fail(err)
		return
	}
	fmt.Fprintf(st.out, "search complete: %d matches\n", len(matches))
}

func (st *shellState) showResults() {
	fmt.Fprint(st.out, formatMatches(st.sess.LastResults(), true))
}

func (st *shellState) showSummary() {
	fmt.Fprint(st.out, formatSummary(report.Summarize(st.sess.LastResults())))
}

func (st *shellState) exportHTML() {
	if len(st.sess.LastResults()) == 0 {
		fmt.Fprintln(st.out, "no results to export")
		return
	}
	path, ok := st.prompt("output path: ")
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if err := htmlexport.Export(path, st.sess.LastResults()); err != nil {
		st.fail(err)
		return
	}
	fmt.Fprintf(st.out, "results exported to %s\n", path)
}
