package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/adapters/bbolt"
	"github.com/corey/keyscan/internal/adapters/htmlexport"
	"github.com/corey/keyscan/internal/adapters/loader"
	"github.com/corey/keyscan/internal/app"
	"github.com/corey/keyscan/internal/domain/report"
	"github.com/corey/keyscan/internal/ports"
)

var (
	scanPatternFile   string
	scanCaseSensitive bool
	scanContext       int
	scanSummary       bool
	scanNoContext     bool
	scanHTMLPath      string
	scanNoSave        bool
	scanVerbose       bool
)

var scanCmd = &cobra.Command{
	Use:           "scan -p <patterns.txt> <text.txt>",
	Short:         "Scan a text file for all patterns in one pass",
	Args:          cobra.ExactArgs(1),
	RunE:          runScan,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := scanCmd.Flags()
	f.StringVarP(&scanPatternFile, "patterns", "p", "", "Pattern file, one pattern per line (required)")
	f.BoolVarP(&scanCaseSensitive, "case-sensitive", "s", false, "Keep letter case in pattern and context text")
	f.IntVarP(&scanContext, "context", "C", 0, "Context window size (0 = config/default)")
	f.BoolVar(&scanSummary, "summary", false, "Print per-pattern statistics after the matches")
	f.BoolVar(&scanNoContext, "no-context", false, "Suppress context lines in output")
	f.StringVar(&scanHTMLPath, "html", "", "Also export an HTML report to the given path")
	f.BoolVar(&scanNoSave, "no-save", false, "Do not record this scan in the history")
	f.BoolVarP(&scanVerbose, "verbose", "v", false, "Print build and scan diagnostics")
	scanCmd.MarkFlagRequired("patterns")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("case-sensitive") {
		cfg.CaseSensitive = scanCaseSensitive
	}
	if scanContext > 0 {
		cfg.ContextSize = scanContext
	}
	if scanVerbose {
		cfg.Verbose = true
	}

	patterns, err := loader.Patterns(scanPatternFile)
	if err != nil {
		return err
	}
	text, err := loader.Text(args[0])
	if err != nil {
		return err
	}

	sess := app.NewSession(cfg)
	if err := sess.SetPatterns(patterns); err != nil {
		return err
	}
	matches, err := sess.Search(text)
	if err != nil {
		return err
	}

	fmt.Print(formatMatches(matches, !scanNoContext))
	if cfg.Verbose {
		fmt.Fprint(os.Stderr, formatBuildStats(sess.Stats()))
	}
	if scanSummary {
		fmt.Print(formatSummary(report.Summarize(matches)))
	}

	if scanHTMLPath != "" {
		if err := htmlexport.Export(scanHTMLPath, matches); err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", scanHTMLPath)
	}

	if !scanNoSave {
		if err := saveScan(args[0], len(patterns), matches); err != nil {
			// History is best-effort: a locked DB must not fail the scan.
			fmt.Fprintf(os.Stderr, "warning: history not saved: %v\n", err)
		}
	}
	return nil
}

func saveScan(source string, patternCount int, matches []ports.Match) error {
	store, err := bbolt.NewStore(historyDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveScan(&ports.ScanRecord{
		When:         time.Now(),
		Source:       source,
		PatternCount: patternCount,
		MatchCount:   len(matches),
		Matches:      matches,
	})
	return err
}
