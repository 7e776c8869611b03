package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/adapters/fsnotify"
	"github.com/corey/keyscan/internal/adapters/loader"
	"github.com/corey/keyscan/internal/app"
)

var (
	watchPatternFile   string
	watchCaseSensitive bool
	watchContext       int
)

var watchCmd = &cobra.Command{
	Use:           "watch -p <patterns.txt> <text.txt>",
	Short:         "Re-scan whenever the text or pattern file changes",
	Long:          "Runs one scan, then watches both files. Pattern changes rebuild the automaton from scratch; text changes re-scan.",
	Args:          cobra.ExactArgs(1),
	RunE:          runWatch,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := watchCmd.Flags()
	f.StringVarP(&watchPatternFile, "patterns", "p", "", "Pattern file, one pattern per line (required)")
	f.BoolVarP(&watchCaseSensitive, "case-sensitive", "s", false, "Keep letter case in pattern and context text")
	f.IntVarP(&watchContext, "context", "C", 0, "Context window size (0 = config/default)")
	watchCmd.MarkFlagRequired("patterns")
}

func runWatch(cmd *cobra.Command, args []string) error {
	textFile := args[0]

	cfg := loadConfig()
	if cmd.Flags().Changed("case-sensitive") {
		cfg.CaseSensitive = watchCaseSensitive
	}
	if watchContext > 0 {
		cfg.ContextSize = watchContext
	}
	cfg.Verbose = true

	sess := app.NewSession(cfg)

	rescan := func(reloadPatterns bool) {
		if reloadPatterns {
			patterns, err := loader.Patterns(watchPatternFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return
			}
			if err := sess.SetPatterns(patterns); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return
			}
		}
		text, err := loader.Text(textFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		matches, err := sess.Search(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Print(formatMatches(matches, true))
	}

	rescan(true)
	if !sess.Ready() {
		return fmt.Errorf("initial build failed, not watching")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	absPatterns, err := filepath.Abs(watchPatternFile)
	if err != nil {
		return err
	}

	err = w.Watch([]string{watchPatternFile, textFile}, func(path string) {
		fmt.Fprintf(os.Stderr, "[info] %s changed, re-scanning\n", path)
		rescan(path == absPatterns)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "[info] watching (ctrl-c to stop)")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
