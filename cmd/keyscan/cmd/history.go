package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/adapters/bbolt"
	"github.com/corey/keyscan/internal/domain/report"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scans",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-render one recorded scan",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum records to list (0 = all)")
	historyCmd.AddCommand(historyShowCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := bbolt.NewStore(historyDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.ListScans(historyLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no scans recorded")
		return nil
	}

	fmt.Printf("%s⚡ %d scans%s\n", colorBold, len(recs), colorReset)
	for _, rec := range recs {
		fmt.Printf("  %s#%d%s  %s  %s%s%s  %d patterns, %d matches\n",
			colorYellow, rec.ID, colorReset,
			rec.When.Format("2006-01-02 15:04:05"),
			colorCyan, rec.Source, colorReset,
			rec.PatternCount, rec.MatchCount)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scan id %q", args[0])
	}

	store, err := bbolt.NewStore(historyDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.LoadScan(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no scan with id %d", id)
	}

	fmt.Printf("scan #%d  %s  %s\n", rec.ID, rec.When.Format("2006-01-02 15:04:05"), rec.Source)
	fmt.Print(formatMatches(rec.Matches, true))
	fmt.Print(formatSummary(report.Summarize(rec.Matches)))
	return nil
}
