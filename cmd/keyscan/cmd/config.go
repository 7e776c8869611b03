package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long:  "Shows the session defaults, where they came from, and the history DB path.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, found, err := app.LoadConfig(workDir())
	if err != nil {
		return err
	}

	source := "built-in defaults"
	if found {
		source = app.ConfigFileName
	}

	fmt.Printf("%s⚡ keyscan config%s\n", colorBold, colorReset)
	fmt.Printf("  Source:          %s\n", source)
	fmt.Printf("  Context size:    %d\n", cfg.ContextSize)
	fmt.Printf("  Case sensitive:  %v\n", cfg.CaseSensitive)
	fmt.Printf("  Verbose:         %v\n", cfg.Verbose)
	fmt.Printf("  History DB:      %s\n", historyDBPath())
	return nil
}
