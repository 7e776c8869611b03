package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/keyscan/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "keyscan",
	Short: "keyscan — multi-pattern text scanner",
	Long:  "Scans documents for many literal patterns in one pass, reporting every match with line, column, and context.",
}

// workDir returns the working directory (config and history live there).
func workDir() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// loadConfig resolves session defaults from .keyscan.yaml in the working
// directory. A broken config file is reported but never fatal.
func loadConfig() app.Config {
	cfg, _, err := app.LoadConfig(workDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		return app.DefaultConfig()
	}
	return cfg
}

// historyDBPath is where the scan history database lives.
func historyDBPath() string {
	return filepath.Join(workDir(), ".keyscan.db")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
