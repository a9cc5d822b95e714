package posturekit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagCatalog string
	flagJSON    bool
	flagNoColor bool
	flagWorkers int

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the posturekit CLI.
var rootCmd = &cobra.Command{
	Use:           "posturekit",
	Short:         "Assess and score security posture",
	Long:          "Posturekit scans a codebase for security weaknesses, maps them onto a control catalog, and reports compliance scores with prioritized findings.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the posturekit CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "path to a control catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "worker count (0 = GOMAXPROCS)")
}
