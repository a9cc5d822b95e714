package posturekit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/posturekit/posturekit/internal/detectors"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(_ *cobra.Command, _ []string) {
			for _, d := range detectors.All() {
				fmt.Printf("%-24s %-10s %-9s %s\n", d.ID, d.Category, d.Confidence, d.ControlID)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
