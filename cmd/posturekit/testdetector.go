package posturekit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posturekit/posturekit/internal/detectors"
)

func init() {
	cmd := &cobra.Command{
		Use:   "test-detector <id>",
		Short: "Run a detector against provided text (stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, ok := detectors.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown detector id %q (available: %s)",
					args[0], strings.Join(detectors.IDs(), ", "))
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			matches := detectors.Run(d, "stdin", data)
			if len(matches) == 0 {
				fmt.Println("no matches")
				return nil
			}
			for _, m := range matches {
				fmt.Printf("%s:%d  %-24s %-9s %s\n", m.Path, m.Line, m.Detector, m.Confidence, m.Snippet)
			}
			return nil
		},
	}
	cmd.Long = "Available detectors: " + strings.Join(detectors.IDs(), ", ")
	rootCmd.AddCommand(cmd)
}
