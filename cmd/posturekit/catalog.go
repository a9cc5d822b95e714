package posturekit

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var flagDomain string

func init() {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the controls in the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog(flagCatalog)
			if err != nil {
				return err
			}
			controls := cat.Controls()
			if flagDomain != "" {
				controls = cat.Domain(flagDomain)
			}
			table := tablewriter.NewTable(os.Stdout)
			table.Header("ID", "Domain", "Control", "Risk")
			for _, c := range controls {
				table.Append([]string{c.ID, c.Domain, c.Name, string(c.RiskClass)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&flagDomain, "domain", "", "only list controls in this domain")
	rootCmd.AddCommand(cmd)
}
