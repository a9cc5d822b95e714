package posturekit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/posturekit/posturekit/internal/audit"
)

var (
	flagAssessFile string
	flagEvidence   string
	flagGaps       []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "assess <control-id> <status>",
		Short: "Record a manual assessment of one control",
		Long:  "Records the compliance status of a control in an assessments file. Status is one of compliant, partial, non_compliant, not_applicable, not_assessed. The file can be merged into a scan with --assessments.",
		Args:  cobra.ExactArgs(2),
		RunE:  runAssess,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagAssessFile, "file", "f", "assessments.yaml", "assessments file to update")
	cmd.Flags().StringVar(&flagEvidence, "evidence", "", "supporting evidence for the status")
	cmd.Flags().StringArrayVar(&flagGaps, "gap", nil, "identified gap (repeatable)")
}

func runAssess(_ *cobra.Command, args []string) error {
	controlID, rawStatus := args[0], args[1]

	status, err := audit.ParseStatus(rawStatus)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(flagCatalog)
	if err != nil {
		return err
	}
	ctl, ok := cat.Control(controlID)
	if !ok {
		return &audit.UnknownControlError{ControlID: controlID}
	}

	entries, err := audit.LoadManifest(flagAssessFile)
	if err != nil {
		entries = nil // first assessment creates the file
	}

	entry := audit.ManifestEntry{
		ControlID: ctl.ID,
		Status:    status,
		Evidence:  flagEvidence,
		Gaps:      flagGaps,
	}
	replaced := false
	for i := range entries {
		if entries[i].ControlID == ctl.ID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	if err := audit.SaveManifest(flagAssessFile, entries); err != nil {
		return err
	}
	fmt.Printf("%s (%s): %s\n", ctl.ID, ctl.Name, status)
	return nil
}
