package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/posturekit/posturekit/internal/audit"
)

// PrintOptions controls terminal summary output.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintSummary writes the human-readable terminal summary: overall
// posture, the per-domain score table, and the top findings.
func PrintSummary(w io.Writer, rep audit.Report, opts PrintOptions) {
	if rep.Scores.Overall.Insufficient() {
		fmt.Fprintln(w, "Overall posture: insufficient data (no controls assessed)")
	} else {
		overall := rep.Scores.Overall.Value()
		fmt.Fprintf(w, "Overall posture: %s (%.1f/100, %d controls assessed)\n",
			posture(overall), overall, rep.Scores.Overall.Assessed)
	}
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header("Domain", "Score", "Status")
	for _, d := range sortedDomains(rep) {
		s := rep.Scores.ByDomain[d]
		table.Append([]string{d, scoreCell(s), domainHealth(s)})
	}
	table.Render()

	if len(rep.Findings) > 0 {
		fmt.Fprintf(w, "\nFindings: %d\n", len(rep.Findings))
		for _, f := range rep.Findings {
			prio := f.Priority.String()
			if !opts.NoColor {
				prio = colorPriority(f.Priority)
			}
			fmt.Fprintf(w, "  %-8s %s  %s\n", prio, f.ID, f.Title)
		}
	} else {
		fmt.Fprintln(w, "\nNo findings ✅")
	}

	for _, warn := range rep.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}

	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

func colorPriority(p audit.Priority) string {
	switch p {
	case audit.PriorityCritical:
		return "\x1b[35mcritical\x1b[0m" // magenta
	case audit.PriorityHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case audit.PriorityMedium:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}
