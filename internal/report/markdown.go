package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/posturekit/posturekit/internal/audit"
)

// posture maps an overall score onto the report's headline label.
func posture(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 40:
		return "Poor"
	default:
		return "Critical"
	}
}

func scoreCell(s audit.Score) string {
	if s.Insufficient() {
		return "insufficient data"
	}
	return fmt.Sprintf("%.1f/100", s.Value())
}

func domainHealth(s audit.Score) string {
	if s.Insufficient() {
		return "? Not Assessed"
	}
	switch v := s.Value(); {
	case v >= 70:
		return "✓ Good"
	case v >= 40:
		return "⚠ Needs Attention"
	default:
		return "✗ Critical"
	}
}

func statusIcon(s audit.Status) string {
	switch s {
	case audit.StatusCompliant:
		return "✓"
	case audit.StatusPartial:
		return "◐"
	case audit.StatusNonCompliant:
		return "✗"
	case audit.StatusNotApplicable:
		return "—"
	default:
		return "?"
	}
}

func statusTitle(s audit.Status) string {
	words := strings.Split(strings.ReplaceAll(s.String(), "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// WriteMarkdown renders the full report as a Markdown document: system
// information, executive summary, domain score table, findings grouped
// by priority, and a per-domain assessment detail.
func WriteMarkdown(w io.Writer, rep audit.Report) error {
	var b strings.Builder

	b.WriteString("# Security Posture Report\n\n")

	b.WriteString("## System Information\n\n")
	b.WriteString(fmt.Sprintf("**System Name:** %s\n", rep.Scope.SystemName))
	b.WriteString(fmt.Sprintf("**Assessment Date:** %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	if rep.Scope.PrimaryFunction != "" {
		b.WriteString(fmt.Sprintf("**Primary Function:** %s\n", rep.Scope.PrimaryFunction))
	}
	if rep.Scope.Architecture != "" {
		b.WriteString(fmt.Sprintf("**Architecture:** %s\n", rep.Scope.Architecture))
	}
	if rep.Scope.Environment != "" {
		b.WriteString(fmt.Sprintf("**Deployment Environment:** %s\n", rep.Scope.Environment))
	}
	if len(rep.Scope.DataTypes) > 0 {
		b.WriteString(fmt.Sprintf("**Data Types:** %s\n", strings.Join(rep.Scope.DataTypes, ", ")))
	}
	if len(rep.Scope.Frameworks) > 0 {
		b.WriteString(fmt.Sprintf("**Compliance Requirements:** %s\n", strings.Join(rep.Scope.Frameworks, ", ")))
	}
	if rep.Scope.Criticality != "" {
		b.WriteString(fmt.Sprintf("**Criticality:** %s\n", rep.Scope.Criticality))
	}
	b.WriteString("\n---\n\n")

	writeExecutiveSummary(&b, rep)

	b.WriteString("## Security Score by Domain\n\n")
	b.WriteString("| Domain | Score | Status |\n")
	b.WriteString("|--------|-------|--------|\n")
	for _, d := range sortedDomains(rep) {
		s := rep.Scores.ByDomain[d]
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", d, scoreCell(s), domainHealth(s)))
	}
	b.WriteString(fmt.Sprintf("\n**Overall Score: %s**\n\n---\n\n", scoreCell(rep.Scores.Overall)))

	writeFindings(&b, rep)
	writeAssessmentDetail(&b, rep)

	if len(rep.Warnings) > 0 {
		b.WriteString("## Scan Warnings\n\n")
		for _, warn := range rep.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", warn))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*This report provides a preliminary security assessment. It should be used\n")
	b.WriteString("as a guide for improving security posture, not as a compliance attestation.*\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeExecutiveSummary(b *strings.Builder, rep audit.Report) {
	b.WriteString("## Executive Summary\n\n")
	if rep.Scores.Overall.Insufficient() {
		b.WriteString("**Overall Security Posture: insufficient data**\n\n")
		b.WriteString("No controls have been assessed yet.\n\n---\n\n")
		return
	}

	overall := rep.Scores.Overall.Value()
	b.WriteString(fmt.Sprintf("**Overall Security Posture: %s (%.1f/100)**\n\n", posture(overall), overall))

	var compliant, partial, nonCompliant int
	for _, a := range rep.Assessments {
		switch a.Status {
		case audit.StatusCompliant:
			compliant++
		case audit.StatusPartial:
			partial++
		case audit.StatusNonCompliant:
			nonCompliant++
		}
	}
	b.WriteString("**Key Statistics:**\n")
	b.WriteString(fmt.Sprintf("- Total Controls Assessed: %d\n", len(rep.Assessments)))
	b.WriteString(fmt.Sprintf("- Compliant Controls: %d\n", compliant))
	b.WriteString(fmt.Sprintf("- Partially Compliant: %d\n", partial))
	b.WriteString(fmt.Sprintf("- Non-Compliant: %d\n\n", nonCompliant))

	counts := map[audit.Priority]int{}
	for _, f := range rep.Findings {
		counts[f.Priority]++
	}
	b.WriteString("**Findings Summary:**\n")
	b.WriteString(fmt.Sprintf("- Critical Priority: %d\n", counts[audit.PriorityCritical]))
	b.WriteString(fmt.Sprintf("- High Priority: %d\n", counts[audit.PriorityHigh]))
	b.WriteString(fmt.Sprintf("- Medium Priority: %d\n", counts[audit.PriorityMedium]))

	// Call out weak domains, worst first.
	type weak struct {
		name  string
		score float64
	}
	var weaks []weak
	for _, d := range sortedDomains(rep) {
		s := rep.Scores.ByDomain[d]
		if !s.Insufficient() && s.Value() < 60 {
			weaks = append(weaks, weak{d, s.Value()})
		}
	}
	sort.Slice(weaks, func(i, j int) bool {
		if weaks[i].score != weaks[j].score {
			return weaks[i].score < weaks[j].score
		}
		return weaks[i].name < weaks[j].name
	})
	if len(weaks) > 3 {
		weaks = weaks[:3]
	}
	if len(weaks) > 0 {
		b.WriteString("\n**Areas Requiring Immediate Attention:**\n")
		for _, wd := range weaks {
			b.WriteString(fmt.Sprintf("- %s (Score: %.1f/100)\n", wd.name, wd.score))
		}
	}
	b.WriteString("\n---\n\n")
}

func writeFindings(b *strings.Builder, rep audit.Report) {
	b.WriteString("## Key Findings and Gaps\n\n")
	if len(rep.Findings) == 0 {
		b.WriteString("No findings.\n\n---\n\n")
		return
	}
	for _, p := range []audit.Priority{audit.PriorityCritical, audit.PriorityHigh, audit.PriorityMedium, audit.PriorityLow} {
		var group []audit.Finding
		for _, f := range rep.Findings {
			if f.Priority == p {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s Priority\n\n", strings.ToUpper(p.String())))
		for _, f := range group {
			b.WriteString(fmt.Sprintf("#### %s: %s\n\n", f.ID, f.Title))
			b.WriteString(fmt.Sprintf("**Description:** %s\n\n", f.Description))
			b.WriteString(fmt.Sprintf("**Affected Controls:** %s\n\n", strings.Join(f.AffectedControls, ", ")))
			b.WriteString(fmt.Sprintf("**Risk Impact:** %s\n\n", f.RiskImpact))
			b.WriteString(fmt.Sprintf("**Remediation Effort:** %s\n\n", f.Effort))
			b.WriteString(fmt.Sprintf("**Recommendation:** %s\n\n", f.Recommendation))
			b.WriteString("---\n\n")
		}
	}
}

func writeAssessmentDetail(b *strings.Builder, rep audit.Report) {
	b.WriteString("## Detailed Control Assessment\n\n")
	for _, d := range sortedDomains(rep) {
		var recs []audit.Assessment
		for _, a := range rep.Assessments {
			if a.Domain == d {
				recs = append(recs, a)
			}
		}
		if len(recs) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", d))
		b.WriteString(fmt.Sprintf("**Domain Score:** %s\n\n", scoreCell(rep.Scores.ByDomain[d])))
		for _, a := range recs {
			b.WriteString(fmt.Sprintf("#### %s %s: %s\n\n", statusIcon(a.Status), a.ControlID, a.ControlName))
			b.WriteString(fmt.Sprintf("**Status:** %s\n\n", statusTitle(a.Status)))
			if a.Evidence != "" {
				b.WriteString(fmt.Sprintf("**Evidence:** %s\n\n", a.Evidence))
			}
			if len(a.Gaps) > 0 {
				b.WriteString("**Identified Gaps:**\n")
				for _, g := range a.Gaps {
					b.WriteString(fmt.Sprintf("- %s\n", g))
				}
				b.WriteString("\n")
			}
		}
	}
}

func sortedDomains(rep audit.Report) []string {
	out := make([]string, 0, len(rep.Scores.ByDomain))
	for d := range rep.Scores.ByDomain {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
