package audit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/posturekit/posturekit/internal/catalog"
)

// Priority ranks a finding. Higher values sort first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// MarshalJSON encodes a Priority as its wire string.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a Priority from its wire string.
func (p *Priority) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw {
	case "critical":
		*p = PriorityCritical
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("invalid priority %q", raw)
	}
	return nil
}

// Finding is a derived, prioritized issue backed by one control's gaps.
// Findings are regenerated from the store, never edited in place.
type Finding struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	AffectedControls []string `json:"affected_controls"`
	Priority         Priority `json:"priority"`
	RiskImpact       string   `json:"risk_impact"`
	Recommendation   string   `json:"recommendation"`
	Effort           string   `json:"effort"`
}

// priorityFor maps (status, risk class) onto a priority. Both switches are
// exhaustive; statuses that never produce findings panic to catch misuse.
func priorityFor(status Status, risk catalog.RiskClass) Priority {
	switch status {
	case StatusNonCompliant:
		switch risk {
		case catalog.RiskCritical:
			return PriorityCritical
		case catalog.RiskHigh:
			return PriorityHigh
		case catalog.RiskStandard:
			return PriorityMedium
		}
	case StatusPartial:
		switch risk {
		case catalog.RiskCritical:
			return PriorityHigh
		case catalog.RiskHigh:
			return PriorityMedium
		case catalog.RiskStandard:
			return PriorityLow
		}
	case StatusCompliant, StatusNotApplicable, StatusNotAssessed:
	}
	panic(fmt.Sprintf("priorityFor: %s/%s", status, risk))
}

func effortFor(p Priority) string {
	switch p {
	case PriorityCritical, PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return "medium"
}

// Findings derives one finding per partial or non-compliant control that
// has recorded gaps. Every gap is carried into the description; nothing is
// dropped. The result is fully determined by the store: regenerating from
// an unchanged audit yields a byte-identical list. Generation never
// mutates the store.
func (a *Audit) Findings() []Finding {
	var out []Finding
	for _, rec := range a.Records() {
		switch rec.Status {
		case StatusPartial, StatusNonCompliant:
		case StatusCompliant, StatusNotApplicable, StatusNotAssessed:
			continue
		}
		if len(rec.Gaps) == 0 {
			continue
		}
		ctl, ok := a.cat.Control(rec.ControlID)
		if !ok {
			// Assess validated the ID; a miss here means the catalog
			// changed under us, which load-time immutability forbids.
			continue
		}
		prio := priorityFor(rec.Status, ctl.RiskClass)
		out = append(out, Finding{
			Title:            findingTitle(rec),
			Description:      strings.Join(rec.Gaps, "; "),
			AffectedControls: []string{rec.ControlID},
			Priority:         prio,
			RiskImpact:       riskImpact(ctl),
			Recommendation:   fmt.Sprintf("Remediate the identified gaps for %s (%s).", rec.ControlID, ctl.Name),
			Effort:           effortFor(prio),
		})
	}

	// Priority descending, then control ID ascending; IDs are assigned
	// after sorting so they are stable across regenerations.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].AffectedControls[0] < out[j].AffectedControls[0]
	})
	for i := range out {
		out[i].ID = fmt.Sprintf("F-%03d", i+1)
	}
	return out
}

func findingTitle(rec Assessment) string {
	switch rec.Status {
	case StatusNonCompliant:
		return fmt.Sprintf("Non-compliance: %s", rec.ControlName)
	case StatusPartial:
		return fmt.Sprintf("Partial compliance: %s", rec.ControlName)
	}
	return rec.ControlName
}

func riskImpact(ctl catalog.Control) string {
	switch ctl.RiskClass {
	case catalog.RiskCritical:
		return fmt.Sprintf("Failure of %s exposes the system to direct compromise.", ctl.Name)
	case catalog.RiskHigh:
		return fmt.Sprintf("Gaps in %s materially weaken the system's security posture.", ctl.Name)
	}
	return fmt.Sprintf("Gaps in %s reduce assurance over the control objective.", ctl.Name)
}
