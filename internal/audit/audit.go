package audit

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/posturekit/posturekit/internal/catalog"
)

// Scope describes the system under audit. It is report-header context and
// plays no part in scoring.
type Scope struct {
	SystemName      string   `yaml:"system_name" json:"system_name"`
	PrimaryFunction string   `yaml:"primary_function" json:"primary_function,omitempty"`
	DataTypes       []string `yaml:"data_types" json:"data_types,omitempty"`
	Architecture    string   `yaml:"architecture" json:"architecture,omitempty"`
	Environment     string   `yaml:"environment" json:"environment,omitempty"`
	Frameworks      []string `yaml:"frameworks" json:"frameworks,omitempty"`
	UserBase        string   `yaml:"user_base" json:"user_base,omitempty"`
	Criticality     string   `yaml:"criticality" json:"criticality,omitempty"`
	Notes           string   `yaml:"notes" json:"notes,omitempty"`
}

// Assessment is the current recorded state of one control. The latest
// write for a control wins; no in-store history is kept.
type Assessment struct {
	ControlID   string    `json:"control_id" yaml:"control_id"`
	Domain      string    `json:"domain" yaml:"-"`
	ControlName string    `json:"control_name" yaml:"-"`
	Status      Status    `json:"status" yaml:"status"`
	Evidence    string    `json:"evidence,omitempty" yaml:"evidence"`
	Gaps        []string  `json:"gaps,omitempty" yaml:"gaps"`
	AssessedAt  time.Time `json:"assessed_at" yaml:"-"`
}

// UnknownControlError reports an assessment against a control ID that is
// not in the catalog.
type UnknownControlError struct {
	ControlID string
}

func (e *UnknownControlError) Error() string {
	return fmt.Sprintf("unknown control id %q", e.ControlID)
}

// Audit holds the assessment state of a single run against one catalog.
// It is an explicit context object: independent audits never share state,
// so multiple runs can proceed concurrently in one process.
type Audit struct {
	cat   *catalog.Catalog
	scope Scope

	mu      sync.Mutex
	records map[string]Assessment
	now     func() time.Time
}

// New creates an empty audit for the given catalog and scope.
func New(cat *catalog.Catalog, scope Scope) *Audit {
	return &Audit{
		cat:     cat,
		scope:   scope,
		records: map[string]Assessment{},
		now:     time.Now,
	}
}

// Catalog returns the catalog this audit is assessed against.
func (a *Audit) Catalog() *catalog.Catalog { return a.cat }

// Scope returns the audit's scope metadata.
func (a *Audit) Scope() Scope { return a.scope }

// Assess records the compliance state of one control, replacing any prior
// record for the same control. It rejects unknown control IDs and status
// values outside the enum; on rejection the store is unchanged.
func (a *Audit) Assess(controlID string, status Status, evidence string, gaps []string) error {
	ctl, ok := a.cat.Control(controlID)
	if !ok {
		return &UnknownControlError{ControlID: controlID}
	}
	if !status.valid() {
		return &InvalidStatusError{Value: status.String()}
	}

	rec := Assessment{
		ControlID:   ctl.ID,
		Domain:      ctl.Domain,
		ControlName: ctl.Name,
		Status:      status,
		Evidence:    evidence,
		Gaps:        append([]string(nil), gaps...),
		AssessedAt:  a.now(),
	}

	a.mu.Lock()
	a.records[ctl.ID] = rec
	a.mu.Unlock()
	return nil
}

// Record returns the current assessment of one control, if any.
func (a *Audit) Record(controlID string) (Assessment, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.records[controlID]
	return rec, ok
}

// Records returns all assessments sorted by control ID.
func (a *Audit) Records() []Assessment {
	a.mu.Lock()
	out := make([]Assessment, 0, len(a.records))
	for _, rec := range a.records {
		out = append(out, rec)
	}
	a.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ControlID < out[j].ControlID })
	return out
}
