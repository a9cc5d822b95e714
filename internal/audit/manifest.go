package audit

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one manual assessment in an on-disk assessments file.
type ManifestEntry struct {
	ControlID string   `yaml:"control_id"`
	Status    Status   `yaml:"status"`
	Evidence  string   `yaml:"evidence,omitempty"`
	Gaps      []string `yaml:"gaps,omitempty"`
}

// LoadManifest reads a YAML assessments file. The file is a plain list of
// entries.
func LoadManifest(path string) ([]ManifestEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("assessments file %s: %w", path, err)
	}
	return entries, nil
}

// SaveManifest writes entries sorted by control ID.
func SaveManifest(path string, entries []ManifestEntry) error {
	sorted := append([]ManifestEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ControlID < sorted[j].ControlID })
	b, err := yaml.Marshal(sorted)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ApplyManifest records every entry in order. The first invalid entry
// stops the apply and is returned; earlier entries stay recorded.
func (a *Audit) ApplyManifest(entries []ManifestEntry) error {
	for _, e := range entries {
		if err := a.Assess(e.ControlID, e.Status, e.Evidence, e.Gaps); err != nil {
			return err
		}
	}
	return nil
}
