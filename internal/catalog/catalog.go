package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/controls.yaml
var builtinData []byte

// RiskClass drives finding prioritization for a control.
type RiskClass string

const (
	RiskCritical RiskClass = "critical"
	RiskHigh     RiskClass = "high"
	RiskStandard RiskClass = "standard"
)

// Control is a single requirement within the catalog. Immutable after load.
type Control struct {
	ID          string          `yaml:"id" json:"id"`
	Domain      string          `yaml:"domain" json:"domain"`
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	RiskClass   RiskClass       `yaml:"risk_class" json:"risk_class"`
	Frameworks  map[string]bool `yaml:"frameworks" json:"frameworks,omitempty"`
}

// Catalog is an indexed, read-only set of controls. Safe for concurrent
// reads once constructed.
type Catalog struct {
	controls []Control
	byID     map[string]int
	domains  map[string][]string
}

type catalogFile struct {
	Controls []Control `yaml:"controls"`
}

// Parse builds a catalog from YAML bytes, validating required fields and
// rejecting duplicate control IDs.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if len(f.Controls) == 0 {
		return nil, fmt.Errorf("catalog: no controls defined")
	}

	c := &Catalog{
		byID:    make(map[string]int, len(f.Controls)),
		domains: map[string][]string{},
	}
	for i, ctl := range f.Controls {
		switch {
		case ctl.ID == "":
			return nil, fmt.Errorf("catalog: control %d: missing id", i)
		case ctl.Domain == "":
			return nil, fmt.Errorf("catalog: control %s: missing domain", ctl.ID)
		case ctl.Name == "":
			return nil, fmt.Errorf("catalog: control %s: missing name", ctl.ID)
		case ctl.Description == "":
			return nil, fmt.Errorf("catalog: control %s: missing description", ctl.ID)
		}
		if _, dup := c.byID[ctl.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate control id %s", ctl.ID)
		}
		switch ctl.RiskClass {
		case RiskCritical, RiskHigh, RiskStandard:
		case "":
			ctl.RiskClass = RiskStandard
		default:
			return nil, fmt.Errorf("catalog: control %s: unknown risk_class %q", ctl.ID, ctl.RiskClass)
		}
		c.byID[ctl.ID] = len(c.controls)
		c.controls = append(c.controls, ctl)
		c.domains[ctl.Domain] = append(c.domains[ctl.Domain], ctl.ID)
	}
	for d := range c.domains {
		sort.Strings(c.domains[d])
	}
	return c, nil
}

// Load reads a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(b)
}

// Builtin returns the embedded default catalog. The embedded data is part
// of the build, so a failure here is a programming error.
func Builtin() *Catalog {
	c, err := Parse(builtinData)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// Control looks up a control by ID.
func (c *Catalog) Control(id string) (Control, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Control{}, false
	}
	return c.controls[i], true
}

// Domain returns the controls of one domain, sorted by ID.
func (c *Catalog) Domain(name string) []Control {
	ids := c.domains[name]
	out := make([]Control, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.controls[c.byID[id]])
	}
	return out
}

// Domains returns all domain names, sorted.
func (c *Catalog) Domains() []string {
	out := make([]string, 0, len(c.domains))
	for d := range c.domains {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Controls returns a copy of all controls in load order.
func (c *Catalog) Controls() []Control {
	out := make([]Control, len(c.controls))
	copy(out, c.controls)
	return out
}

// Len reports the number of controls.
func (c *Catalog) Len() int { return len(c.controls) }
