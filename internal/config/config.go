package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for posturekit.
// Pointer fields distinguish "unset" from a zero value so CLI flags can
// take precedence only when the file says nothing.
type FileConfig struct {
	Catalog         *string  `yaml:"catalog"`
	Exclude         []string `yaml:"exclude"`
	MaxBytes        *int64   `yaml:"max_bytes"`
	PerFileTimeout  *string  `yaml:"per_file_timeout"`
	Workers         *int     `yaml:"workers"`
	DefaultExcludes *bool    `yaml:"default_excludes"`
	NoColor         *bool    `yaml:"no_color"`
	NoHistory       *bool    `yaml:"no_history"`

	// Scope describes the system under assessment; it flows into report
	// headers untouched.
	Scope *ScopeConfig `yaml:"scope"`
}

// ScopeConfig mirrors the audit scope block of the config file.
type ScopeConfig struct {
	SystemName      *string  `yaml:"system_name"`
	PrimaryFunction *string  `yaml:"primary_function"`
	DataTypes       []string `yaml:"data_types"`
	Architecture    *string  `yaml:"architecture"`
	Environment     *string  `yaml:"environment"`
	Frameworks      []string `yaml:"frameworks"`
	UserBase        *string  `yaml:"user_base"`
	Criticality     *string  `yaml:"criticality"`
	Notes           *string  `yaml:"notes"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .posturekit.yml/.yaml and posturekit.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".posturekit.yml", ".posturekit.yaml", "posturekit.yml", "posturekit.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "posturekit", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
