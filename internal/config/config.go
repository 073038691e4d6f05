// Package config holds the run configuration shared by the tools. Values
// come from defaults, an optional YAML file, then CLI flags, in that order;
// nothing here is process-global state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects the per-run knobs shared by the tools.
type Config struct {
	// Filename template with {specimen} and {group} placeholders,
	// e.g. "PBMC-{specimen}-*-{group}-*_new.xlsx".
	Template string `yaml:"template"`

	// IdentityColumns define clonotype identity. The beta-chain D segment is
	// omitted: it is entirely contained within cdr3_b.
	IdentityColumns []string `yaml:"identity_columns"`

	// Construct building (tcrbuilder).
	Species      string `yaml:"species"`
	TRBC         string `yaml:"trbc"`
	HomologyArm5 string `yaml:"homology_arm_5"`
	HomologyArm3 string `yaml:"homology_arm_3"`
}

// Default returns the standard lab configuration: human datasets, TRBC2,
// and the pHR-vector HiFi homology arms.
func Default() Config {
	return Config{
		IdentityColumns: []string{"v_gene_a", "j_gene_a", "cdr3_a", "cdr3_b", "v_gene_b", "j_gene_b"},
		Species:         "human",
		TRBC:            "TRBC2",
		HomologyArm5:    "GAGTCGCCCGGGGGGGATCGCTCGAGACC",
		HomologyArm3:    "GGATCCGGAGCTACTAACTTCAGCCT",
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.IdentityColumns) == 0 {
		return fmt.Errorf("identity_columns must not be empty")
	}
	if c.TRBC != "TRBC1" && c.TRBC != "TRBC2" {
		return fmt.Errorf("trbc must be TRBC1 or TRBC2, got %q", c.TRBC)
	}
	return nil
}
