// Package config resolves the ambient tuning knobs spec §6 enumerates:
// ShowProgress and NumChunks, plus the opt-in CoplanarEpsilon and
// Workers extensions from SPEC_FULL §6. None of these affect the
// boolean or geometric result of hull.Build or sat.Tester.HitTest; they
// are purely reporting and performance knobs.
//
// Config can be built with Default, overridden programmatically, or
// loaded from a YAML document via Load, grounded on the pack's
// gopkg.in/yaml.v3 usage (gazed-vu's go.mod, g3n-engine/gui/builder.go).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the resolved set of tuning knobs for hull.Build and
// sat.New.
type Config struct {
	// ShowProgress routes progress notices to a diag.Sink during
	// hull.Build. Never affects the output topology.
	ShowProgress bool `yaml:"show_progress"`

	// NumChunks is SatTester's axis-projection batching granularity.
	// Must be >= 1; never affects the returned boolean (spec §4.2,
	// property 7).
	NumChunks uint32 `yaml:"num_chunks"`

	// CoplanarEpsilon is the tolerance used in place of spec §4.1's
	// exact-zero signed-volume test when deciding whether a point is
	// coplanar with a face. Zero means the fragile exact-`==0` default
	// described in spec §9 is in effect; this is the default, by
	// design, so existing callers keep the original Python behavior.
	CoplanarEpsilon float64 `yaml:"coplanar_epsilon"`

	// Workers controls sat.Tester's axis-projection fan-out (SPEC_FULL
	// §5). 1 (the default) is strictly sequential. Never affects the
	// returned boolean.
	Workers int `yaml:"workers"`
}

// Default returns the spec-mandated defaults: ShowProgress=false,
// NumChunks=80, CoplanarEpsilon=0, Workers=1.
func Default() Config {
	return Config{
		ShowProgress:    false,
		NumChunks:       80,
		CoplanarEpsilon: 0,
		Workers:         1,
	}
}

// Load reads a YAML document from path and overlays it onto Default().
// Fields absent from the document keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.NumChunks == 0 {
		cfg.NumChunks = 80
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}
