package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okean-lab/ntraj/internal/ocean"
)

const (
	DefaultEOS    = "jmd95"
	DefaultInterp = "linear"
	DefaultTolP   = 1e-4
	DefaultP0     = 500.0
)

// Config is the full run configuration loaded from YAML. Flags on the
// CLI override whatever is set here.
type Config struct {
	EOS    string  `yaml:"eos"`
	Interp string  `yaml:"interp"`
	TolP   float64 `yaml:"tol_p"`

	// Boussinesq pair: both or neither. When set, the vertical
	// coordinate is depth [m] and the equation of state is converted
	// accordingly.
	Grav float64 `yaml:"grav"`
	RhoC float64 `yaml:"rho_c"`

	// Start of the trajectory.
	P0 float64 `yaml:"p0"`
	S0 float64 `yaml:"s0"`
	T0 float64 `yaml:"t0"`
	// UseBottle pins the trajectory to the explicit bottle (S0, T0, P0)
	// instead of interpolating the first cast at P0.
	UseBottle bool `yaml:"use_bottle"`

	Section SectionConfig `yaml:"section"`
}

// SectionConfig describes where casts come from: a named synthetic
// preset or a CSV file.
type SectionConfig struct {
	Preset string `yaml:"preset"`
	File   string `yaml:"file"`

	// Synthetic generation knobs; zero values fall back to the preset's.
	Casts  int `yaml:"casts"`
	Levels int `yaml:"levels"`
}

func Default() *Config {
	return &Config{
		EOS:    DefaultEOS,
		Interp: DefaultInterp,
		TolP:   DefaultTolP,
		P0:     DefaultP0,
		Section: SectionConfig{
			Preset: "subtropical",
		},
	}
}

// Load reads a YAML config, layered over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the engine would refuse anyway, so
// mistakes surface before any numerics run.
func (c *Config) Validate() error {
	if (c.Grav == 0) != (c.RhoC == 0) {
		return ocean.ErrBoussinesqPair
	}
	if c.TolP <= 0 {
		return fmt.Errorf("config: tol_p must be positive, got %g", c.TolP)
	}
	if c.Section.Preset != "" && c.Section.File != "" {
		return fmt.Errorf("config: section preset and file are mutually exclusive")
	}
	return nil
}
