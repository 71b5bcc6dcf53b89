package section

import (
	"github.com/okean-lab/ntraj/internal/config"
	"github.com/okean-lab/ntraj/internal/ocean"
)

// FromConfig resolves a SectionConfig into casts: a CSV file when given,
// otherwise a synthetic preset with optional cast/level overrides.
func FromConfig(sc config.SectionConfig) ([]ocean.Cast, error) {
	if sc.File != "" {
		return LoadCSV(sc.File)
	}
	name := sc.Preset
	if name == "" {
		name = "subtropical"
	}
	p, err := Preset(name)
	if err != nil {
		return nil, err
	}
	if sc.Casts > 0 {
		p.Casts = sc.Casts
	}
	if sc.Levels > 1 {
		p.Levels = sc.Levels
	}
	return Generate(p), nil
}
