package config

import "sort"

// Presets are ready-made run configurations for the synthetic sections.
var Presets = map[string]*Config{
	"subtropical": {
		EOS: "jmd95", Interp: "linear", TolP: 1e-4, P0: 500,
		Section: SectionConfig{Preset: "subtropical", Casts: 40, Levels: 50},
	},
	"subtropical-pchip": {
		EOS: "jmd95", Interp: "pchip", TolP: 1e-4, P0: 500,
		Section: SectionConfig{Preset: "subtropical", Casts: 40, Levels: 50},
	},
	"polar": {
		EOS: "jmd95", Interp: "linear", TolP: 1e-4, P0: 200,
		Section: SectionConfig{Preset: "polar", Casts: 30, Levels: 40},
	},
	"shoaling": {
		// Seafloor rises along the section until the trajectory incrops.
		EOS: "jmd95", Interp: "linear", TolP: 1e-4, P0: 1200,
		Section: SectionConfig{Preset: "shoaling", Casts: 30, Levels: 60},
	},
	"boussinesq": {
		// Depth coordinate with a rigid-lid model's reference values.
		EOS: "jmd95", Interp: "linear", TolP: 1e-4, P0: 500,
		Grav: 9.81, RhoC: 1027.5,
		Section: SectionConfig{Preset: "subtropical", Casts: 40, Levels: 50},
	},
	"toy": {
		EOS: "linear", Interp: "linear", TolP: 1e-4, P0: 300,
		Section: SectionConfig{Preset: "subtropical", Casts: 10, Levels: 20},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
