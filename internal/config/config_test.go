package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okean-lab/ntraj/internal/ocean"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "jmd95", cfg.EOS)
	assert.Equal(t, "linear", cfg.Interp)
	assert.Greater(t, cfg.TolP, 0.0)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := []byte("interp: pchip\np0: 1200\nsection:\n  preset: polar\n")
	require.NoError(t, os.WriteFile(path, body, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pchip", cfg.Interp)
	assert.Equal(t, 1200.0, cfg.P0)
	assert.Equal(t, "polar", cfg.Section.Preset)
	// Untouched fields keep their defaults.
	assert.Equal(t, "jmd95", cfg.EOS)
	assert.Equal(t, DefaultTolP, cfg.TolP)
}

func TestLoadRejectsHalfBoussinesqPair(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grav: 9.81\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ocean.ErrBoussinesqPair)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TolP = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Section.File = "section.csv"
	assert.Error(t, cfg.Validate(), "preset and file together should fail")

	cfg = Default()
	cfg.Section.Preset = ""
	cfg.Section.File = "section.csv"
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	cfg := GetPreset("boussinesq")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("shoaling")
	require.NotNil(t, cfg)
	assert.Equal(t, "shoaling", cfg.Section.Preset)

	// Presets must all pass validation.
	for _, name := range ListPresets() {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}

	assert.Nil(t, GetPreset("abyssal"))
}
