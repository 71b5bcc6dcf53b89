package section

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okean-lab/ntraj/internal/config"
)

func TestGenerateShape(t *testing.T) {
	p, err := Preset("subtropical")
	require.NoError(t, err)

	casts := Generate(p)
	require.Len(t, casts, p.Casts)

	for j, c := range casts {
		require.Len(t, c.P, p.Levels)
		assert.Equal(t, p.Levels, c.NGood(), "cast %d should be full depth", j)

		// Pressure strictly increasing.
		for i := 1; i < c.Len(); i++ {
			assert.Greater(t, c.P[i], c.P[i-1])
		}
		// Stable stratification: temperature decreases downward.
		for i := 1; i < c.NGood(); i++ {
			assert.Less(t, c.T[i], c.T[i-1], "cast %d level %d", j, i)
		}
	}

	// The section warms along-track at the surface.
	assert.Greater(t, casts[10].T[0], casts[0].T[0])
	// But the abyss is nearly uniform.
	last := p.Levels - 1
	assert.InDelta(t, casts[0].T[last], casts[10].T[last], 0.05)
}

func TestGenerateShoaling(t *testing.T) {
	p, err := Preset("shoaling")
	require.NoError(t, err)

	casts := Generate(p)

	first := casts[0].NGood()
	lastCast := casts[len(casts)-1].NGood()
	assert.Equal(t, p.Levels, first, "first cast reaches full depth")
	assert.Less(t, lastCast, first/2, "last cast should have lost most of the column")

	// NaN tails only: the valid prefix is contiguous.
	for j, c := range casts {
		n := c.NGood()
		for i := n; i < c.Len(); i++ {
			assert.True(t, math.IsNaN(c.S[i]), "cast %d level %d", j, i)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("hadal")
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	p, err := Preset("shoaling")
	require.NoError(t, err)
	p.Casts, p.Levels = 5, 12
	casts := Generate(p)

	path := filepath.Join(t.TempDir(), "section.csv")
	require.NoError(t, WriteCSV(path, casts))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, got, len(casts))

	for j := range casts {
		assert.Equal(t, casts[j].NGood(), got[j].NGood(), "cast %d", j)
		for i := 0; i < casts[j].NGood(); i++ {
			assert.InDelta(t, casts[j].S[i], got[j].S[i], 1e-6)
			assert.InDelta(t, casts[j].T[i], got[j].T[i], 1e-6)
			assert.InDelta(t, casts[j].P[i], got[j].P[i], 1e-6)
		}
	}
}

func TestLoadCSVRejectsMalformed(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	_, err := LoadCSV(write("odd.csv", "p,s0\n0,35\n"))
	assert.Error(t, err, "odd column count")

	_, err = LoadCSV(write("order.csv", "p,s0,t0\n100,35,10\n50,35,9\n"))
	assert.Error(t, err, "non-increasing pressure")

	_, err = LoadCSV(write("empty.csv", "p,s0,t0\n"))
	assert.Error(t, err, "no data rows")
}

func TestFromConfig(t *testing.T) {
	casts, err := FromConfig(config.SectionConfig{Preset: "polar", Casts: 7, Levels: 9})
	require.NoError(t, err)
	assert.Len(t, casts, 7)
	assert.Equal(t, 9, casts[0].Len())

	_, err = FromConfig(config.SectionConfig{Preset: "hadal"})
	assert.Error(t, err)
}
