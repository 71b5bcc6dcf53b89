package diag

import (
	"math"
	"testing"

	"github.com/okean-lab/ntraj/internal/eos"
	"github.com/okean-lab/ntraj/internal/ocean"
)

func TestCoverage(t *testing.T) {
	tr := ocean.Trajectory{
		{S: 35, T: 10, P: 100},
		{S: 35, T: 10, P: 120},
		ocean.MissingBottle(),
		ocean.MissingBottle(),
	}

	if got := Coverage(tr); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("coverage: got %f, want 0.5", got)
	}
	if got := Coverage(ocean.Trajectory{}); got != 0 {
		t.Errorf("empty coverage: got %f", got)
	}
}

func TestExcursionAndMaxStep(t *testing.T) {
	tr := ocean.Trajectory{
		{S: 35, T: 10, P: 100},
		{S: 35, T: 10, P: 150},
		{S: 35, T: 10, P: 130},
		ocean.MissingBottle(),
	}

	if got := Excursion(tr); math.Abs(got-70) > 1e-12 {
		t.Errorf("excursion: got %f, want 70", got)
	}
	if got := MaxStep(tr); math.Abs(got-50) > 1e-12 {
		t.Errorf("max step: got %f, want 50", got)
	}
}

func TestMaxResidualZeroForIdenticalBottles(t *testing.T) {
	tr := ocean.Trajectory{
		{S: 35, T: 10, P: 100},
		{S: 35, T: 10, P: 100},
	}

	if got := MaxResidual(tr, eos.JMD95); got != 0 {
		t.Errorf("identical bottles should have zero residual, got %e", got)
	}
}

func TestComputeKeys(t *testing.T) {
	tr := ocean.Trajectory{
		{S: 35, T: 10, P: 100},
		{S: 35.01, T: 9.9, P: 140},
	}

	d := Compute(tr, eos.JMD95)
	for _, key := range []string{"coverage", "excursion", "max_step", "max_residual"} {
		if _, ok := d[key]; !ok {
			t.Errorf("missing diagnostic %q", key)
		}
	}
	if d["coverage"] != 1.0 {
		t.Errorf("coverage: got %f", d["coverage"])
	}
}
