// Package diag computes post-run diagnostics of a neutral trajectory:
// how far it got, how much it moved vertically, and how neutral the
// found points actually are under the equation of state used.
package diag

import (
	"math"

	"github.com/okean-lab/ntraj/internal/eos"
	"github.com/okean-lab/ntraj/internal/ocean"
)

// Compute returns the standard diagnostic set for a trajectory. The
// equation of state must be the one the trajectory was computed with for
// the residual to be meaningful.
func Compute(tr ocean.Trajectory, eosFn eos.Func) map[string]float64 {
	return map[string]float64{
		"coverage":     Coverage(tr),
		"excursion":    Excursion(tr),
		"max_step":     MaxStep(tr),
		"max_residual": MaxResidual(tr, eosFn),
	}
}

// Coverage is the fraction of casts with a valid connection.
func Coverage(tr ocean.Trajectory) float64 {
	if len(tr) == 0 {
		return 0
	}
	return float64(tr.NConnected()) / float64(len(tr))
}

// Excursion is the total vertical distance traveled, summed over
// consecutive connected pairs.
func Excursion(tr ocean.Trajectory) float64 {
	total := 0.0
	for i := 1; i < tr.NConnected(); i++ {
		total += math.Abs(tr[i].P - tr[i-1].P)
	}
	return total
}

// MaxStep is the largest single-cast pressure jump.
func MaxStep(tr ocean.Trajectory) float64 {
	max := 0.0
	for i := 1; i < tr.NConnected(); i++ {
		if d := math.Abs(tr[i].P - tr[i-1].P); d > max {
			max = d
		}
	}
	return max
}

// MaxResidual re-evaluates the neutrality condition between consecutive
// connected bottles: the density difference at their average pressure.
// Values on the order of the root-finding tolerance times the local
// density gradient indicate a healthy trajectory.
func MaxResidual(tr ocean.Trajectory, eosFn eos.Func) float64 {
	max := 0.0
	for i := 1; i < tr.NConnected(); i++ {
		a, b := tr[i-1], tr[i]
		pAvg := 0.5 * (a.P + b.P)
		r := math.Abs(eosFn(a.S, a.T, pAvg) - eosFn(b.S, b.T, pAvg))
		if r > max {
			max = r
		}
	}
	return max
}
