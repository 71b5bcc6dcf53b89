package interp

import (
	"fmt"
	"math"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// Func interpolates two dependent variables at once: given a target
// pressure p and a cast's coordinate array P with dependents S and T,
// it returns (s, t) at p. Out-of-range targets return (NaN, NaN).
type Func func(p float64, P, S, T []float64) (float64, float64)

// Make resolves a named interpolation method.
func Make(name string) (Func, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "pchip":
		return PCHIP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ocean.ErrUnknownInterp, name)
	}
}

// searchInterval returns i such that P[i] <= p <= P[i+1], or -1 when p
// is outside [P[0], P[n-1]] or fewer than two samples exist. Exact hits
// on an interior node resolve to the interval starting at that node.
func searchInterval(p float64, P []float64) int {
	n := len(P)
	if n < 2 || p < P[0] || p > P[n-1] || math.IsNaN(p) {
		return -1
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if P[mid] <= p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Linear evaluates piecewise linear interpolation of S and T at p.
func Linear(p float64, P, S, T []float64) (float64, float64) {
	if len(P) == 1 && p == P[0] {
		return S[0], T[0]
	}
	i := searchInterval(p, P)
	if i < 0 {
		return math.NaN(), math.NaN()
	}
	frac := (p - P[i]) / (P[i+1] - P[i])
	s := S[i] + frac*(S[i+1]-S[i])
	t := T[i] + frac*(T[i+1]-T[i])
	return s, t
}
