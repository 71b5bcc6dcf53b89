package interp

import "math"

// PCHIP evaluates a piecewise cubic Hermite interpolant of S and T at p,
// with Fritsch-Carlson slopes. The interpolant is C1 and preserves
// monotonicity of the data; slopes are computed locally from the
// interval containing p and its neighbors, so single-point evaluation
// needs no precomputed spline.
func PCHIP(p float64, P, S, T []float64) (float64, float64) {
	if len(P) == 1 && p == P[0] {
		return S[0], T[0]
	}
	i := searchInterval(p, P)
	if i < 0 {
		return math.NaN(), math.NaN()
	}
	s := hermite(p, P, S, i)
	t := hermite(p, P, T, i)
	return s, t
}

// hermite evaluates the cubic Hermite piece on [P[i], P[i+1]].
func hermite(p float64, P, Y []float64, i int) float64 {
	h := P[i+1] - P[i]
	d0 := pchipSlope(P, Y, i)
	d1 := pchipSlope(P, Y, i+1)

	x := (p - P[i]) / h
	x2 := x * x
	x3 := x2 * x

	h00 := 2*x3 - 3*x2 + 1
	h10 := x3 - 2*x2 + x
	h01 := -2*x3 + 3*x2
	h11 := x3 - x2

	return h00*Y[i] + h10*h*d0 + h01*Y[i+1] + h11*h*d1
}

// pchipSlope returns the Fritsch-Carlson derivative estimate at node k.
func pchipSlope(P, Y []float64, k int) float64 {
	n := len(P)
	if n == 2 {
		return (Y[1] - Y[0]) / (P[1] - P[0])
	}
	if k == 0 {
		return edgeSlope(P[1]-P[0], P[2]-P[1],
			(Y[1]-Y[0])/(P[1]-P[0]), (Y[2]-Y[1])/(P[2]-P[1]))
	}
	if k == n-1 {
		return edgeSlope(P[n-1]-P[n-2], P[n-2]-P[n-3],
			(Y[n-1]-Y[n-2])/(P[n-1]-P[n-2]), (Y[n-2]-Y[n-3])/(P[n-2]-P[n-3]))
	}

	h0 := P[k] - P[k-1]
	h1 := P[k+1] - P[k]
	d0 := (Y[k] - Y[k-1]) / h0
	d1 := (Y[k+1] - Y[k]) / h1

	// Zero slope at local extrema keeps the interpolant monotone.
	if d0 == 0 || d1 == 0 || (d0 > 0) != (d1 > 0) {
		return 0
	}

	// Weighted harmonic mean of the adjacent secants.
	w0 := 2*h1 + h0
	w1 := h1 + 2*h0
	return (w0 + w1) / (w0/d0 + w1/d1)
}

// edgeSlope is the one-sided three-point estimate at a boundary node,
// clipped to keep the end interval shape-preserving.
func edgeSlope(h0, h1, d0, d1 float64) float64 {
	d := ((2*h0+h1)*d0 - h0*d1) / (h0 + h1)
	if d != 0 && d0 != 0 && (d > 0) != (d0 > 0) {
		return 0
	}
	if d0 != 0 && d1 != 0 && (d0 > 0) != (d1 > 0) && math.Abs(d) > 3*math.Abs(d0) {
		return 3 * d0
	}
	return d
}
