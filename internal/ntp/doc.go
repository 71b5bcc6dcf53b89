// Package ntp computes neutral tangent plane connections: the point on
// a cast that is neutrally related to a reference bottle, and neutral
// trajectories chaining such connections across a section of casts.
//
// Two parcels are neutrally related when their densities are equal after
// both are adiabatically leveled to their average pressure. The root of
//
//	eos(sB, tB, pAvg) - eos(s(p), t(p), pAvg),  pAvg = (p + pB)/2
//
// over pressures p on the cast is the neutral connection. No sign change
// within the cast's valid pressure range means the neutral surface has
// run off the top or bottom of the water column (outcropped or
// incropped); that is a missing result, not an error.
//
// All routines are deterministic and reentrant: options carry the
// equation of state and interpolant explicitly, and casts are treated as
// read-only.
package ntp
