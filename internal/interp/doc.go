// Package interp provides one-dimensional, two-variable interpolation
// kernels used to evaluate a cast's salinity and temperature at an
// arbitrary pressure.
//
// Kernels evaluate at a single point per call (the mode needed inside
// root-finding loops) and interpolate both dependent variables in one
// pass over the coordinate array. Targets outside the coordinate range
// yield NaN for both outputs; there is no extrapolation.
//
// Callers pass only the valid (non-NaN, strictly increasing) prefix of a
// cast's arrays. Builtins are "linear" and "pchip" (piecewise cubic
// Hermite, Fritsch-Carlson slopes, C1 and monotone).
package interp
