package eos

import (
	"fmt"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// Func is the equation-of-state contract: density (or specific volume)
// from salinity, temperature, and pressure or depth. Implementations are
// called many times with scalar inputs inside root-finding loops and
// must be pure.
type Func func(s, t, p float64) float64

// Make resolves a named builtin equation of state. When grav and rhoC
// are both nonzero the returned function takes depth [m, positive down]
// as its third argument instead of pressure [dbar]; supplying only one
// of the pair is an error.
func Make(name string, grav, rhoC float64) (Func, error) {
	var f Func
	switch name {
	case "jmd95":
		f = JMD95
	case "linear":
		f = Linear()
	default:
		return nil, fmt.Errorf("%w: %q", ocean.ErrUnknownEOS, name)
	}
	return wrap(f, grav, rhoC)
}

// MakeFunc applies the same grav/rhoC handling as Make to a
// caller-supplied equation of state.
func MakeFunc(f Func, grav, rhoC float64) (Func, error) {
	return wrap(f, grav, rhoC)
}

func wrap(f Func, grav, rhoC float64) (Func, error) {
	if grav == 0 && rhoC == 0 {
		return f, nil
	}
	if grav == 0 || rhoC == 0 {
		return nil, ocean.ErrBoussinesqPair
	}
	return Boussinesq(f, grav, rhoC), nil
}

// Boussinesq converts a pressure-based equation of state into a
// depth-based one for a Boussinesq model with gravitational acceleration
// grav [m s-2] and reference density rhoC [kg m-3]. Depth is positive
// down; 1 dbar = 1e4 Pa.
func Boussinesq(f Func, grav, rhoC float64) Func {
	zToP := 1e-4 * grav * rhoC
	return func(s, t, z float64) float64 {
		return f(s, t, z*zToP)
	}
}

// Linear returns an idealized linear equation of state
//
//	rho = rho0 * (1 - alpha*(t - t0) + beta*(s - s0))
//
// with typical mid-latitude reference values. Useful for synthetic
// sections where the density field should be easy to reason about.
func Linear() Func {
	const (
		rho0  = 1027.0
		t0    = 10.0
		s0    = 35.0
		alpha = 2.0e-4
		beta  = 7.6e-4
	)
	return func(s, t, p float64) float64 {
		return rho0 * (1 - alpha*(t-t0) + beta*(s-s0))
	}
}
