package ocean

import "errors"

// Domain errors. Missing neutral connections are not errors; they are
// NaN-valued bottles. These errors mark caller misuse or bad inputs.
var (
	// ErrUnknownEOS indicates an unrecognized equation-of-state name.
	ErrUnknownEOS = errors.New("ocean: unknown equation of state")

	// ErrUnknownInterp indicates an unrecognized interpolation method name.
	ErrUnknownInterp = errors.New("ocean: unknown interpolation method")

	// ErrBoussinesqPair indicates grav and rhoC were not supplied together.
	ErrBoussinesqPair = errors.New("ocean: grav and rho_c must both be set or both be zero")

	// ErrBadBracket indicates a root-finding bracket without a sign change.
	ErrBadBracket = errors.New("ocean: bracket endpoints must have opposite signs")

	// ErrShapeMismatch indicates S, T, P arrays of unequal length.
	ErrShapeMismatch = errors.New("ocean: cast arrays must have equal length")
)
