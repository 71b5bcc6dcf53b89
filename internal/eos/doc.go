// Package eos provides equation-of-state functions: density as a
// function of salinity, temperature, and pressure (or depth).
//
// Providers are plain callables of type [Func], selected once by name via
// [Make] and then passed down explicitly; there is no global state. The
// builtins are:
//
//   - "jmd95": Jackett and McDougall (1995) in-situ density, JAOT 12(4)
//   - "linear": idealized linear density, for tests and toy sections
//
// For Boussinesq (rigid-lid) models whose vertical coordinate is depth,
// supply grav and rhoC to [Make] (or wrap a custom Func with
// [Boussinesq]) to convert a pressure-based provider into a depth-based
// one via the hydrostatic relation p = 1e-4 * grav * rhoC * z [dbar].
package eos
