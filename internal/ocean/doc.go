// Package ocean provides the core hydrographic data types shared across
// the module:
//
//   - [Bottle]: a single water parcel (salinity, temperature, pressure)
//   - [Cast]: a vertical profile of salinity/temperature/pressure samples
//   - [Trajectory]: a sequence of bottles, one per cast
//
// Pressure may equally be depth throughout; all routines are agnostic to
// the vertical coordinate as long as it increases downward along a cast
// and the equation of state expects the same coordinate.
//
// Missing data is represented by NaN, never by sentinel magnitudes. A
// cast's usable portion is its leading run of non-NaN samples; anything
// below the first NaN is treated as below the seafloor.
package ocean
