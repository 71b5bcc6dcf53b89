package ocean

import "math"

// Bottle is a single water parcel: salinity, temperature, and pressure
// (or depth). A bottle with NaN fields is a missing result.
type Bottle struct {
	S float64
	T float64
	P float64
}

// MissingBottle returns the all-NaN bottle used to signal "no neutral
// connection" on a cast.
func MissingBottle() Bottle {
	nan := math.NaN()
	return Bottle{S: nan, T: nan, P: nan}
}

// Valid reports whether all three fields are finite.
func (b Bottle) Valid() bool {
	return !math.IsNaN(b.S) && !math.IsInf(b.S, 0) &&
		!math.IsNaN(b.T) && !math.IsInf(b.T, 0) &&
		!math.IsNaN(b.P) && !math.IsInf(b.P, 0)
}

// Cast is a vertical profile at one location. S, T, P have equal length;
// P increases strictly along the valid prefix. Trailing NaN entries mark
// levels below the seafloor. Casts are read-only once built.
type Cast struct {
	S []float64
	T []float64
	P []float64
}

// NGood returns the number of leading non-NaN samples, scanning S.
// Valid data on a cast is exactly S[:n], T[:n], P[:n].
func (c Cast) NGood() int {
	for i, v := range c.S {
		if math.IsNaN(v) {
			return i
		}
	}
	return len(c.S)
}

// Len returns the total number of levels, including missing ones.
func (c Cast) Len() int { return len(c.P) }

// Bottom returns the deepest valid pressure, or NaN for an empty cast.
func (c Cast) Bottom() float64 {
	n := c.NGood()
	if n == 0 {
		return math.NaN()
	}
	return c.P[n-1]
}

// Trajectory holds one bottle per cast of a section. After the neutral
// path incrops or outcrops, the remaining entries are missing.
type Trajectory []Bottle

// NConnected returns the length of the leading run of valid bottles.
func (tr Trajectory) NConnected() int {
	for i, b := range tr {
		if !b.Valid() {
			return i
		}
	}
	return len(tr)
}

// Pressures returns the pressure of each bottle, NaN where missing.
func (tr Trajectory) Pressures() []float64 {
	p := make([]float64, len(tr))
	for i, b := range tr {
		p[i] = b.P
	}
	return p
}

// Salinities returns the salinity of each bottle, NaN where missing.
func (tr Trajectory) Salinities() []float64 {
	s := make([]float64, len(tr))
	for i, b := range tr {
		s[i] = b.S
	}
	return s
}

// Temperatures returns the temperature of each bottle, NaN where missing.
func (tr Trajectory) Temperatures() []float64 {
	t := make([]float64, len(tr))
	for i, b := range tr {
		t[i] = b.T
	}
	return t
}
