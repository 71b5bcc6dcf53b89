// Package fzero provides scalar root finding: a guess-centered bracket
// search and Brent's method.
//
// Both routines are generic over a function of one float64 returning one
// float64 and hold no state; bind any context (a bottle, a cast, an
// equation of state) into the closure before calling.
package fzero
