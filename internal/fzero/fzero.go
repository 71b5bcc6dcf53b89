package fzero

import (
	"math"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// MaxIter caps Brent iterations. Well-posed problems converge in far
// fewer; on exhaustion Brent returns its current best estimate.
const MaxIter = 100

// GuessToBounds searches for a sign change of f, expanding an interval
// geometrically outward from guess and clamping to the domain [lo, hi].
// It returns (a, b) with f(a) and f(b) of opposite sign, or (NaN, NaN)
// when f has the same sign throughout the domain. The guess is clamped
// into [lo, hi] and f is never evaluated outside the domain.
func GuessToBounds(f func(float64) float64, guess, lo, hi float64) (float64, float64) {
	guess = math.Min(math.Max(guess, lo), hi)

	dxm := (guess - lo) / 50
	dxp := (hi - guess) / 50

	a, b := guess, guess
	fa := f(guess) > 0
	fb := fa

	for {
		moved := false
		if a > lo {
			dxm *= math.Sqrt2
			a = math.Max(guess-dxm, lo)
			fa = f(a) > 0
			moved = true
			if fa != fb {
				return a, b
			}
		}
		if b < hi {
			dxp *= math.Sqrt2
			b = math.Min(guess+dxp, hi)
			fb = f(b) > 0
			moved = true
			if fa != fb {
				return a, b
			}
		}
		if !moved {
			return math.NaN(), math.NaN()
		}
	}
}

// Brent finds a root of f in [a, b] to within tol, combining bisection,
// secant, and inverse quadratic interpolation. f(a) and f(b) must have
// opposite signs; same-signed endpoints are caller misuse and return
// ocean.ErrBadBracket immediately.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	fa := f(a)
	fb := f(b)
	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return math.NaN(), ocean.ErrBadBracket
	}

	c, fc := b, fb
	var d, e float64

	for i := 0; i < MaxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*machEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation: secant when a == c, inverse
			// quadratic otherwise.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				// Interpolation rejected; fall back to bisection.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}

	return b, nil
}

const machEps = 2.220446049250313e-16
