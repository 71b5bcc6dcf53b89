package ntp

import (
	"math"

	"github.com/okean-lab/ntraj/internal/eos"
	"github.com/okean-lab/ntraj/internal/fzero"
	"github.com/okean-lab/ntraj/internal/interp"
	"github.com/okean-lab/ntraj/internal/ocean"
)

// DefaultTolP is the root-finding tolerance in pressure units.
const DefaultTolP = 1e-4

// Options selects the equation of state, the vertical interpolant, and
// the pressure tolerance for a connection. The zero value means JMD95,
// linear interpolation, and DefaultTolP.
type Options struct {
	EOS    eos.Func
	Interp interp.Func
	TolP   float64
}

func (o Options) normalize() Options {
	if o.EOS == nil {
		o.EOS = eos.JMD95
	}
	if o.Interp == nil {
		o.Interp = interp.Linear
	}
	if o.TolP <= 0 {
		o.TolP = DefaultTolP
	}
	return o
}

// objective binds everything the root finder's scalar function needs:
// the bottle, the cast's valid data, and the two numeric callables.
type objective struct {
	bottle  ocean.Bottle
	S, T, P []float64
	eos     eos.Func
	interp  interp.Func
}

// eval is the connection objective at trial pressure p: the density
// difference between the bottle and the cast point at p, both evaluated
// at their average pressure. Interpolation failure (p out of the cast's
// domain) propagates as NaN.
func (o *objective) eval(p float64) float64 {
	s, t := o.interp(p, o.P, o.S, o.T)
	pAvg := 0.5 * (o.bottle.P + p)
	return o.eos(o.bottle.S, o.bottle.T, pAvg) - o.eos(s, t, pAvg)
}

// BottleToCast finds the point on cast c neutrally related to bottle b.
// The missing bottle is returned when the cast has fewer than two valid
// samples or when the neutral surface incrops or outcrops on this cast;
// the two cases are deliberately indistinguishable to the caller.
func BottleToCast(b ocean.Bottle, c ocean.Cast, opt Options) ocean.Bottle {
	opt = opt.normalize()

	n := c.NGood()
	if n <= 1 {
		return ocean.MissingBottle()
	}

	obj := objective{
		bottle: b,
		S:      c.S[:n],
		T:      c.T[:n],
		P:      c.P[:n],
		eos:    opt.EOS,
		interp: opt.Interp,
	}

	lb, ub := fzero.GuessToBounds(obj.eval, b.P, c.P[0], c.P[n-1])
	if math.IsNaN(lb) {
		return ocean.MissingBottle()
	}

	p, err := fzero.Brent(obj.eval, lb, ub, opt.TolP)
	if err != nil {
		// GuessToBounds established the sign change, so Brent cannot
		// reject the bracket.
		return ocean.MissingBottle()
	}

	s, t := opt.Interp(p, obj.P, obj.S, obj.T)
	return ocean.Bottle{S: s, T: t, P: p}
}

// Trajectory chains neutral connections across casts, starting on the
// first cast at pressure p0. The starting bottle is synthesized by
// interpolating the first cast at p0 and recorded as entry 0; each later
// entry is the connection from the previous one. The result always has
// one entry per cast; entries after the chain breaks are missing.
func Trajectory(casts []ocean.Cast, p0 float64, opt Options) ocean.Trajectory {
	opt = opt.normalize()

	tr := missingTrajectory(len(casts))
	if len(casts) == 0 {
		return tr
	}

	c0 := casts[0]
	n := c0.NGood()
	if n == 0 {
		return tr
	}
	s0, t0 := opt.Interp(p0, c0.P[:n], c0.S[:n], c0.T[:n])
	b0 := ocean.Bottle{S: s0, T: t0, P: p0}
	if !b0.Valid() {
		return tr
	}
	tr[0] = b0

	chain(tr, casts, opt)
	return tr
}

// TrajectoryFrom chains neutral connections across casts starting from
// an explicit bottle, recorded directly as entry 0 without interpolating
// it from the first cast. Use this to pin a trajectory to a measured
// bottle that need not lie on any cast.
func TrajectoryFrom(b0 ocean.Bottle, casts []ocean.Cast, opt Options) ocean.Trajectory {
	opt = opt.normalize()

	tr := missingTrajectory(len(casts))
	if len(casts) == 0 || !b0.Valid() {
		return tr
	}
	tr[0] = b0

	chain(tr, casts, opt)
	return tr
}

// chain connects tr[i-1] to casts[i] for i = 1..len-1, stopping at the
// first missing result. A broken neutral path cannot be resumed without
// a new pinning point, which is out of scope here.
func chain(tr ocean.Trajectory, casts []ocean.Cast, opt Options) {
	for i := 1; i < len(casts); i++ {
		b := BottleToCast(tr[i-1], casts[i], opt)
		if !b.Valid() {
			break
		}
		tr[i] = b
	}
}

func missingTrajectory(n int) ocean.Trajectory {
	tr := make(ocean.Trajectory, n)
	for i := range tr {
		tr[i] = ocean.MissingBottle()
	}
	return tr
}
