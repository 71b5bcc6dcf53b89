package section

import (
	"fmt"
	"math"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// Params controls synthetic section generation. Vertical profiles decay
// exponentially from surface to deep values over the thermocline scale;
// along the section the surface warms linearly, which tilts the neutral
// surfaces and gives trajectories something to do.
type Params struct {
	Casts  int
	Levels int

	MaxP float64 // pressure of the deepest level [dbar]

	TSurf, TDeep float64 // temperature endpoints [deg C]
	SSurf, SDeep float64 // salinity endpoints

	Scale float64 // thermocline e-folding scale [dbar]

	WarmPerCast float64 // surface warming per cast along the section

	// Shoal is the fraction of the water column removed by the last
	// cast; the seafloor rises linearly. Levels below the floor are NaN.
	Shoal float64
}

// Preset returns the generation parameters for a named synthetic regime.
func Preset(name string) (Params, error) {
	switch name {
	case "subtropical":
		return Params{
			Casts: 40, Levels: 50, MaxP: 4000,
			TSurf: 22, TDeep: 2, SSurf: 36.2, SDeep: 34.7,
			Scale: 600, WarmPerCast: 0.08,
		}, nil
	case "polar":
		return Params{
			Casts: 30, Levels: 40, MaxP: 2500,
			TSurf: 4, TDeep: -0.5, SSurf: 33.8, SDeep: 34.9,
			Scale: 300, WarmPerCast: 0.05,
		}, nil
	case "shoaling":
		return Params{
			Casts: 30, Levels: 60, MaxP: 4000,
			TSurf: 20, TDeep: 2, SSurf: 36.0, SDeep: 34.7,
			Scale: 600, WarmPerCast: 0.05, Shoal: 0.8,
		}, nil
	default:
		return Params{}, fmt.Errorf("section: unknown preset %q", name)
	}
}

// Generate builds the casts for p. All casts share one pressure grid;
// shoaling is expressed by NaN tails.
func Generate(p Params) []ocean.Cast {
	casts := make([]ocean.Cast, p.Casts)
	nan := math.NaN()

	for j := 0; j < p.Casts; j++ {
		c := ocean.Cast{
			S: make([]float64, p.Levels),
			T: make([]float64, p.Levels),
			P: make([]float64, p.Levels),
		}

		floor := p.MaxP
		if p.Shoal > 0 && p.Casts > 1 {
			floor = p.MaxP * (1 - p.Shoal*float64(j)/float64(p.Casts-1))
		}
		warm := p.WarmPerCast * float64(j)

		for i := 0; i < p.Levels; i++ {
			press := p.MaxP * float64(i) / float64(p.Levels-1)
			c.P[i] = press
			if press > floor {
				c.S[i] = nan
				c.T[i] = nan
				continue
			}
			decay := math.Exp(-press / p.Scale)
			// Warming fades with depth: the deep ocean is the same
			// everywhere along the section.
			c.T[i] = p.TDeep + (p.TSurf-p.TDeep+warm)*decay
			c.S[i] = p.SDeep + (p.SSurf-p.SDeep)*decay
		}
		casts[j] = c
	}

	return casts
}
