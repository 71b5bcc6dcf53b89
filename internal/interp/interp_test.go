package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/okean-lab/ntraj/internal/ocean"
)

func TestLinearAtNodes(t *testing.T) {
	P := []float64{0, 100, 200, 300}
	S := []float64{34, 34.5, 35, 35.5}
	T := []float64{18, 12, 8, 5}

	for i := range P {
		s, tt := Linear(P[i], P, S, T)
		if s != S[i] || tt != T[i] {
			t.Errorf("node %d: got (%.4f, %.4f), want (%.4f, %.4f)", i, s, tt, S[i], T[i])
		}
	}
}

func TestLinearMidpoint(t *testing.T) {
	P := []float64{0, 100}
	S := []float64{34, 36}
	T := []float64{20, 10}

	s, tt := Linear(50, P, S, T)
	if math.Abs(s-35) > 1e-12 {
		t.Errorf("salinity at midpoint: got %.6f, want 35", s)
	}
	if math.Abs(tt-15) > 1e-12 {
		t.Errorf("temperature at midpoint: got %.6f, want 15", tt)
	}
}

func TestLinearOutOfRange(t *testing.T) {
	P := []float64{0, 100, 200}
	S := []float64{34, 35, 36}
	T := []float64{18, 12, 8}

	for _, p := range []float64{-1, 200.001, math.NaN()} {
		s, tt := Linear(p, P, S, T)
		if !math.IsNaN(s) || !math.IsNaN(tt) {
			t.Errorf("p=%v: expected NaN, got (%.4f, %.4f)", p, s, tt)
		}
	}
}

func TestLinearEndpointsInclusive(t *testing.T) {
	P := []float64{10, 50}
	S := []float64{34, 35}
	T := []float64{15, 10}

	s, _ := Linear(10, P, S, T)
	if s != 34 {
		t.Errorf("lower endpoint: got %.4f", s)
	}
	s, _ = Linear(50, P, S, T)
	if s != 35 {
		t.Errorf("upper endpoint: got %.4f", s)
	}
}

func TestPCHIPAtNodes(t *testing.T) {
	P := []float64{0, 50, 150, 300, 500}
	S := []float64{34, 34.4, 34.9, 35.1, 35.2}
	T := []float64{18, 15, 9, 5, 3}

	for i := range P {
		s, tt := PCHIP(P[i], P, S, T)
		if math.Abs(s-S[i]) > 1e-12 || math.Abs(tt-T[i]) > 1e-12 {
			t.Errorf("node %d: got (%.6f, %.6f), want (%.4f, %.4f)", i, s, tt, S[i], T[i])
		}
	}
}

func TestPCHIPReproducesLinearData(t *testing.T) {
	// On exactly linear data the shape-preserving interpolant is linear.
	P := []float64{0, 100, 200, 300}
	S := []float64{34, 34.5, 35, 35.5}
	T := []float64{18, 16, 14, 12}

	for _, p := range []float64{25, 50, 130, 250} {
		s, tt := PCHIP(p, P, S, T)
		ls, lt := Linear(p, P, S, T)
		if math.Abs(s-ls) > 1e-10 || math.Abs(tt-lt) > 1e-10 {
			t.Errorf("p=%.0f: pchip (%.8f, %.8f) vs linear (%.8f, %.8f)", p, s, tt, ls, lt)
		}
	}
}

func TestPCHIPMonotone(t *testing.T) {
	// Monotone data must stay monotone between nodes (no overshoot).
	P := []float64{0, 10, 20, 100, 110}
	T := []float64{20, 19.5, 19, 4, 3.8}
	S := []float64{34, 34, 34, 34, 34}

	prev := math.Inf(1)
	for p := 0.0; p <= 110; p += 0.5 {
		_, tt := PCHIP(p, P, S, T)
		if tt > prev+1e-12 {
			t.Fatalf("overshoot at p=%.1f: %.6f > %.6f", p, tt, prev)
		}
		prev = tt
	}
}

func TestPCHIPOutOfRange(t *testing.T) {
	P := []float64{0, 100, 200}
	S := []float64{34, 35, 36}
	T := []float64{18, 12, 8}

	s, tt := PCHIP(-5, P, S, T)
	if !math.IsNaN(s) || !math.IsNaN(tt) {
		t.Errorf("expected NaN below range, got (%.4f, %.4f)", s, tt)
	}
}

func TestPCHIPTwoPoints(t *testing.T) {
	// Two samples degenerate to the straight line.
	P := []float64{0, 100}
	S := []float64{34, 36}
	T := []float64{20, 10}

	s, tt := PCHIP(25, P, S, T)
	if math.Abs(s-34.5) > 1e-12 || math.Abs(tt-17.5) > 1e-12 {
		t.Errorf("got (%.6f, %.6f), want (34.5, 17.5)", s, tt)
	}
}

func TestMake(t *testing.T) {
	if _, err := Make("linear"); err != nil {
		t.Errorf("linear: %v", err)
	}
	if _, err := Make("pchip"); err != nil {
		t.Errorf("pchip: %v", err)
	}
	if _, err := Make("akima"); !errors.Is(err, ocean.ErrUnknownInterp) {
		t.Error("expected ErrUnknownInterp for unregistered method")
	}
}
