package eos

import (
	"errors"
	"math"
	"testing"

	"github.com/okean-lab/ntraj/internal/ocean"
)

func TestJMD95SurfaceDensity(t *testing.T) {
	// Standard seawater at the surface sits close to 1028 kg/m3.
	rho := JMD95(35.0, 10.0, 0.0)

	if rho < 1020 || rho > 1030 {
		t.Errorf("surface density out of range: got %.4f", rho)
	}

	// Fresh water at 4C, atmospheric pressure: near maximum density.
	rhoFw := JMD95(0.0, 4.0, 0.0)
	if math.Abs(rhoFw-1000.0) > 0.5 {
		t.Errorf("fresh water density: got %.4f, expected ~1000", rhoFw)
	}
}

func TestJMD95Monotonicity(t *testing.T) {
	// Density increases with salinity and pressure, decreases with
	// temperature over oceanic ranges.
	rho := JMD95(35.0, 10.0, 1000.0)

	if JMD95(36.0, 10.0, 1000.0) <= rho {
		t.Error("density should increase with salinity")
	}
	if JMD95(35.0, 12.0, 1000.0) >= rho {
		t.Error("density should decrease with temperature")
	}
	if JMD95(35.0, 10.0, 2000.0) <= rho {
		t.Error("density should increase with pressure")
	}
}

func TestJMD95Compressibility(t *testing.T) {
	// Roughly 4-5 kg/m3 of compression per 1000 dbar.
	surface := JMD95(35.0, 2.0, 0.0)
	deep := JMD95(35.0, 2.0, 5000.0)

	gain := deep - surface
	if gain < 15 || gain > 30 {
		t.Errorf("compression over 5000 dbar: got %.4f kg/m3", gain)
	}
}

func TestMakeUnknownName(t *testing.T) {
	_, err := Make("gsw2049", 0, 0)
	if !errors.Is(err, ocean.ErrUnknownEOS) {
		t.Errorf("expected ErrUnknownEOS, got %v", err)
	}
}

func TestMakeBoussinesqPair(t *testing.T) {
	if _, err := Make("jmd95", 9.81, 0); !errors.Is(err, ocean.ErrBoussinesqPair) {
		t.Errorf("expected ErrBoussinesqPair with grav only, got %v", err)
	}
	if _, err := Make("jmd95", 0, 1027.5); !errors.Is(err, ocean.ErrBoussinesqPair) {
		t.Errorf("expected ErrBoussinesqPair with rhoC only, got %v", err)
	}
	if _, err := Make("jmd95", 9.81, 1027.5); err != nil {
		t.Errorf("expected full pair to succeed, got %v", err)
	}
}

func TestBoussinesqDepthConversion(t *testing.T) {
	grav, rhoC := 9.81, 1027.5
	f, err := Make("jmd95", grav, rhoC)
	if err != nil {
		t.Fatal(err)
	}

	z := 1500.0
	p := 1e-4 * grav * rhoC * z

	got := f(35.0, 5.0, z)
	want := JMD95(35.0, 5.0, p)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("depth-based eos: got %.8f, want %.8f", got, want)
	}
}

func TestLinearEOS(t *testing.T) {
	f := Linear()

	// Pressure-independent by construction.
	if f(35, 10, 0) != f(35, 10, 4000) {
		t.Error("linear eos should ignore pressure")
	}

	// Reference point.
	if math.Abs(f(35, 10, 0)-1027.0) > 1e-9 {
		t.Errorf("reference density: got %.6f", f(35, 10, 0))
	}

	if f(35, 11, 0) >= f(35, 10, 0) {
		t.Error("density should decrease with temperature")
	}
	if f(36, 10, 0) <= f(35, 10, 0) {
		t.Error("density should increase with salinity")
	}
}
