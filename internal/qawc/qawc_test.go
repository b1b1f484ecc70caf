package qawc

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-quad/internal/status"
)

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestIntegrate_PointOutsideInterval(t *testing.T) {
	_, _, _, err := Integrate(math.Sin, 0, 1, 2, 1e-8, 1e-8, 1024)
	if err != ErrPointOutsideInterval {
		t.Fatalf("err = %v, want ErrPointOutsideInterval", err)
	}
}

func TestIntegrate_CauchyPrincipalValueScenario(t *testing.T) {
	// P∫_{-1}^{5} 1/(x-0.5) dx ≈ -0.08994400695837 (spec.md §8).
	f := func(float64) float64 { return 1 }
	result, abserr, st, err := Integrate(f, -1, 5, 0.5, 0, 1e-3, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != status.OK {
		t.Fatalf("status = %v (result=%v abserr=%v)", st, result, abserr)
	}
	if math.Abs(result-(-0.08994400695837)) > 1e-5 {
		t.Fatalf("result = %v, want approximately -0.08994400695837", result)
	}
}

func TestCauchyMoments_M0MatchesClosedForm(t *testing.T) {
	m := cauchyMoments(0.25)
	want := math.Log(math.Abs((1 - 0.25) / (1 + 0.25)))
	if !almostEqual(m[0], want, 1e-12) {
		t.Fatalf("m[0] = %v, want %v", m[0], want)
	}
}
