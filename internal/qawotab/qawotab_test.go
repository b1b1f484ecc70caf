package qawotab

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-quad/internal/chebyshev"
	"github.com/cwbudde/algo-quad/internal/kronrod"
)

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// directMoments integrates T_k(u)*f(u) over [-1,1] with Kronrod-61,
// independently of momentsAt, as the reference for what a modified
// Chebyshev moment actually is.
func directMoments(f func(float64) float64) [chebyshev.N]float64 {
	var m [chebyshev.N]float64
	for k := 0; k < chebyshev.N; k++ {
		k := k
		integrand := func(u float64) float64 {
			uc := u
			if uc < -1 {
				uc = -1
			} else if uc > 1 {
				uc = 1
			}
			return math.Cos(float64(k)*math.Acos(uc)) * f(u)
		}
		m[k] = kronrod.Evaluate(integrand, -1, 1, kronrod.Table61).Result
	}
	return m
}

func TestMoments_ZeroCenterMatchesDirectMomentIntegration(t *testing.T) {
	omega := 2.0
	length := 1.0
	tbl := New(omega, length, Cosine)
	moments, ok := tbl.Moments(length, 0)
	if !ok {
		t.Fatal("Moments should be in range at the base level")
	}
	want := directMoments(func(u float64) float64 {
		return math.Cos(omega * length * u)
	})
	for i := range moments {
		if !almostEqual(moments[i], want[i], 1e-8) {
			t.Fatalf("moments[%d] = %v, want %v", i, moments[i], want[i])
		}
	}
}

func TestMoments_OutOfRangeReportsFalse(t *testing.T) {
	tbl := New(1.0, 1.0, Sine)
	if _, ok := tbl.Moments(10, 0); ok {
		t.Fatal("a half-length larger than the base should be out of range")
	}
	if _, ok := tbl.Moments(-1, 0); ok {
		t.Fatal("a negative half-length should be out of range")
	}
}

func TestMoments_PhaseShiftMatchesDirectMomentIntegration(t *testing.T) {
	// For a nonzero center, the sine moments should match direct
	// numerical integration of T_k(u)*sin(omega*(center+halfLength*u))
	// against u, not the halfLength-only moments.
	omega, halfLength, center := 3.0, 0.5, 1.25
	tbl := New(omega, halfLength, Sine)
	moments, ok := tbl.Moments(halfLength, center)
	if !ok {
		t.Fatal("expected in-range moments")
	}
	want := directMoments(func(u float64) float64 {
		return math.Sin(omega * (center + halfLength*u))
	})
	for i := range moments {
		if !almostEqual(moments[i], want[i], 1e-8) {
			t.Fatalf("moments[%d] = %v, want %v (phase-shifted)", i, moments[i], want[i])
		}
	}
}

// TestMoments_DisagreesWithInterpolationCoefficients pins the bug this
// package used to have: sampling cos/sin at the Clenshaw-Curtis nodes
// and Chebyshev-transforming the samples gives the interpolation
// coefficients of the trig factor, not its moment against T_k. The two
// are close only when omega*halfLength is small; at a value large
// enough to separate them, momentsAt must not match that quantity.
func TestMoments_DisagreesWithInterpolationCoefficients(t *testing.T) {
	omega, halfLength := 12.0, 1.0
	tbl := New(omega, halfLength, Cosine)
	moments, ok := tbl.Moments(halfLength, 0)
	if !ok {
		t.Fatal("expected in-range moments")
	}
	interpCoeffs := chebyshev.Coefficients(chebyshev.Sample(func(u float64) float64 {
		return math.Cos(omega * halfLength * u)
	}, -1, 1))

	differs := false
	for i := range moments {
		if math.Abs(moments[i]-interpCoeffs[i]) > 1e-3 {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("moments should not match the interpolation coefficients at this omega*halfLength")
	}
}
