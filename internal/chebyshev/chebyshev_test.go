package chebyshev

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestNodes_EndpointsMapCorrectly(t *testing.T) {
	x := Nodes(2, 8)
	if !almostEqual(x[0], 8, 1e-12) {
		t.Fatalf("x[0] = %v, want 8 (cos(0)=1)", x[0])
	}
	if !almostEqual(x[N-1], 2, 1e-12) {
		t.Fatalf("x[N-1] = %v, want 2 (cos(pi)=-1)", x[N-1])
	}
}

func TestCoefficients_ConstantFunction(t *testing.T) {
	var samples [N]float64
	for i := range samples {
		samples[i] = 3.0
	}
	coeffs := Coefficients(samples)
	if !almostEqual(coeffs[0], 3.0, 1e-9) {
		t.Fatalf("c0 = %v, want 3 for a constant function", coeffs[0])
	}
	for k := 1; k < N; k++ {
		if math.Abs(coeffs[k]) > 1e-9 {
			t.Fatalf("c%d = %v, want ~0 for a constant function", k, coeffs[k])
		}
	}
}

func TestCoefficients_LinearTermOfT1(t *testing.T) {
	// f(x) = x on [-1,1] is exactly T_1; its Chebyshev series should
	// have c1 = 1 and all other coefficients ~0.
	samples := Sample(func(x float64) float64 { return x }, -1, 1)
	coeffs := Coefficients(samples)
	if !almostEqual(coeffs[1], 1.0, 1e-9) {
		t.Fatalf("c1 = %v, want 1", coeffs[1])
	}
	if math.Abs(coeffs[0]) > 1e-9 {
		t.Fatalf("c0 = %v, want ~0", coeffs[0])
	}
}

func TestApply_ReducesToDotProduct(t *testing.T) {
	var coeffs, moments [N]float64
	coeffs[0], coeffs[1] = 2, 3
	moments[0], moments[1] = 5, 7
	got := Apply(coeffs, moments)
	want := 2*5 + 3*7.0
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}
