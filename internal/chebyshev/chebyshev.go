// Package chebyshev computes the 25-term Chebyshev series of a
// function sampled at the Clenshaw-Curtis nodes — the
// common substrate QC25C (Cauchy), QC25S (algebraic-logarithmic), and
// QC25F (oscillatory) build their modified-moment integrators on.
//
// The 25-point transform does not map onto a power-of-two FFT size, so
// it is computed by direct type-I DCT summation rather than via
// algo-fft (see DESIGN.md); the elementwise reduction itself is done
// with algo-vecmath's DotProduct, the same way dsp/filter/fir sums its
// tap products.
package chebyshev

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// N is the number of Clenshaw-Curtis nodes (and Chebyshev
// coefficients) used by the QC25 family.
const N = 25

// Nodes returns the 25 Clenshaw-Curtis abscissae x_k = cos(πk/24),
// k=0..24, mapped from [-1,1] onto [a,b].
func Nodes(a, b float64) [N]float64 {
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)

	var x [N]float64
	for k := 0; k < N; k++ {
		x[k] = center + halfLength*math.Cos(math.Pi*float64(k)/float64(N-1))
	}
	return x
}

// cosBasis[k][j] = cos(k*j*π/24), the fixed DCT basis shared by every
// Coefficients call.
var cosBasis = buildCosBasis()

func buildCosBasis() [N][N]float64 {
	var rows [N][N]float64
	for k := 0; k < N; k++ {
		for j := 0; j < N; j++ {
			rows[k][j] = math.Cos(math.Pi * float64(k*j) / float64(N-1))
		}
	}
	return rows
}

// Coefficients computes the 25-term Chebyshev coefficient vector of a
// function sampled at Nodes(a,b), via the classical type-I DCT
// summation: c_k = w_k · Σ''_j samples[j]·cos(kjπ/24), with half weight
// at the j=0 and j=24 endpoints.
func Coefficients(samples [N]float64) [N]float64 {
	weighted := samples
	weighted[0] *= 0.5
	weighted[N-1] *= 0.5

	var coeffs [N]float64
	for k := 0; k < N; k++ {
		sum := vecmath.DotProduct(cosBasis[k][:], weighted[:])
		w := 2.0 / float64(N-1)
		if k == 0 || k == N-1 {
			w = 1.0 / float64(N-1)
		}
		coeffs[k] = w * sum
	}
	return coeffs
}

// Apply evaluates the modified-moment inner product Σ_k coeffs[k]·moments[k],
// the contraction every QC25-family integrator performs once it has a
// Chebyshev series and a weight's precomputed moment vector.
func Apply(coeffs, moments [N]float64) float64 {
	return vecmath.DotProduct(coeffs[:], moments[:])
}

// Sample evaluates f at the 25 Clenshaw-Curtis nodes of [a,b].
func Sample(f func(float64) float64, a, b float64) [N]float64 {
	nodes := Nodes(a, b)
	var samples [N]float64
	for i, x := range nodes {
		samples[i] = f(x)
	}
	return samples
}
