// Package cquadrule implements the nested Clenshaw-Curtis rule family
// CQUAD promotes through: 5, 9, 17, and 33 nodes, each
// level's nodes a subset of the next. Samples are not carried over
// between levels: when a sub-interval escalates, f is evaluated again
// at every node of the new level.
//
// Each level's Chebyshev coefficients are obtained from its node
// samples via the even-extension DFT trick (mirror the n+1 samples
// into a real sequence of length 2n and take a complex FFT of that
// size), using algo-fft's power-of-two plans the way
// dsp/conv/overlap_save.go uses them for convolution — here the "FFT
// size" is one of {8,16,32,64} rather than a convolution block size.
package cquadrule

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Level identifies one of the four nested rules by its node count.
type Level int

const (
	Level5 Level = iota
	Level9
	Level17
	Level33
)

// nodeCount returns n+1, the number of nodes (and Chebyshev
// coefficients) at a level.
func nodeCount(l Level) int {
	switch l {
	case Level5:
		return 5
	case Level9:
		return 9
	case Level17:
		return 17
	case Level33:
		return 33
	default:
		panic("cquadrule: invalid level")
	}
}

// fftSize returns the even-extension FFT size 2n for a level of n+1
// nodes, always a power of two in {8,16,32,64}.
func fftSize(l Level) int {
	return 2 * (nodeCount(l) - 1)
}

// Next returns the next-finer level and whether one exists.
func (l Level) Next() (Level, bool) {
	switch l {
	case Level5:
		return Level9, true
	case Level9:
		return Level17, true
	case Level17:
		return Level33, true
	default:
		return Level33, false
	}
}

// N returns the node count n+1 for the level.
func (l Level) N() int { return nodeCount(l) }

// Nodes returns the n+1 Clenshaw-Curtis abscissae x_k = cos(kπ/n),
// k=0..n, mapped onto [a,b].
func Nodes(l Level, a, b float64) []float64 {
	n := nodeCount(l) - 1
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)
	x := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		x[k] = center + halfLength*math.Cos(math.Pi*float64(k)/float64(n))
	}
	return x
}

// planCache memoizes one algo-fft plan per power-of-two size so that
// repeated Coefficients calls at the same level don't rebuild it.
var planCache = map[int]*algofft.Plan[complex128]{}

func planFor(size int) (*algofft.Plan[complex128], error) {
	if p, ok := planCache[size]; ok {
		return p, nil
	}
	p, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("cquadrule: failed to create FFT plan of size %d: %w", size, err)
	}
	planCache[size] = p
	return p, nil
}

// Coefficients computes the n+1 Chebyshev coefficients of a function
// sampled at Nodes(l,...) using the even-extension DFT: the n+1
// samples are mirrored into a real sequence of length 2n, transformed
// with an algo-fft plan of that size, and the real part of the first
// n+1 DFT bins gives the Chebyshev coefficients in a doubled
// convention: every entry is twice the matching coefficient of the
// interpolating series f(u) = Σ a_k T_k(u), so a constant c yields
// coeffs[0] = 2c.
func Coefficients(l Level, samples []float64) ([]float64, error) {
	n := nodeCount(l) - 1
	size := fftSize(l)

	ext := make([]complex128, size)
	for k := 0; k <= n; k++ {
		ext[k] = complex(samples[k], 0)
	}
	for k := 1; k < n; k++ {
		ext[size-k] = complex(samples[k], 0)
	}

	plan, err := planFor(size)
	if err != nil {
		return nil, err
	}

	spec := make([]complex128, size)
	if err := plan.Forward(spec, ext); err != nil {
		return nil, fmt.Errorf("cquadrule: forward transform failed: %w", err)
	}

	coeffs := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		w := 2.0 / float64(n)
		if k == 0 || k == n {
			w = 1.0 / float64(n)
		}
		coeffs[k] = w * real(spec[k])
	}
	return coeffs, nil
}

// Downdate strips the leading (highest-order) coefficient from a
// finer level's coefficient vector, the operation CQUAD performs when
// a sub-interval's error estimate is dominated by round-off rather
// than truncation: the downdated rule drops its top coefficient and
// reuses the rest.
func Downdate(coeffs []float64) []float64 {
	if len(coeffs) == 0 {
		return coeffs
	}
	return coeffs[:len(coeffs)-1]
}

// Integrate evaluates ∫_{-1}^{1} p(u) du for the polynomial p whose
// Chebyshev series is given by coeffs (in this package's doubled
// convention, see Coefficients), using ∫T_k(u)du = 0 for odd k and
// -2/(k²-1) for even k≥2, folded into the doubled coefficients as
// -1/(k²-1). Odd-order terms integrate away on the symmetric reference
// interval, so only the even-indexed coefficients contribute beyond
// coeffs[0].
func Integrate(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	sum := coeffs[0]
	for k := 2; k < len(coeffs); k += 2 {
		sum -= coeffs[k] / float64(k*k-1)
	}
	return sum
}
