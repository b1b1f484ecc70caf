// Package qawotab builds the Chebyshev moment pyramid QAWO's engine
// consumes: modified moments of sin(ωx) and cos(ωx)
// against the 25-point Clenshaw-Curtis basis, precomputed at a ladder
// of half-lengths L, L/2, L/4, ... so that repeated bisection of an
// oscillatory sub-interval can look up its moments instead of
// recomputing them from scratch, mirroring QUADPACK's dqwgtf chebmo
// table.
package qawotab

import (
	"math"

	"github.com/cwbudde/algo-quad/internal/chebyshev"
	"github.com/cwbudde/algo-quad/internal/kronrod"
)

// Depth is the number of precomputed half-length levels. Level d
// corresponds to a sub-interval half-length of L/2^d; beyond Depth,
// the oscillation has been bisected enough times that a direct
// Kronrod fallback is cheaper and just as accurate, so QAWO falls back
// to Gauss-Kronrod once the table is exhausted.
const Depth = 25

// Kind selects which oscillatory weight the moments are built for.
type Kind int

const (
	Sine Kind = iota
	Cosine
)

// level holds the Chebyshev moments of cos(ω·halfLength·u) and
// sin(ω·halfLength·u) against T_k(u), k=0..24, for one half-length.
// Both are kept regardless of the table's requested Kind: a
// sub-interval's reference variable u is centered on the
// sub-interval's own midpoint, not on x=0, so recovering the moments
// of sin(ωx) or cos(ωx) on that sub-interval needs the angle-addition
// combination of both (see Table.Combine).
type level struct {
	cos, sin [chebyshev.N]float64
}

// Table holds, for one (ω, L) combination, the precomputed moment
// pyramid at each half-length level plus the weight Kind QAWO was
// asked to integrate.
type Table struct {
	Omega          float64
	Kind           Kind
	baseHalfLength float64
	levels         [Depth]level
}

// New builds the moment pyramid for angular frequency ω, Kind k, and
// base half-length L (the half-length of the outermost sub-interval
// QAWO will ever evaluate).
func New(omega, length float64, k Kind) *Table {
	t := &Table{Omega: omega, Kind: k, baseHalfLength: length}
	halfLength := length
	for d := 0; d < Depth; d++ {
		t.levels[d] = momentsAt(omega, halfLength)
		halfLength *= 0.5
	}
	return t
}

// Moments returns the Chebyshev moments of the table's Kind weight
// (sin(ωx) or cos(ωx)) on a sub-interval with the given half-length and
// center, combining the precomputed cos/sin-of-(ω·halfLength·u) levels
// by the angle-addition identity
//
//	sin(ω(center+halfLength·u)) = sin(ωc)·cos(ωhu) + cos(ωc)·sin(ωhu)
//	cos(ω(center+halfLength·u)) = cos(ωc)·cos(ωhu) - sin(ωc)·sin(ωhu)
//
// It reports whether the half-length fell within the precomputed
// ladder (choosing the closest level).
func (t *Table) Moments(halfLength, center float64) (moments [chebyshev.N]float64, ok bool) {
	if t.baseHalfLength <= 0 || halfLength <= 0 {
		return moments, false
	}
	ratio := t.baseHalfLength / halfLength
	if ratio < 1 {
		return moments, false
	}
	d := int(math.Round(math.Log2(ratio)))
	if d < 0 || d >= Depth {
		return moments, false
	}

	lvl := t.levels[d]
	phase := t.Omega * center
	sinC, cosC := math.Sin(phase), math.Cos(phase)
	for i := 0; i < chebyshev.N; i++ {
		if t.Kind == Sine {
			moments[i] = sinC*lvl.cos[i] + cosC*lvl.sin[i]
		} else {
			moments[i] = cosC*lvl.cos[i] - sinC*lvl.sin[i]
		}
	}
	return moments, true
}

func chebyshevT(k int, u float64) float64 {
	if u < -1 {
		u = -1
	} else if u > 1 {
		u = 1
	}
	return math.Cos(float64(k) * math.Acos(u))
}

// momentsAt computes m_k = ∫_{-1}^{1} T_k(u)·cos(ω·halfLength·u) du and
// the analogous sine moments, k=0..24, by direct numerical integration
// of each defining integral against the package's own Kronrod-61 rule
// — the same technique qawstab.momentVector uses for the algebraic-
// logarithmic weight's moments. Sampling cos/sin at the Clenshaw-Curtis
// nodes and Chebyshev-transforming the result would give the
// interpolation coefficients of the trig factor itself, not its moment
// against T_k; the two agree only in the limit of vanishing ωh.
func momentsAt(omega, halfLength float64) level {
	var lvl level
	for k := 0; k < chebyshev.N; k++ {
		k := k
		cosIntegrand := func(u float64) float64 {
			return chebyshevT(k, u) * math.Cos(omega*halfLength*u)
		}
		sinIntegrand := func(u float64) float64 {
			return chebyshevT(k, u) * math.Sin(omega*halfLength*u)
		}
		lvl.cos[k] = kronrod.Evaluate(cosIntegrand, -1, 1, kronrod.Table61).Result
		lvl.sin[k] = kronrod.Evaluate(sinIntegrand, -1, 1, kronrod.Table61).Result
	}
	return lvl
}
