// Package qawstab builds the QAWS moment table: given the
// algebraic-logarithmic endpoint weight
//
//	W(x) = (x-a)^α (b-x)^β [log(x-a)]^μ [log(b-x)]^ν
//
// it precomputes four 25-entry vectors of modified Chebyshev moments
// (ri, rj, rg, rh), one per weight component, on the reference
// interval u ∈ [-1,1] where (x-a)/(b-a) = (1+u)/2. Because those
// ratios don't depend on the actual sub-interval width, the table is
// built once per (α,β,μ,ν) and reused across every sub-interval that
// touches an endpoint; the table is a caller-owned resource, not
// something rebuilt per call.
//
// The original emsr header for this table (qaws_integration_table.h)
// declares the four vectors but its recurrence (the .tcc) was not
// present in the retrieval pack, so the moments here are obtained by
// direct numerical integration of their defining integrals with the
// package's own Kronrod-61 rule rather than a reconstructed recurrence
// (see DESIGN.md).
package qawstab

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-quad/internal/chebyshev"
	"github.com/cwbudde/algo-quad/internal/kronrod"
)

// ErrInvalidAlpha is returned when α ≤ -1.
var ErrInvalidAlpha = errors.New("qawstab: alpha must be > -1")

// ErrInvalidBeta is returned when β ≤ -1.
var ErrInvalidBeta = errors.New("qawstab: beta must be > -1")

// ErrInvalidMu is returned when μ ∉ {0,1}.
var ErrInvalidMu = errors.New("qawstab: mu must be 0 or 1")

// ErrInvalidNu is returned when ν ∉ {0,1}.
var ErrInvalidNu = errors.New("qawstab: nu must be 0 or 1")

// Table holds the precomputed moment vectors for one (α,β,μ,ν)
// combination.
type Table struct {
	Alpha, Beta float64
	Mu, Nu      int
	RI, RJ, RG, RH [chebyshev.N]float64
}

// New validates the weight parameters and builds the moment table.
func New(alpha, beta float64, mu, nu int) (*Table, error) {
	if alpha <= -1 {
		return nil, ErrInvalidAlpha
	}
	if beta <= -1 {
		return nil, ErrInvalidBeta
	}
	if mu != 0 && mu != 1 {
		return nil, ErrInvalidMu
	}
	if nu != 0 && nu != 1 {
		return nil, ErrInvalidNu
	}

	t := &Table{Alpha: alpha, Beta: beta, Mu: mu, Nu: nu}
	t.RI = momentVector(func(u float64) float64 {
		return math.Pow((1+u)/2, alpha)
	})
	t.RJ = momentVector(func(u float64) float64 {
		return math.Pow((1-u)/2, beta)
	})
	t.RG = momentVector(func(u float64) float64 {
		base := (1 + u) / 2
		if base <= 0 {
			return 0
		}
		return math.Pow(base, alpha) * math.Log(base)
	})
	t.RH = momentVector(func(u float64) float64 {
		base := (1 - u) / 2
		if base <= 0 {
			return 0
		}
		return math.Pow(base, beta) * math.Log(base)
	})
	return t, nil
}

func chebyshevT(k int, u float64) float64 {
	if u < -1 {
		u = -1
	} else if u > 1 {
		u = 1
	}
	return math.Cos(float64(k) * math.Acos(u))
}

// momentVector computes m_k = ∫_{-1}^{1} T_k(u)·weight(u) du for
// k=0..24 using the package's own Kronrod-61 rule.
func momentVector(weight func(float64) float64) [chebyshev.N]float64 {
	var m [chebyshev.N]float64
	for k := 0; k < chebyshev.N; k++ {
		k := k
		integrand := func(u float64) float64 { return chebyshevT(k, u) * weight(u) }
		res := kronrod.Evaluate(integrand, -1, 1, kronrod.Table61)
		m[k] = res.Result
	}
	return m
}
