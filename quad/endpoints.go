package quad

import (
	"github.com/cwbudde/algo-quad/internal/qaws"
	"github.com/cwbudde/algo-quad/internal/qawstab"
)

// SingularEndpointsWeight owns a precomputed QAWS moment table for one
// (α,β,μ,ν) combination. Moment-table construction is the expensive
// part of this weight, so it is deliberately a caller-owned, reusable
// resource rather than something rebuilt per call. Build one with [NewSingularEndpointsWeight] and reuse it across every
// call that shares the same weight parameters; build a new one only
// when α, β, μ, or ν changes.
type SingularEndpointsWeight struct {
	table *qawstab.Table
}

// NewSingularEndpointsWeight validates the algebraic-logarithmic
// endpoint weight W(x) = (x-a)^α (b-x)^β [log(x-a)]^μ [log(b-x)]^ν
// (α > −1, β > −1, μ,ν ∈ {0,1}) and precomputes its moment table.
func NewSingularEndpointsWeight(alpha, beta float64, mu, nu int) (*SingularEndpointsWeight, error) {
	t, err := qawstab.New(alpha, beta, mu, nu)
	if err != nil {
		return nil, err
	}
	return &SingularEndpointsWeight{table: t}, nil
}

// Integrate computes ∫_a^b W(x)·f(x) dx for this weight's (α,β,μ,ν)
// over [a,b]. Sub-intervals touching an endpoint use
// the Chebyshev-moment expansion; interior sub-intervals use ordinary
// Kronrod-15.
func (w *SingularEndpointsWeight) Integrate(f func(float64) float64, a, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	value, abserr, st := qaws.Integrate(f, lo, hi, w.table, absTol, relTol, cfg.MaxIter)
	return Result{Value: sign * value, Abserr: abserr, Status: st}
}

// IntegrateSingularEndpoints computes ∫_a^b (x-a)^α (b-x)^β
// [log(x-a)]^μ [log(b-x)]^ν f(x) dx in one call. It builds a fresh moment table for the call; callers that integrate
// repeatedly with the same (α,β,μ,ν) should build a
// [SingularEndpointsWeight] once instead and call its Integrate method.
func IntegrateSingularEndpoints(f func(float64) float64, a, b, alpha, beta float64, mu, nu int, absTol, relTol float64, opts ...Option) Result {
	w, err := NewSingularEndpointsWeight(alpha, beta, mu, nu)
	if err != nil {
		return Result{Status: UnknownError}
	}
	return w.Integrate(f, a, b, absTol, relTol, opts...)
}
