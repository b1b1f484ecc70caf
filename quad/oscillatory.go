package quad

import (
	"github.com/cwbudde/algo-quad/internal/qawf"
	"github.com/cwbudde/algo-quad/internal/qawo"
	"github.com/cwbudde/algo-quad/internal/qawotab"
)

// OscillatoryWeight owns a precomputed pyramid of Chebyshev moments for
// one (ω, kind) combination. The pyramid is read-only during an
// integration call and recomputed only when ω, kind, or the
// half-length changes; it is (re)built lazily for the half-length of
// the first interval it integrates, and rebuilt only if a later call
// uses a different half-length.
type OscillatoryWeight struct {
	omega      float64
	kind       OscillatoryKind
	table      *qawotab.Table
	builtAtLen float64
}

// NewOscillatoryWeight returns a weight for sin(ωx) or cos(ωx),
// without yet building a moment table.
func NewOscillatoryWeight(omega float64, kind OscillatoryKind) *OscillatoryWeight {
	return &OscillatoryWeight{omega: omega, kind: kind}
}

// Integrate computes ∫_a^b f(x)·sin(ωx) dx or ∫_a^b f(x)·cos(ωx) dx
// (QAWO). Reversed limits negate the result.
func (w *OscillatoryWeight) Integrate(f func(float64) float64, a, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	if a == b {
		return Result{Status: OK}
	}
	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	halfLength := 0.5 * (hi - lo)
	if w.table == nil || w.builtAtLen != halfLength {
		w.table = qawotab.New(w.omega, halfLength, w.kind)
		w.builtAtLen = halfLength
	}

	value, abserr, st := qawo.Integrate(f, lo, hi, w.omega, w.kind, w.table, absTol, relTol, cfg.MaxIter)
	return Result{Value: sign * value, Abserr: abserr, Status: st}
}

// IntegrateOscillatory computes ∫_a^b f(x)·sin(ωx) dx or
// ∫_a^b f(x)·cos(ωx) dx in one call, building a fresh moment table for
// the call. Callers integrating repeatedly at the same ω
// should build an [OscillatoryWeight] once instead.
func IntegrateOscillatory(f func(float64) float64, a, b, absTol, relTol float64, opts ...OscillatoryOption) Result {
	cfg := ApplyOscillatoryOptions(opts...)
	w := NewOscillatoryWeight(cfg.Omega, cfg.Kind)
	return w.Integrate(f, a, b, absTol, relTol, WithMaxIter(cfg.MaxIter), WithRule(cfg.Rule))
}

// IntegrateFourier computes the semi-infinite Fourier integral
// ∫_a^{+∞} f(x)·sin(ωx) dx or ∫_a^{+∞} f(x)·cos(ωx) dx (QAWF) by
// running QAWO over successive half-periods of length π/ω and
// accelerating the resulting partial sums with the Wynn epsilon table.
// Only an absolute tolerance is meaningful for this alternating tail;
// no relative tolerance parameter is accepted.
func IntegrateFourier(f func(float64) float64, a, absTol float64, opts ...OscillatoryOption) Result {
	cfg := ApplyOscillatoryOptions(opts...)

	value, abserr, st, err := qawf.Integrate(f, a, cfg.Omega, cfg.Kind, absTol, cfg.MaxIter)
	if err != nil {
		return Result{Status: UnknownError}
	}
	return Result{Value: value, Abserr: abserr, Status: st}
}
