package quad

import (
	"github.com/cwbudde/algo-quad/internal/errmodel"
	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/qag"
)

// Integrate computes ∫_a^b f(x) dx by plain globally-adaptive
// bisection (QAG). Reversed limits (b < a) negate the result rather
// than erroring. If a == b, it returns zero without evaluating f.
func Integrate(f func(float64) float64, a, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	if a == b {
		return Result{Status: OK}
	}
	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	value, abserr, st := qag.Integrate(f, lo, hi, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	return Result{Value: sign * value, Abserr: abserr, Status: st}
}

// QuickEstimate evaluates a single Gauss-Kronrod pair over [a,b]
// without any bisection or workspace allocation — the QNG fast path.
// It reports OK only when the single-rule error estimate already meets
// the requested tolerance; otherwise the caller should fall back to
// [Integrate].
func QuickEstimate(f func(float64) float64, a, b, absTol, relTol float64, rule Rule) Result {
	if a == b {
		return Result{Status: OK}
	}
	if !errmodel.ToleranceAdmissible(absTol, relTol) {
		return Result{Status: ToleranceError}
	}

	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	table := rule.table()
	res := kronrod.Evaluate(f, lo, hi, table)
	tol := errmodel.Tolerance(absTol, relTol, res.Result)
	if res.Abserr <= tol && res.Abserr <= res.Resasc {
		return Result{Value: sign * res.Result, Abserr: res.Abserr, Status: OK}
	}
	return Result{Value: sign * res.Result, Abserr: res.Abserr, Status: MaxSubdivisionError}
}
