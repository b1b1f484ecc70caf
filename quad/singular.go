package quad

import (
	"github.com/cwbudde/algo-quad/internal/qagp"
	"github.com/cwbudde/algo-quad/internal/qags"
)

// IntegrateSingular computes ∫_a^b f(x) dx by globally-adaptive
// bisection with Wynn epsilon-table acceleration (QAGS).
// It is the entry point for endpoint singularities and other
// slowly-convergent integrands that defeat plain [Integrate]. Reversed
// limits negate the result; a == b returns zero without evaluating f.
func IntegrateSingular(f func(float64) float64, a, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	if a == b {
		return Result{Status: OK}
	}
	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	value, abserr, st := qags.Integrate(f, lo, hi, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	return Result{Value: sign * value, Abserr: abserr, Status: st}
}

// IntegrateMultiSingular computes ∫_{points[0]}^{points[N-1]} f(x) dx
// by QAGS seeded with N-1 sub-intervals bounded by the caller-supplied,
// strictly increasing break points (QAGP). At least two
// points are required; supplying the known singular abscissae as
// interior break points forces the extrapolator to engage immediately.
func IntegrateMultiSingular(f func(float64) float64, points []float64, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	value, abserr, st, err := qagp.Integrate(f, points, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	if err != nil {
		return Result{Status: UnknownError}
	}
	return Result{Value: value, Abserr: abserr, Status: st}
}
