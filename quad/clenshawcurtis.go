package quad

import "github.com/cwbudde/algo-quad/internal/cquad"

// IntegrateClenshawCurtis computes ∫_a^b f(x) dx with CQUAD, the
// doubly-adaptive Clenshaw-Curtis engine on nested 5/9/17/33-point
// rules. Unlike the Gauss-Kronrod-based engines, CQUAD is not
// parameterized by a [Rule]: each sub-interval's node count is chosen
// by the engine itself as it promotes or bisects. CQUAD degrades
// gracefully on endpoint singularities without any weight hints, at
// the cost of a fixed subdivision cap.
func IntegrateClenshawCurtis(f func(float64) float64, a, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	if a == b {
		return Result{Status: OK}
	}
	sign := 1.0
	lo, hi := a, b
	if hi < lo {
		lo, hi, sign = hi, lo, -1.0
	}

	value, abserr, st := cquad.Integrate(f, lo, hi, absTol, relTol, cfg.MaxIter)
	return Result{Value: sign * value, Abserr: abserr, Status: st}
}
