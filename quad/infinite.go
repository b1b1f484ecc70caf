package quad

import (
	"github.com/cwbudde/algo-quad/internal/qags"
	"github.com/cwbudde/algo-quad/internal/transform"
)

// IntegrateMinfPinf computes ∫_{-∞}^{+∞} f(x) dx by substituting
// x = (1-t)/t and exploiting the f(x)+f(-x) symmetry to reduce the
// range to (0,1], then delegating to [IntegrateSingular]. f is expected to return its limiting value (typically
// 0 for an integrable integrand) when called with ±∞.
//
// [WithAsymmetricRange] switches to the row-2 substitution instead,
// which costs one evaluation of f per node rather than two.
func IntegrateMinfPinf(f func(float64) float64, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)
	var g func(float64) float64
	if cfg.AsymmetricRange {
		g = transform.MinfPinfAsymmetric(f)
	} else {
		g = transform.MinfPinf(f)
	}
	value, abserr, st := qags.Integrate(g, 0, 1, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	return Result{Value: value, Abserr: abserr, Status: st}
}

// IntegrateLowerPinf computes ∫_a^{+∞} f(x) dx by substituting
// x = a + t/(1-t) to reduce the range to (0,1], then delegating to
// [IntegrateSingular].
func IntegrateLowerPinf(f func(float64) float64, a, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)
	g := transform.LowerPinf(f, a)
	value, abserr, st := qags.Integrate(g, 0, 1, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	return Result{Value: value, Abserr: abserr, Status: st}
}

// IntegrateMinfUpper computes ∫_{-∞}^b f(x) dx by substituting
// x = b - (1-t)/t to reduce the range to (0,1], then delegating to
// [IntegrateSingular].
func IntegrateMinfUpper(f func(float64) float64, b, absTol, relTol float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)
	g := transform.MinfUpper(f, b)
	value, abserr, st := qags.Integrate(g, 0, 1, absTol, relTol, cfg.MaxIter, cfg.Rule.table())
	return Result{Value: value, Abserr: abserr, Status: st}
}
