// Package transform implements the infinite-range variable changes
// that reduce (-∞,∞), (a,∞), and (-∞,b) integrals to (0,1] so they can
// be composed with QAGS. Each function returns a "wrapped" integrand:
// a composable object evaluated on (0,1] with a precise limit policy
// at the endpoints, rather than raising a floating-point exception
// there.
//
// Grounded on emsr's map_minf_pinf{,_symm}/map_minf_b/map_a_pinf
// templates (original_source/include/ext/integration_transform.h),
// which call the user function directly at ±∞ at the endpoints — for
// an integrable f that limit is 0, and the caller's f is expected to
// honor that convention.
package transform

// MinfPinf maps f on (-∞,+∞) onto (0,1] via x = (1-t)/t, exploiting
// the symmetry f(x)+f(-x) so each node costs one pair of evaluations.
func MinfPinf(f func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		switch t {
		case 0:
			return f(negInf)
		default:
			x := (1 - t) / t
			return (f(x) + f(-x)) / (t * t)
		}
	}
}

// MinfPinfAsymmetric maps f on (-∞,+∞) onto (0,1) via the bijection
// x = -1/t + 1/(1-t), without relying on evaluating f at both ±x.
// Useful when f is not cheaply evaluated at
// both signs of its argument.
func MinfPinfAsymmetric(f func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		switch t {
		case 0:
			return f(negInf)
		case 1:
			return f(posInf)
		default:
			invT := 1 / t
			inv1mT := 1 / (1 - t)
			x := -invT + inv1mT
			return f(x) * (invT*invT + inv1mT*inv1mT)
		}
	}
}

// LowerPinf maps f on [a,+∞) onto (0,1] via x = a + t/(1-t).
func LowerPinf(f func(float64) float64, a float64) func(float64) float64 {
	return func(t float64) float64 {
		if t == 1 {
			return f(posInf)
		}
		x := a + t/(1-t)
		return f(x) / ((1 - t) * (1 - t))
	}
}

// MinfUpper maps f on (-∞,b] onto (0,1] via x = b - (1-t)/t.
func MinfUpper(f func(float64) float64, b float64) func(float64) float64 {
	return func(t float64) float64 {
		if t == 0 {
			return f(negInf)
		}
		x := b - (1-t)/t
		return f(x) / (t * t)
	}
}
