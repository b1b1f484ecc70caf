// Package errmodel implements the QUADPACK error-rescaling and tolerance
// admissibility tests shared by every adaptive engine in algo-quad.
package errmodel

import "math"

// Epsilon is the machine epsilon used throughout the engines for
// round-off detection. It matches the constant QUADPACK derives from
// d1mach(4) for IEEE double precision.
const Epsilon = 2.220446049250313e-16

// MinFloat is the smallest normalized positive float64, matching
// QUADPACK's d1mach(1).
const MinFloat = 2.2250738585072014e-308

// Rescale implements the QUADPACK error-rescaling scheme:
// given the raw Gauss/Kronrod discrepancy scaled to the interval, the
// integral of |f| (resabs), and the integral of |f - mean(f)| (resasc),
// it returns a defensible absolute error bound.
func Rescale(raw, resabs, resasc float64) float64 {
	abserr := raw
	if resasc != 0 && raw != 0 {
		ratio := 200 * raw / resasc
		scale := math.Pow(ratio, 1.5)
		if scale > 1 {
			scale = 1
		}
		abserr = resasc * scale
	}
	if resabs > MinFloat/(50*Epsilon) {
		floor := 50 * Epsilon * resabs
		if abserr < floor {
			abserr = floor
		}
	}
	return abserr
}

// ToleranceAdmissible reports whether the (absTol, relTol) pair is
// admissible: absTol > 0 or relTol ≥ max(50ε, 0.5e-28).
func ToleranceAdmissible(absTol, relTol float64) bool {
	if absTol > 0 {
		return true
	}
	const relFloor = 0.5e-28
	floor := 50 * Epsilon
	if floor < relFloor {
		floor = relFloor
	}
	return relTol >= floor
}

// Tolerance returns the admissible absolute error bound for a result of
// the given magnitude under the (absTol, relTol) pair.
func Tolerance(absTol, relTol, result float64) float64 {
	t := relTol * math.Abs(result)
	if absTol > t {
		return absTol
	}
	return t
}

// RoundoffDominated reports whether abserr is within the round-off floor
// of resabs (used to detect that further bisection cannot improve the
// estimate).
func RoundoffDominated(abserr, resabs float64) bool {
	return abserr <= 50*Epsilon*resabs
}
