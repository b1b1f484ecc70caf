// Package qawo implements the oscillatory weight integrator:
// ∫ f(x)·sin(ωx) dx or ∫ f(x)·cos(ωx) dx, via Chebyshev
// expansion of f against a precomputed table of trigonometric moments
// (qawotab), falling back to Gauss-Kronrod when a sub-interval's
// half-length falls outside the table's precomputed ladder. The
// adaptive loop is QAG-like.
package qawo

import (
	"math"

	"github.com/cwbudde/algo-quad/internal/chebyshev"
	"github.com/cwbudde/algo-quad/internal/errmodel"
	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/qawotab"
	"github.com/cwbudde/algo-quad/internal/status"
	"github.com/cwbudde/algo-quad/internal/workspace"
)

const (
	roundoffBail = 6
	singularBail = 20
)

func weighted(f func(float64) float64, omega float64, k qawotab.Kind) func(float64) float64 {
	if k == qawotab.Sine {
		return func(x float64) float64 { return f(x) * math.Sin(omega*x) }
	}
	return func(x float64) float64 { return f(x) * math.Cos(omega*x) }
}

// evalSub evaluates the oscillatory integral over one sub-interval,
// preferring the table lookup and falling back to Kronrod-15 on the
// fully-weighted integrand when the half-length is out of range.
func evalSub(f func(float64) float64, a, b, omega float64, k qawotab.Kind, t *qawotab.Table) (result, abserr, resabs float64) {
	halfLength := 0.5 * (b - a)
	center := 0.5 * (a + b)
	if moments, ok := t.Moments(halfLength, center); ok {
		coeffs := chebyshev.Coefficients(chebyshev.Sample(f, a, b))
		res := chebyshev.Apply(coeffs, moments) * halfLength

		var half [chebyshev.N]float64
		copy(half[:13], coeffs[:13])
		resHalf := chebyshev.Apply(half, moments) * halfLength
		return res, math.Abs(res - resHalf), math.Abs(res)
	}

	g := weighted(f, omega, k)
	r := kronrod.Evaluate(g, a, b, kronrod.Table15)
	return r.Result, r.Abserr, r.Resabs
}

// Integrate computes ∫_a^b f(x)·sin(ωx) dx or ∫_a^b f(x)·cos(ωx) dx
// using a prebuilt moment table t built for the same ω and Kind.
func Integrate(f func(float64) float64, a, b, omega float64, k qawotab.Kind, t *qawotab.Table, absTol, relTol float64, maxIter int) (result, abserr float64, st status.Code) {
	if !errmodel.ToleranceAdmissible(absTol, relTol) {
		return 0, 0, status.ToleranceError
	}
	if omega == 0 {
		if k == qawotab.Cosine {
			// cos(0·x) ≡ 1: falls back to a plain weightless quadrature.
			r := kronrod.Evaluate(f, a, b, kronrod.Table21)
			tol := errmodel.Tolerance(absTol, relTol, r.Result)
			if r.Abserr <= tol {
				return r.Result, r.Abserr, status.OK
			}
		} else {
			return 0, 0, status.OK
		}
	}

	r0, e0, resabs0 := evalSub(f, a, b, omega, k, t)
	tol := errmodel.Tolerance(absTol, relTol, r0)
	if e0 <= tol {
		return r0, e0, status.OK
	}
	if errmodel.RoundoffDominated(e0, resabs0) && e0 > tol {
		return r0, e0, status.RoundoffError
	}
	if maxIter <= 1 {
		return r0, e0, status.MaxIterError
	}

	ws := workspace.New(maxIter + 1)
	ws.Seed(a, b, r0, e0)
	area, errsum := r0, e0

	roundoffCount, singularCount := 0, 0

	for iter := 1; iter < maxIter; iter++ {
		s := ws.Pop()
		mid := 0.5 * (s.A + s.B)

		lr, le, _ := evalSub(f, s.A, mid, omega, k, t)
		rr, re, _ := evalSub(f, mid, s.B, omega, k, t)

		area += lr + rr - s.R
		errsum += le + re - s.E

		narrow := math.Abs(s.B-s.A) < 100*errmodel.Epsilon*(math.Abs(s.A)+math.Abs(s.B))
		roundoffLike := math.Abs(lr+rr-s.R) <= 1e-5*math.Abs(area) && le+re >= 0.99*s.E
		if roundoffLike {
			if narrow {
				singularCount++
			} else {
				roundoffCount++
			}
		}

		ws.Push(workspace.Interval{A: s.A, B: mid, R: lr, E: le, Depth: s.Depth + 1})
		ws.Push(workspace.Interval{A: mid, B: s.B, R: rr, E: re, Depth: s.Depth + 1})

		if roundoffCount >= roundoffBail {
			return area, errsum, status.RoundoffError
		}
		if singularCount >= singularBail {
			return area, errsum, status.SingularError
		}

		tol = errmodel.Tolerance(absTol, relTol, area)
		if errsum <= tol {
			return area, errsum, status.OK
		}
	}

	return area, errsum, status.MaxIterError
}
