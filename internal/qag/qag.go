// Package qag implements the plain globally-adaptive bisection engine:
// repeatedly bisect the worst sub-interval by absolute
// error until the aggregated error meets the caller's tolerance or the
// iteration budget is exhausted.
package qag

import (
	"math"

	"github.com/cwbudde/algo-quad/internal/errmodel"
	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/status"
	"github.com/cwbudde/algo-quad/internal/workspace"
)

// roundoffBail and singularBail are the QUADPACK thresholds for how
// many adversarial round-off events are tolerated before the engine
// gives up.
const (
	roundoffBail = 6
	singularBail = 20
)

// Integrate runs the plain adaptive bisection loop over [a,b] (a ≤ b;
// sign/limit handling is the caller's responsibility) using the given
// Gauss-Kronrod table, stopping once the aggregated error meets
// max(absTol, relTol*|result|) or maxIter-1 bisections (maxIter
// sub-intervals) have been made.
func Integrate(f func(float64) float64, a, b, absTol, relTol float64, maxIter int, table *kronrod.Table) (result, abserr float64, st status.Code) {
	if a == b {
		return 0, 0, status.OK
	}
	if !errmodel.ToleranceAdmissible(absTol, relTol) {
		return 0, 0, status.ToleranceError
	}

	r0 := kronrod.Evaluate(f, a, b, table)

	tol := errmodel.Tolerance(absTol, relTol, r0.Result)
	if r0.Abserr <= tol && r0.Abserr <= r0.Resasc {
		return r0.Result, r0.Abserr, status.OK
	}
	if errmodel.RoundoffDominated(r0.Abserr, r0.Resabs) && r0.Abserr > tol {
		return r0.Result, r0.Abserr, status.RoundoffError
	}
	if maxIter <= 1 {
		return r0.Result, r0.Abserr, status.MaxIterError
	}

	ws := workspace.New(maxIter + 1)
	ws.Seed(a, b, r0.Result, r0.Abserr)

	area := r0.Result
	errsum := r0.Abserr

	roundoffCount := 0
	singularCount := 0

	for iter := 1; iter < maxIter; iter++ {
		s := ws.Pop()
		mid := 0.5 * (s.A + s.B)

		left := kronrod.Evaluate(f, s.A, mid, table)
		right := kronrod.Evaluate(f, mid, s.B, table)

		area += left.Result + right.Result - s.R
		errsum += left.Abserr + right.Abserr - s.E

		narrow := math.Abs(s.B-s.A) < 100*errmodel.Epsilon*(math.Abs(s.A)+math.Abs(s.B))
		roundoffLike := math.Abs(left.Result+right.Result-s.R) <= 1e-5*math.Abs(area) &&
			left.Abserr+right.Abserr >= 0.99*s.E

		if roundoffLike {
			if narrow {
				singularCount++
			} else {
				roundoffCount++
			}
		}

		ws.Push(workspace.Interval{A: s.A, B: mid, R: left.Result, E: left.Abserr, Depth: s.Depth + 1})
		ws.Push(workspace.Interval{A: mid, B: s.B, R: right.Result, E: right.Abserr, Depth: s.Depth + 1})

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
