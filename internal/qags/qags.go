// Package qags implements the globally-adaptive engine with Wynn
// epsilon-table acceleration for singular or slowly-convergent
// integrands. QAGP reuses IntegrateSeeded directly, supplying its own
// initial partition and seed depth.
package qags

import (
	"math"

	"github.com/cwbudde/algo-quad/internal/epsilon"
	"github.com/cwbudde/algo-quad/internal/errmodel"
	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/status"
	"github.com/cwbudde/algo-quad/internal/workspace"
)

const (
	roundoffDirectBail = 10
	roundoffExtrapBail = 20
	divergeStreakBail  = 5
	noImprovementBail  = 5
)

// Integrate runs QAGS on the single interval [a,b].
func Integrate(f func(float64) float64, a, b, absTol, relTol float64, maxIter int, table *kronrod.Table) (result, abserr float64, st status.Code) {
	return IntegrateSeeded(f, []float64{a, b}, 0, absTol, relTol, maxIter, table)
}

// IntegrateSeeded runs the QAGS engine starting from an explicit sorted
// partition points[0] < points[1] < ... < points[len-1], each adjacent
// pair seeding one initial sub-interval at seedDepth. QAGP calls this
// with seedDepth=1 so the extrapolator engages from
// the first iteration; plain QAGS calls it with a 2-element partition
// and seedDepth=0.
//
// Alongside the extrapolate/disallowExtrapolation flags, it tracks the
// error still carried by "large" (max-depth) sub-intervals and a
// streak of extrapolation attempts that failed to improve on the best
// known error. Once
// that streak reaches noImprovementBail, extrapolation is permanently
// disallowed for the remainder of the call and the engine falls back
// to plain bisection convergence.
func IntegrateSeeded(f func(float64) float64, points []float64, seedDepth int, absTol, relTol float64, maxIter int, table *kronrod.Table) (result, abserr float64, st status.Code) {
	if !errmodel.ToleranceAdmissible(absTol, relTol) {
		return 0, 0, status.ToleranceError
	}

	n := len(points) - 1
	ws := workspace.New(maxIter + n)

	area := 0.0
	errsum := 0.0
	maxResabs := 0.0

	for i := 0; i < n; i++ {
		lo, hi := points[i], points[i+1]
		if lo == hi {
			continue
		}
		r := kronrod.Evaluate(f, lo, hi, table)
		area += r.Result
		errsum += r.Abserr
		if r.Resabs > maxResabs {
			maxResabs = r.Resabs
		}
		ws.SeedAt(lo, hi, r.Result, r.Abserr, seedDepth)
	}

	tol := errmodel.Tolerance(absTol, relTol, area)
	if n == 1 {
		if errsum <= tol && errsum <= maxResabs {
			return area, errsum, status.OK
		}
		if errmodel.RoundoffDominated(errsum, maxResabs) && errsum > tol {
			return area, errsum, status.RoundoffError
		}
	}
	if maxIter <= 1 {
		return area, errsum, status.MaxIterError
	}

	eps := epsilon.New()
	eps.Append(area)

	bestResult, bestErr := area, errsum
	extrapolate := false
	disallowExtrapolation := false
	roundoffDirect := 0
	roundoffExtrap := 0
	divergeStreak := 0
	noImprovement := 0
	prevExtrapMag := -1.0

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
		if roundoffLike && !narrow {
			roundoffDirect++
		}
		if roundoffDirect >= roundoffDirectBail {
			return area, errsum, status.RoundoffError
		}

		ws.Push(workspace.Interval{A: s.A, B: mid, R: left.Result, E: left.Abserr, Depth: s.Depth + 1})
		ws.Push(workspace.Interval{A: mid, B: s.B, R: right.Result, E: right.Abserr, Depth: s.Depth + 1})

		tol = errmodel.Tolerance(absTol, relTol, area)
		if errsum <= tol {
			return area, errsum, status.OK
		}

		if ws.MaxDepth() > seedDepth {
			extrapolate = true
		}

		// A sub-interval no longer counts as "large" once every
		// currently active interval at max depth has been refined away,
		// or once the error it still carries has shrunk to a small
		// fraction of the running total — a looser stability condition
		// than the strict "no large interval remains" test, used to
		// keep extrapolation engaged a little longer on an improving
		// sequence.
		errorOverLarge := ws.ErrorOverLarge()
		largeCleared := !ws.HasLarge() || errorOverLarge <= 0.1*errsum

		if extrapolate && !disallowExtrapolation && largeCleared {
			eps.Append(area)
			if eps.Len() >= 3 {
				extrResult, extrErr := eps.QElg()

				if extrErr >= errsum {
					roundoffExtrap++
				}
				if roundoffExtrap >= roundoffExtrapBail {
					return bestResult, bestErr, status.ExtrapRoundoffError
				}

				if prevExtrapMag > 0 && math.Abs(extrResult) > 2*prevExtrapMag {
					divergeStreak++
				} else {
					divergeStreak = 0
				}
				prevExtrapMag = math.Abs(extrResult)
				if divergeStreak >= divergeStreakBail {
					return extrResult, extrErr, status.DivergenceError
				}

				if extrErr < bestErr || (eps.Irregular(extrResult) && extrErr <= errsum) {
					bestResult, bestErr = extrResult, extrErr
					noImprovement = 0
				} else {
					noImprovement++
					if noImprovement >= noImprovementBail {
						disallowExtrapolation = true
					}
				}

				tolBest := errmodel.Tolerance(absTol, relTol, bestResult)
				if bestErr <= tolBest {
					return bestResult, bestErr, status.OK
				}
			}
		} else if errsum < bestErr {
			bestResult, bestErr = area, errsum
		}
	}

	if errsum < bestErr {
		bestResult, bestErr = area, errsum
	}
	return bestResult, bestErr, status.MaxIterError
}
