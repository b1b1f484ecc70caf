// Package qagp implements the QAGS variant seeded with user-supplied
// singular abscissae: each caller-supplied break point
// becomes an initial sub-interval boundary at depth 1, forcing the
// extrapolator to engage immediately.
package qagp

import (
	"errors"

	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/qags"
	"github.com/cwbudde/algo-quad/internal/status"
)

// ErrTooFewPoints is returned when fewer than two break points are
// supplied.
var ErrTooFewPoints = errors.New("qagp: at least 2 points are required")

// ErrPointsNotIncreasing is returned when the supplied points are not
// strictly increasing.
var ErrPointsNotIncreasing = errors.New("qagp: points must be strictly increasing")

// seedDepth is the initial depth assigned to each user-seeded
// sub-interval.
const seedDepth = 1

// Integrate runs QAGS seeded with the N-1 sub-intervals bounded by the
// sorted, strictly-increasing break points a=points[0]<...<points[N-1]=b.
func Integrate(f func(float64) float64, points []float64, absTol, relTol float64, maxIter int, table *kronrod.Table) (result, abserr float64, st status.Code, err error) {
	if len(points) < 2 {
		return 0, 0, status.UnknownError, ErrTooFewPoints
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return 0, 0, status.UnknownError, ErrPointsNotIncreasing
		}
	}

	result, abserr, st = qags.IntegrateSeeded(f, points, seedDepth, absTol, relTol, maxIter, table)
	return result, abserr, st, nil
}
