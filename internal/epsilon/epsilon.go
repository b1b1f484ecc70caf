// Package epsilon implements the Wynn epsilon algorithm (QELG): a
// nonlinear sequence transformation that accelerates convergence of
// the partial sums QAGS/QAGP/QAWF feed it from "large" sub-intervals.
package epsilon

import (
	"math"

	"github.com/cwbudde/algo-quad/internal/errmodel"
)

// capacity is the fixed ring size. Higher-order extrapolations on
// floating-point data diverge, so the table never grows past this; on
// saturation the oldest half is dropped and accumulation restarts.
const capacity = 52

// Table holds the bounded, append-only sequence of partial sums (the
// diagonal of the epsilon table) plus the bookkeeping QElg needs to
// report a stable error estimate: a result counter and a ring of the
// last three extrapolated values.
type Table struct {
	values []float64
	nres   int
	res3la [3]float64
}

// New returns an empty extrapolation table.
func New() *Table {
	return &Table{values: make([]float64, 0, capacity)}
}

// Append adds a new partial sum to the table. When the table is full
// the oldest half is dropped and the sequence continues from there —
// the halving-restart strategy.
func (t *Table) Append(v float64) {
	if len(t.values) == capacity {
		half := capacity / 2
		copy(t.values, t.values[half:])
		t.values = t.values[:capacity-half]
	}
	t.values = append(t.values, v)
}

// Len reports how many partial sums have been appended since the last
// halving-restart.
func (t *Table) Len() int { return len(t.values) }

// QElg computes the next diagonal of the Wynn epsilon table from the
// appended sequence and returns the current best extrapolated value
// together with an error estimate. With fewer than 3 entries the table
// is too short to extrapolate and the most recent raw value is
// returned unchanged with a maximal error.
//
// The transform walks the full triangular epsilon table each call
// (bounded by capacity, so this stays cheap) rather than maintaining
// QUADPACK's single in-place row; it freezes — keeping the last
// successfully computed even-order column — the moment two consecutive diagonal
// entries coincide, since the recursion divides by their difference.
func (t *Table) QElg() (result, abserr float64) {
	n := len(t.values)
	if n < 3 {
		result = t.values[n-1]
		abserr = math.MaxFloat64
		return
	}

	col := append([]float64(nil), t.values...) // e_0 column
	prev := make([]float64, len(col))          // e_{-1} column, all zero
	newest := col[len(col)-1]

	for order := 1; len(col) >= 2; order++ {
		next := make([]float64, len(col)-1)
		frozen := false
		for i := range next {
			denom := col[i+1] - col[i]
			if denom == 0 {
				frozen = true
				break
			}
			next[i] = prev[i+1] + 1/denom
		}
		if frozen {
			break
		}
		prev, col = col, next
		// Odd-order columns hold reciprocal differences, not estimates
		// of the limit; only even-order columns are extrapolations.
		if order%2 == 0 {
			newest = col[len(col)-1]
		}
	}

	result = newest
	t.nres++
	t.res3la[0], t.res3la[1], t.res3la[2] = t.res3la[1], t.res3la[2], newest

	if t.nres < 3 {
		abserr = math.MaxFloat64
	} else {
		d1 := math.Abs(newest - t.res3la[1])
		d2 := math.Abs(newest - t.res3la[0])
		abserr = math.Max(d1, d2)
	}
	if floor := 5 * errmodel.Epsilon * math.Abs(result); abserr < floor {
		abserr = floor
	}
	return result, abserr
}

// Irregular reports whether the last three extrapolated values agree
// to within the table's irregularity threshold (10⁻⁴·|newest|), the
// signal that acceptance of the extrapolated value is permitted.
func (t *Table) Irregular(newest float64) bool {
	threshold := 1e-4 * math.Abs(newest)
	return math.Abs(newest-t.res3la[1]) <= threshold &&
		math.Abs(t.res3la[1]-t.res3la[0]) <= threshold
}
