// Package cquad implements the doubly-adaptive Clenshaw-Curtis
// integrator: each sub-interval carries a Chebyshev expansion at one
// of four nested node counts (5, 9, 17, 33), and refinement first
// tries promoting to the next node count (sampling f afresh at every
// node of that level; the coarser level's samples are not reused)
// before falling back to ordinary bisection when the rule is
// already at its finest level.
//
// This mirrors QUADPACK-era CQUAD implementations (e.g. GSL's
// gsl_integration_cquad) in spirit, adapted to Go idioms the way
// qag/qags structure their own bisection loops; coefficient vectors
// are built with internal/cquadrule, which is algo-fft backed.
package cquad

import (
	"container/heap"
	"math"

	"github.com/cwbudde/algo-quad/internal/cquadrule"
	"github.com/cwbudde/algo-quad/internal/errmodel"
	"github.com/cwbudde/algo-quad/internal/status"
)

const (
	maxSubBail = 256

	// ndivBail is how many unproductive bisections (children whose
	// combined error didn't shrink relative to their parent) a panel
	// tolerates before it is frozen rather than bisected again —
	// mirroring qag.Integrate's singularBail threshold for the same
	// "this sub-interval looks non-integrable" symptom.
	ndivBail = 20
)

// panel is one sub-interval's state: its bounds, its samples and
// Chebyshev coefficients at its current level, its error estimate, and
// two refinement counters beyond the generic sub-interval record.
// rdepth tracks how many bisections produced this panel (promotions
// don't count), carried for the same reason the generic record tracks
// bisection depth. ndiv counts how many of those bisections failed to
// shrink the combined child error; once it saturates, the panel is
// frozen instead of being allowed to keep consuming the iteration
// budget on what looks like a genuine singularity.
type panel struct {
	a, b    float64
	level   cquadrule.Level
	samples []float64
	coeffs  []float64
	result  float64
	abserr  float64
	rdepth  int
	ndiv    int
	frozen  bool
}

type panelHeap []*panel

func (h panelHeap) Len() int            { return len(h) }
func (h panelHeap) Less(i, j int) bool  { return h[i].abserr > h[j].abserr }
func (h panelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x interface{}) { *h = append(*h, x.(*panel)) }
func (h *panelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// evalPanel samples f at the panel's current level (reusing an
// already-known half of the samples when refined from a lower level
// is not applicable here, since sampling is always fresh at the panel's
// own bounds) and computes its Chebyshev coefficients and a tail-sum
// error estimate.
func evalPanel(f func(float64) float64, p *panel) error {
	nodes := cquadrule.Nodes(p.level, p.a, p.b)
	samples := make([]float64, len(nodes))
	for i, x := range nodes {
		samples[i] = f(x)
	}
	p.samples = samples

	coeffs, err := cquadrule.Coefficients(p.level, samples)
	if err != nil {
		return err
	}
	coeffs = downdateIfRoundoffDominated(coeffs)
	p.coeffs = coeffs

	halfLength := 0.5 * (p.b - p.a)
	p.result = cquadrule.Integrate(coeffs) * halfLength

	// Tail-sum error estimate: magnitude of the highest-order quarter
	// of coefficients, the same heuristic CQUAD-family integrators use
	// to decide whether truncation or round-off dominates.
	n := len(coeffs)
	tailStart := n - n/4
	if tailStart < 1 {
		tailStart = 1
	}
	tail := 0.0
	for i := tailStart; i < n; i++ {
		tail += math.Abs(coeffs[i])
	}
	p.abserr = tail * halfLength
	return nil
}

// roundoffFloor bounds how small a series' leading (highest-order)
// coefficient must be, relative to its largest coefficient, before it
// is treated as round-off noise rather than signal.
const roundoffFloor = 50 * errmodel.Epsilon

// downdateIfRoundoffDominated strips the top Chebyshev coefficient
// when it is small enough, relative to the series' largest
// coefficient, to be round-off rather than a real high-order term —
// the downdate that guards CQUAD against leading-coefficient round-off.
func downdateIfRoundoffDominated(coeffs []float64) []float64 {
	if len(coeffs) < 2 {
		return coeffs
	}
	maxAbs := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return coeffs
	}
	top := math.Abs(coeffs[len(coeffs)-1])
	if top < roundoffFloor*maxAbs {
		return cquadrule.Downdate(coeffs)
	}
	return coeffs
}

// split divides a panel (already at its finest level) into two
// half-width panels at the coarsest level, reusing no samples — a
// genuinely new sub-interval. Children inherit the parent's ndiv; the
// caller bumps it further if the split didn't pay off.
func split(p *panel) (*panel, *panel) {
	mid := 0.5 * (p.a + p.b)
	return &panel{a: p.a, b: mid, level: cquadrule.Level5, rdepth: p.rdepth + 1, ndiv: p.ndiv},
		&panel{a: mid, b: p.b, level: cquadrule.Level5, rdepth: p.rdepth + 1, ndiv: p.ndiv}
}

// Integrate runs the doubly-adaptive loop over [a,b]: each popped
// panel is promoted to its next nested rule if that's available and
// pays off, and only bisected once it's already at the finest rule or
// promotion didn't reduce the error estimate.
func Integrate(f func(float64) float64, a, b, absTol, relTol float64, maxIter int) (result, abserr float64, st status.Code) {
	if !errmodel.ToleranceAdmissible(absTol, relTol) {
		return 0, 0, status.ToleranceError
	}

	root := &panel{a: a, b: b, level: cquadrule.Level5}
	if err := evalPanel(f, root); err != nil {
		return 0, 0, status.UnknownError
	}

	tol := errmodel.Tolerance(absTol, relTol, root.result)
	if root.abserr <= tol {
		return root.result, root.abserr, status.OK
	}
	if maxIter <= 1 {
		return root.result, root.abserr, status.MaxIterError
	}

	h := &panelHeap{root}
	heap.Init(h)

	// area/errsum are maintained as running totals, updated
	// incrementally the way qag.Integrate folds in each refined pair.
	area := root.result
	errsum := root.abserr

	totalPanels := 1

	for iter := 1; iter < maxIter && totalPanels < maxSubBail; iter++ {
		if h.Len() == 0 {
			// Every remaining panel is frozen; area/errsum already hold
			// their final contribution and bisection can't do more.
			return area, errsum, status.SingularError
		}

		cur := heap.Pop(h).(*panel)
		area -= cur.result
		errsum -= cur.abserr

		if next, ok := cur.level.Next(); ok {
			promoted := &panel{a: cur.a, b: cur.b, level: next, rdepth: cur.rdepth, ndiv: cur.ndiv}
			if err := evalPanel(f, promoted); err == nil && promoted.abserr < cur.abserr {
				area += promoted.result
				errsum += promoted.abserr
				heap.Push(h, promoted)

				tol = errmodel.Tolerance(absTol, relTol, area)
				if errsum <= tol {
					return area, errsum, status.OK
				}
				continue
			}
		}

		left, right := split(cur)
		if err := evalPanel(f, left); err != nil {
			return area + cur.result, errsum + cur.abserr, status.UnknownError
		}
		if err := evalPanel(f, right); err != nil {
			return area + cur.result, errsum + cur.abserr, status.UnknownError
		}

		// A bisection that doesn't shrink the combined error is the
		// same "no progress" symptom qag.Integrate watches for at
		// 0.99*s.E; here it increments ndiv instead of bailing outright,
		// since only this one panel is suspect, not the whole engine.
		if left.abserr+right.abserr >= 0.99*cur.abserr {
			left.ndiv++
			right.ndiv++
		}

		area += left.result + right.result
		errsum += left.abserr + right.abserr
		totalPanels++

		for _, child := range [2]*panel{left, right} {
			if child.ndiv > ndivBail {
				// Frozen: its area/abserr stay folded into the running
				// totals permanently, but it is never pushed back onto
				// the heap, so it stops competing for refinement.
				child.frozen = true
				continue
			}
			heap.Push(h, child)
		}

		tol = errmodel.Tolerance(absTol, relTol, area)
		if errsum <= tol {
			return area, errsum, status.OK
		}
	}

	return area, errsum, status.MaxIterError
}
