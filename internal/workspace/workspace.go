// Package workspace implements the sub-interval priority queue shared
// by every bisecting adaptive engine (QAG, QAGS, QAGP): a max-heap on
// absolute error with depth tracking for the "large interval" cursor
// QAGS/QAGP hand to the extrapolator.
//
// QUADPACK keeps this as a single flat array doing double duty as a
// heap and a depth-history log; this is a clean split of the two
// roles into a heap of active intervals plus separate depth
// bookkeeping.
package workspace

import "container/heap"

// Interval is one sub-interval record: limits, local estimates, and
// bisection depth.
type Interval struct {
	A, B  float64
	R, E  float64
	Depth int
}

// Workspace is a max-heap of Intervals ordered by E, preallocated to
// the capacity hint given to New (Push grows it past that when needed)
// and tracking the largest depth seen so far.
type Workspace struct {
	heap    intervalHeap
	maxSize int
	maxDep  int
}

// New returns an empty workspace with the given capacity hint.
func New(maxSize int) *Workspace {
	w := &Workspace{maxSize: maxSize}
	w.heap = make(intervalHeap, 0, maxSize)
	return w
}

// Seed resets the workspace to hold a single interval at depth 0 — the
// starting point for QAG and QAGS.
func (w *Workspace) Seed(a, b, r, e float64) {
	w.heap = w.heap[:0]
	w.maxDep = 0
	heap.Push(&w.heap, Interval{A: a, B: b, R: r, E: e, Depth: 0})
}

// SeedAt appends an initial interval at an explicit depth, used by
// QAGP to seed the N-1 sub-intervals bounded by caller-supplied
// singular points at depth 1 — forcing the extrapolator to engage
// immediately.
func (w *Workspace) SeedAt(a, b, r, e float64, depth int) {
	heap.Push(&w.heap, Interval{A: a, B: b, R: r, E: e, Depth: depth})
	if depth > w.maxDep {
		w.maxDep = depth
	}
}

// Len reports the number of active (heap-managed) intervals.
func (w *Workspace) Len() int { return len(w.heap) }

// MaxDepth reports the largest bisection depth among all intervals
// ever pushed.
func (w *Workspace) MaxDepth() int { return w.maxDep }

// Pop removes and returns the interval with the largest E.
func (w *Workspace) Pop() Interval {
	return heap.Pop(&w.heap).(Interval)
}

// Push inserts a new sub-interval (typically one bisection child) and
// updates the running maximum depth.
func (w *Workspace) Push(iv Interval) {
	heap.Push(&w.heap, iv)
	if iv.Depth > w.maxDep {
		w.maxDep = iv.Depth
	}
}

// IsLarge reports whether iv sits at the workspace's current maximum
// depth — the "large interval" test QAGS/QAGP use to decide whether a
// sub-interval is a candidate for extrapolation feed-in.
func (w *Workspace) IsLarge(iv Interval) bool { return iv.Depth == w.maxDep }

// HasLarge reports whether any currently active interval still sits at
// the workspace's maximum depth. QAGS/QAGP feed the extrapolator once
// this goes false — the cursor has advanced past all "large" intervals.
func (w *Workspace) HasLarge() bool {
	for _, iv := range w.heap {
		if iv.Depth == w.maxDep {
			return true
		}
	}
	return false
}

// ErrorOverLarge sums E over every currently active interval at the
// workspace's maximum depth — the "large interval" error tally QAGS
// tracks alongside HasLarge to decide when extrapolation is still
// worth feeding.
func (w *Workspace) ErrorOverLarge() float64 {
	sum := 0.0
	for _, iv := range w.heap {
		if iv.Depth == w.maxDep {
			sum += iv.E
		}
	}
	return sum
}

// intervalHeap implements container/heap.Interface as a max-heap on E.
type intervalHeap []Interval

func (h intervalHeap) Len() int            { return len(h) }
func (h intervalHeap) Less(i, j int) bool  { return h[i].E > h[j].E }
func (h intervalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intervalHeap) Push(x any)         { *h = append(*h, x.(Interval)) }
func (h *intervalHeap) Pop() any {
	old := *h
	n := len(old)
	iv := old[n-1]
	*h = old[:n-1]
	return iv
}
