package qag

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/status"
)

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestIntegrate_SmoothPolynomial(t *testing.T) {
	tbl, _ := kronrod.ByOrder(21)
	result, abserr, st := Integrate(func(x float64) float64 { return x * x }, 0, 1, 1e-10, 1e-10, 1024, tbl)
	if st != status.OK {
		t.Fatalf("status = %v, want OK", st)
	}
	if !almostEqual(result, 1.0/3.0, 1e-9) {
		t.Fatalf("result = %v, want 1/3 (abserr=%v)", result, abserr)
	}
}

func TestIntegrate_ZeroWidthInterval(t *testing.T) {
	result, abserr, st := Integrate(math.Sin, 1, 1, 1e-10, 1e-10, 1024, mustTable(21))
	if st != status.OK || result != 0 || abserr != 0 {
		t.Fatalf("Integrate over a==b should be (0,0,OK), got (%v,%v,%v)", result, abserr, st)
	}
}

func TestIntegrate_ToleranceError(t *testing.T) {
	_, _, st := Integrate(math.Sin, 0, 1, 0, 0, 1024, mustTable(21))
	if st != status.ToleranceError {
		t.Fatalf("status = %v, want ToleranceError", st)
	}
}

func TestIntegrate_MaxIterExhausted(t *testing.T) {
	// A function with a sharp interior feature and a near-impossible
	// tolerance, with a tiny iteration budget, should exhaust.
	f := func(x float64) float64 { return 1 / (1e-6 + (x-0.5)*(x-0.5)) }
	_, _, st := Integrate(f, 0, 1, 1e-14, 0, 3, mustTable(15))
	if st != status.MaxIterError {
		t.Fatalf("status = %v, want MaxIterError", st)
	}
}

func TestIntegrate_AdditivityOverSplitInterval(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x * x) }
	whole, _, st1 := Integrate(f, 0, 2, 1e-10, 1e-10, 1024, mustTable(21))
	left, _, st2 := Integrate(f, 0, 1, 1e-10, 1e-10, 1024, mustTable(21))
	right, _, st3 := Integrate(f, 1, 2, 1e-10, 1e-10, 1024, mustTable(21))
	if st1 != status.OK || st2 != status.OK || st3 != status.OK {
		t.Fatalf("unexpected statuses: %v %v %v", st1, st2, st3)
	}
	if !almostEqual(whole, left+right, 1e-8) {
		t.Fatalf("whole=%v, left+right=%v", whole, left+right)
	}
}

func mustTable(order int) *kronrod.Table {
	t, ok := kronrod.ByOrder(order)
	if !ok {
		panic("bad order")
	}
	return t
}
