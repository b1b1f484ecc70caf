package workspace

import "testing"

func TestSeedAndPop(t *testing.T) {
	w := New(8)
	w.Seed(0, 1, 0.5, 0.1)
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	iv := w.Pop()
	if iv.A != 0 || iv.B != 1 || iv.R != 0.5 || iv.E != 0.1 || iv.Depth != 0 {
		t.Fatalf("Pop() = %+v, unexpected", iv)
	}
	if w.Len() != 0 {
		t.Fatalf("Len() after Pop = %d, want 0", w.Len())
	}
}

func TestPop_ReturnsMaxError(t *testing.T) {
	w := New(8)
	w.Seed(0, 1, 0, 0.01)
	w.Push(Interval{A: 1, B: 2, E: 0.5, Depth: 1})
	w.Push(Interval{A: 2, B: 3, E: 0.2, Depth: 1})

	first := w.Pop()
	if first.E != 0.5 {
		t.Fatalf("Pop() E = %v, want the largest (0.5)", first.E)
	}
	second := w.Pop()
	if second.E != 0.2 {
		t.Fatalf("Pop() E = %v, want 0.2", second.E)
	}
	third := w.Pop()
	if third.E != 0.01 {
		t.Fatalf("Pop() E = %v, want 0.01", third.E)
	}
}

func TestMaxDepthAndIsLarge(t *testing.T) {
	w := New(8)
	w.Seed(0, 1, 0, 1)
	if w.MaxDepth() != 0 {
		t.Fatalf("MaxDepth() = %d, want 0", w.MaxDepth())
	}
	w.Push(Interval{A: 0, B: 0.5, E: 0.5, Depth: 1})
	w.Push(Interval{A: 0.5, B: 1, E: 0.5, Depth: 1})
	if w.MaxDepth() != 1 {
		t.Fatalf("MaxDepth() = %d, want 1", w.MaxDepth())
	}
	if !w.IsLarge(Interval{Depth: 1}) {
		t.Fatal("Interval at max depth should be large")
	}
	if w.IsLarge(Interval{Depth: 0}) {
		t.Fatal("Interval below max depth should not be large")
	}
}

func TestHasLarge(t *testing.T) {
	w := New(8)
	w.SeedAt(0, 1, 0, 1, 2)
	if !w.HasLarge() {
		t.Fatal("HasLarge() should be true right after seeding at the max depth")
	}
	_ = w.Pop()
	if w.HasLarge() {
		t.Fatal("HasLarge() should be false once the only large interval is popped")
	}
}

func TestSeedAt_TracksMaxDepth(t *testing.T) {
	w := New(8)
	w.SeedAt(0, 1, 0, 1, 3)
	if w.MaxDepth() != 3 {
		t.Fatalf("MaxDepth() = %d, want 3", w.MaxDepth())
	}
}
