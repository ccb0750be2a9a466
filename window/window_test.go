package window

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func appendRow(t *testing.T, w *SlidingWindow, vals []float64, ts float64) {
	t.Helper()
	if err := w.AppendAt(vals, ts); err != nil {
		t.Fatalf("AppendAt(%v): %v", vals, err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 3); err != ErrCapacity {
		t.Errorf("New(0, 3): got %v, want ErrCapacity", err)
	}
	if _, err := New(-1, 3); err != ErrCapacity {
		t.Errorf("New(-1, 3): got %v, want ErrCapacity", err)
	}
	if _, err := New(10, 0); err != ErrColumns {
		t.Errorf("New(10, 0): got %v, want ErrColumns", err)
	}
	if _, err := New(10, 3); err != nil {
		t.Errorf("New(10, 3): unexpected error %v", err)
	}
}

func TestAppendShapeMismatch(t *testing.T) {
	w, _ := New(4, 2)
	err := w.Append([]float64{1, 2, 3})
	if err == nil {
		t.Fatal("Append with wrong length: expected error")
	}
	if !errors.Is(err, ErrShape) {
		t.Fatalf("Append with wrong length: got %v, want ErrShape", err)
	}
	if w.Len() != 0 {
		t.Errorf("failed append mutated window: len = %d", w.Len())
	}
}

func TestRingInvariant(t *testing.T) {
	const capacity = 5
	w, _ := New(capacity, 1)

	for n := 1; n <= 12; n++ {
		appendRow(t, w, []float64{float64(n)}, float64(n))

		want := n
		if want > capacity {
			want = capacity
		}
		if got := w.Len(); got != want {
			t.Fatalf("after %d appends: len = %d, want %d", n, got, want)
		}

		f := w.Snapshot()
		for i := 1; i < f.Rows; i++ {
			if f.Timestamps[i] < f.Timestamps[i-1] {
				t.Fatalf("after %d appends: timestamps out of order: %v", n, f.Timestamps)
			}
		}
	}
}

func TestEviction(t *testing.T) {
	const capacity = 4
	w, _ := New(capacity, 1)

	for n := 1; n <= capacity+1; n++ {
		appendRow(t, w, []float64{float64(n)}, float64(n))
	}

	f := w.Snapshot()
	if f.Rows != capacity {
		t.Fatalf("rows = %d, want %d", f.Rows, capacity)
	}
	if got := f.At(0, 0); got != 2 {
		t.Errorf("oldest = %v, want 2 (first sample evicted)", got)
	}
	if got := f.At(f.Rows-1, 0); got != float64(capacity+1) {
		t.Errorf("newest = %v, want %d", got, capacity+1)
	}
}

func TestSnapshotChronologicalMultiColumn(t *testing.T) {
	w, _ := New(3, 2)
	appendRow(t, w, []float64{1, 10}, 1)
	appendRow(t, w, []float64{2, 20}, 2)
	appendRow(t, w, []float64{3, 30}, 3)
	appendRow(t, w, []float64{4, 40}, 4)

	f := w.Snapshot()
	wantCol0 := []float64{2, 3, 4}
	wantCol1 := []float64{20, 30, 40}
	for i := range wantCol0 {
		if f.At(i, 0) != wantCol0[i] || f.At(i, 1) != wantCol1[i] {
			t.Fatalf("row %d = (%v, %v), want (%v, %v)",
				i, f.At(i, 0), f.At(i, 1), wantCol0[i], wantCol1[i])
		}
	}

	col := f.Column(1)
	for i := range wantCol1 {
		if col[i] != wantCol1[i] {
			t.Fatalf("Column(1)[%d] = %v, want %v", i, col[i], wantCol1[i])
		}
	}
}

func TestCapacityOne(t *testing.T) {
	w, _ := New(1, 1)
	appendRow(t, w, []float64{1}, 1)
	appendRow(t, w, []float64{2}, 2)

	if !w.IsFull() {
		t.Error("capacity-1 window should be full after one append")
	}

	f := w.Snapshot()
	if f.Rows != 1 || f.At(0, 0) != 2 {
		t.Errorf("snapshot = %v rows, value %v; want 1 row holding 2", f.Rows, f.At(0, 0))
	}
}

func TestNonFiniteAccepted(t *testing.T) {
	w, _ := New(2, 1)
	if err := w.Append([]float64{math.NaN()}); err != nil {
		t.Fatalf("Append(NaN): %v", err)
	}
	if err := w.Append([]float64{math.Inf(1)}); err != nil {
		t.Fatalf("Append(+Inf): %v", err)
	}

	f := w.Snapshot()
	if !math.IsNaN(f.At(0, 0)) {
		t.Errorf("stored NaN read back as %v", f.At(0, 0))
	}
	if !math.IsInf(f.At(1, 0), 1) {
		t.Errorf("stored +Inf read back as %v", f.At(1, 0))
	}
}

func TestReset(t *testing.T) {
	w, _ := New(3, 1)
	appendRow(t, w, []float64{1}, 1)
	appendRow(t, w, []float64{2}, 2)

	w.Reset()

	if w.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", w.Len())
	}
	if f := w.Snapshot(); f.Rows != 0 {
		t.Fatalf("snapshot after reset has %d rows", f.Rows)
	}

	// Window must be fully usable again.
	appendRow(t, w, []float64{7}, 7)
	f := w.Snapshot()
	if f.Rows != 1 || f.At(0, 0) != 7 {
		t.Errorf("append after reset: got %d rows, value %v", f.Rows, f.At(0, 0))
	}
}

func TestSnapshotDecoupledFromAppends(t *testing.T) {
	w, _ := New(2, 1)
	appendRow(t, w, []float64{1}, 1)
	appendRow(t, w, []float64{2}, 2)

	f := w.Snapshot()
	appendRow(t, w, []float64{99}, 3)

	if f.At(0, 0) != 1 || f.At(1, 0) != 2 {
		t.Errorf("snapshot mutated by later append: %v", f.Data)
	}
}

// TestConcurrentAppendSnapshot hammers the window from a producer and a
// consumer goroutine. Every observed row must be internally consistent:
// the value columns and the timestamp are written together, so a row whose
// columns disagree with each other or with its timestamp is a torn read.
func TestConcurrentAppendSnapshot(t *testing.T) {
	const (
		capacity = 64
		columns  = 3
		appends  = 5000
	)
	w, _ := New(capacity, columns)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		row := make([]float64, columns)
		for n := 0; n < appends; n++ {
			v := float64(n)
			for j := range row {
				row[j] = v
			}
			if err := w.AppendAt(row, v); err != nil {
				t.Errorf("AppendAt: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for k := 0; k < 2000; k++ {
			f := w.Snapshot()
			for i := 0; i < f.Rows; i++ {
				r := f.Row(i)
				for j := 1; j < columns; j++ {
					if r[j] != r[0] {
						t.Errorf("torn row: %v", r)
						return
					}
				}
				if f.Timestamps[i] != r[0] {
					t.Errorf("row/timestamp mismatch: %v vs %v", r[0], f.Timestamps[i])
					return
				}
				if i > 0 && f.Timestamps[i] < f.Timestamps[i-1] {
					t.Errorf("timestamps regressed: %v", f.Timestamps[:i+1])
					return
				}
			}
		}
	}()

	wg.Wait()
}

func TestDefaultTimestampsMonotonic(t *testing.T) {
	w, _ := New(8, 1)
	for i := 0; i < 8; i++ {
		if err := w.Append([]float64{0}); err != nil {
			t.Fatal(err)
		}
	}
	f := w.Snapshot()
	for i := 1; i < f.Rows; i++ {
		if f.Timestamps[i] < f.Timestamps[i-1] {
			t.Fatalf("default timestamps not monotonic: %v", f.Timestamps)
		}
	}
}
