package rarity

import (
	"math"
	"testing"

	"github.com/infomuscp/goeyesweb/window"
)

func fill(t *testing.T, values []float64) *window.SlidingWindow {
	t.Helper()
	w, err := window.New(len(values), 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if err := w.AppendAt([]float64{v}, float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err != ErrAlpha {
		t.Errorf("New(0): got %v, want ErrAlpha", err)
	}
	if _, err := New(0.5); err != nil {
		t.Errorf("New(0.5): unexpected error %v", err)
	}
}

func TestNotFullIsNaN(t *testing.T) {
	a, _ := New(0.5)
	w, _ := window.New(10, 1)
	_ = w.AppendAt([]float64{1}, 0)

	if got := a.Analyze(w); !math.IsNaN(got) {
		t.Errorf("not-full window: got %v, want NaN", got)
	}
}

func TestConstantWindowScoresZero(t *testing.T) {
	a, _ := New(0.5)
	values := make([]float64, 25)
	for i := range values {
		values[i] = 7
	}

	if got := a.Analyze(fill(t, values)); got != 0 {
		t.Errorf("constant window: got %v, want 0", got)
	}
}

func TestModalSampleScoresZero(t *testing.T) {
	// The newest sample sits in the modal bin, so both the bin distance
	// and the probability gap vanish.
	a, _ := New(0.5)
	values := make([]float64, 36)
	for i := range values {
		values[i] = 1
	}
	values[0] = 100 // a lone outlier stretches the range
	values[len(values)-1] = 1

	if got := a.Analyze(fill(t, values)); got != 0 {
		t.Errorf("modal newest sample: got %v, want 0", got)
	}
}

func TestOutlierScoresPositive(t *testing.T) {
	a, _ := New(0.5)
	values := make([]float64, 36)
	for i := range values {
		values[i] = 1
	}
	values[len(values)-1] = 100 // newest sample is the outlier

	got := a.Analyze(fill(t, values))
	if !(got > 0) {
		t.Errorf("outlier newest sample: got %v, want > 0", got)
	}
}

func TestAlphaScalesScore(t *testing.T) {
	values := make([]float64, 36)
	for i := range values {
		values[i] = 1
	}
	values[len(values)-1] = 100

	a1, _ := New(0.5)
	a2, _ := New(1.0)

	s1 := a1.Analyze(fill(t, values))
	s2 := a2.Analyze(fill(t, values))
	if math.Abs(s2-2*s1) > 1e-12 {
		t.Errorf("doubling alpha: got %v and %v, want exact 2x", s1, s2)
	}
}
