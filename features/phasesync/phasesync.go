// Package phasesync computes phase synchronization between two windowed
// signals.
//
// The phase locking value (PLV) is the magnitude of the mean complex phase
// difference between the instantaneous phases of two signals, extracted via
// the FFT-based Hilbert analytic signal. A PLV of 1 means perfect phase
// locking, 0 means no phase relationship. The transform assumes narrowband
// or pre-filtered input; band isolation is the caller's responsibility.
package phasesync

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/infomuscp/goeyesweb/window"
)

// Errors returned by the analyzer.
var (
	ErrColumns   = errors.New("phasesync: window must have exactly 2 columns")
	ErrHistory   = errors.New("phasesync: history size must be positive")
	ErrThreshold = errors.New("phasesync: phase threshold must be in [0, 1]")
)

// PhaseStatus classifies a PLV against the configured threshold.
type PhaseStatus int

const (
	// PhaseUnknown means no PLV has been computed (window not full).
	PhaseUnknown PhaseStatus = iota
	// InPhase means the PLV exceeded the threshold.
	InPhase
	// OutOfPhase means the PLV did not exceed the threshold.
	OutOfPhase
)

// String returns a display name for the status.
func (s PhaseStatus) String() string {
	switch s {
	case InPhase:
		return "in phase"
	case OutOfPhase:
		return "out of phase"
	default:
		return "unknown"
	}
}

// Analyzer computes the PLV between the two columns of a window and keeps a
// bounded history of recent values. Safe for concurrent use.
type Analyzer struct {
	threshold float64

	mu      sync.Mutex
	history []float64
	start   int
	count   int
}

// New creates an analyzer keeping historySize recent PLV values and
// classifying phase status against threshold.
func New(historySize int, threshold float64) (*Analyzer, error) {
	if historySize <= 0 {
		return nil, ErrHistory
	}
	if threshold < 0 || threshold > 1 {
		return nil, ErrThreshold
	}
	return &Analyzer{
		threshold: threshold,
		history:   make([]float64, historySize),
	}, nil
}

// Result holds one synchronization measurement.
type Result struct {
	PLV    float64 // NaN when the window is not full
	Status PhaseStatus
}

// Analyze computes the PLV between the two columns of the window. The
// window must have exactly two columns; until it is full the PLV is NaN
// with PhaseUnknown status.
func (a *Analyzer) Analyze(w *window.SlidingWindow) (Result, error) {
	if w.Columns() != 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrColumns, w.Columns())
	}
	if !w.IsFull() {
		return Result{PLV: math.NaN(), Status: PhaseUnknown}, nil
	}

	f := w.Snapshot()
	sig1 := center(f.Column(0))
	sig2 := center(f.Column(1))

	phase1, err := hilbertPhases(sig1)
	if err != nil {
		return Result{}, err
	}
	phase2, err := hilbertPhases(sig2)
	if err != nil {
		return Result{}, err
	}

	plv := phaseLockingValue(phase1, phase2)
	a.record(plv)

	status := OutOfPhase
	if plv > a.threshold {
		status = InPhase
	}
	return Result{PLV: plv, Status: status}, nil
}

// History returns the recorded PLV values, oldest first.
func (a *Analyzer) History() []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]float64, a.count)
	for i := 0; i < a.count; i++ {
		out[i] = a.history[(a.start+i)%len(a.history)]
	}
	return out
}

func (a *Analyzer) record(plv float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.count < len(a.history) {
		a.history[(a.start+a.count)%len(a.history)] = plv
		a.count++
		return
	}
	a.history[a.start] = plv
	a.start = (a.start + 1) % len(a.history)
}

// center subtracts the mean, removing DC bias before phase extraction.
func center(series []float64) []float64 {
	var mean float64
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v - mean
	}
	return out
}

// hilbertPhases returns the instantaneous phase of the series via the
// analytic signal: zero the negative frequencies of the spectrum, double the
// positive ones, and inverse-transform.
func hilbertPhases(series []float64) ([]float64, error) {
	n := len(series)
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("phasesync: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range series {
		in[i] = complex(v, 0)
	}
	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("phasesync: forward fft: %w", err)
	}

	// Analytic-signal filter: keep DC and Nyquist, double positive
	// frequencies, zero negative ones.
	half := fftSize / 2
	for i := 1; i < half; i++ {
		spec[i] *= 2
	}
	for i := half + 1; i < fftSize; i++ {
		spec[i] = 0
	}

	analytic := make([]complex128, fftSize)
	if err := plan.Inverse(analytic, spec); err != nil {
		return nil, fmt.Errorf("phasesync: inverse fft: %w", err)
	}

	phases := make([]float64, n)
	for i := 0; i < n; i++ {
		phases[i] = cmplx.Phase(analytic[i])
	}
	return phases, nil
}

// phaseLockingValue computes |mean(exp(i*(phase1-phase2)))|.
func phaseLockingValue(phase1, phase2 []float64) float64 {
	var sumRe, sumIm float64
	for i := range phase1 {
		d := phase1[i] - phase2[i]
		sumRe += math.Cos(d)
		sumIm += math.Sin(d)
	}
	n := float64(len(phase1))
	return math.Hypot(sumRe/n, sumIm/n)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
