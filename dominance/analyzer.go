package dominance

import (
	"errors"
	"fmt"
	"math"

	"github.com/infomuscp/goeyesweb/entropy"
	"github.com/infomuscp/goeyesweb/window"
)

// ErrNoMethods is returned when an analyzer is constructed without any
// requested methods.
var ErrNoMethods = errors.New("dominance: at least one method is required")

// Analyzer computes dominance metrics over full window snapshots. It is
// stateless between invocations; every call recomputes all indices from the
// snapshot, so analyzers over distinct windows may run concurrently.
type Analyzer struct {
	cfg       entropy.Config
	requested [numMethods]bool
}

// Option mutates the analyzer's entropy configuration.
type Option = entropy.Option

// New builds an analyzer for the given methods. The method set and entropy
// parameters are validated here once; a failed construction leaves no usable
// analyzer.
func New(methods []Method, opts ...Option) (*Analyzer, error) {
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}

	a := &Analyzer{cfg: entropy.Apply(opts...)}
	for _, m := range methods {
		if m < 0 || m >= numMethods {
			return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
		}
		a.requested[m] = true
	}

	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Config returns the entropy configuration in effect.
func (a *Analyzer) Config() entropy.Config { return a.cfg }

// Requested reports whether the analyzer computes the given method.
func (a *Analyzer) Requested(m Method) bool {
	return m >= 0 && m < numMethods && a.requested[m]
}

// Result holds one analysis pass. When Available is false (window not full
// or fewer rows than MinPoints), every requested metric is NaN: warm-up is
// an expected state, not a failure.
type Result struct {
	Available bool

	// ComplexityIndices has one entry per feature column.
	// Nil unless MethodComplexityIndex was requested.
	ComplexityIndices []float64

	// DominanceScores has one entry per feature column.
	// Nil unless MethodDominanceScore was requested.
	DominanceScores []float64

	// LeaderIndex and LeaderValue identify the minimum-complexity column.
	// LeaderIndex is -1 unless MethodLeaderIdentification was requested
	// and data was available.
	LeaderIndex int
	LeaderValue float64
}

// Analyze snapshots the window and computes the requested metrics, one
// complexity index per feature column. The window must be full and hold at
// least MinPoints rows; otherwise the result is marked unavailable.
func (a *Analyzer) Analyze(w *window.SlidingWindow) Result {
	if !w.IsFull() || w.Len() < a.cfg.MinPoints {
		return a.unavailable(w.Columns())
	}

	frame := w.Snapshot()

	indices := make([]float64, frame.Cols)
	for j := 0; j < frame.Cols; j++ {
		indices[j] = entropy.ComplexityIndex(frame.Column(j), a.cfg)
	}

	res := Result{Available: true, LeaderIndex: -1, LeaderValue: math.NaN()}

	if a.requested[MethodComplexityIndex] {
		res.ComplexityIndices = indices
	}
	if a.requested[MethodDominanceScore] {
		res.DominanceScores = dominanceScores(indices)
	}
	if a.requested[MethodLeaderIdentification] {
		res.LeaderIndex, res.LeaderValue = leader(indices)
	}

	return res
}

func (a *Analyzer) unavailable(columns int) Result {
	res := Result{LeaderIndex: -1, LeaderValue: math.NaN()}
	if a.requested[MethodComplexityIndex] {
		res.ComplexityIndices = nanSlice(columns)
	}
	if a.requested[MethodDominanceScore] {
		res.DominanceScores = nanSlice(columns)
	}
	return res
}

// dominanceScores maps complexity indices to scores via 1 - ci/max. Lower
// complexity yields a higher score. When the maximum is not positive every
// score is zero.
func dominanceScores(indices []float64) []float64 {
	scores := make([]float64, len(indices))

	maxCI := math.Inf(-1)
	for _, ci := range indices {
		if ci > maxCI {
			maxCI = ci
		}
	}
	if !(maxCI > 0) {
		return scores
	}

	for i, ci := range indices {
		scores[i] = 1 - ci/maxCI
	}
	return scores
}

// leader returns the index and value of the minimum complexity index using a
// stable scan: ties resolve to the lowest column index.
func leader(indices []float64) (int, float64) {
	if len(indices) == 0 {
		return -1, math.NaN()
	}
	best := 0
	for i := 1; i < len(indices); i++ {
		if indices[i] < indices[best] {
			best = i
		}
	}
	return best, indices[best]
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
