// Package clusterability assesses whether windowed data carries clustering
// structure using the Hopkins statistic.
//
// The statistic compares nearest-neighbor distances of uniform random probe
// points against those of points drawn from the data itself. Values near 0.5
// indicate spatial randomness; values approaching 1 indicate clusterable
// data; values below 0.5 indicate regular (grid-like) spread.
package clusterability

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/infomuscp/goeyesweb/window"
)

// sampleFraction is the share of window rows used as probe points.
const sampleFraction = 0.1

// ErrSeed is returned for a negative random seed.
var ErrSeed = errors.New("clusterability: seed must be non-negative")

// Analyzer computes Hopkins statistics over window snapshots.
type Analyzer struct {
	src rand.Source
}

// New creates an analyzer with unseeded (time-dependent) sampling.
func New() *Analyzer {
	return &Analyzer{}
}

// NewSeeded creates an analyzer with reproducible sampling.
func NewSeeded(seed int64) (*Analyzer, error) {
	if seed < 0 {
		return nil, ErrSeed
	}
	return &Analyzer{src: rand.NewSource(uint64(seed))}, nil
}

// Analyze computes the Hopkins statistic over all rows of the window,
// treating each row as one point in column-count-dimensional space. The
// result is NaN until the window is full, when fewer than two rows exist,
// or when any feature dimension has zero range.
func (a *Analyzer) Analyze(w *window.SlidingWindow) float64 {
	if !w.IsFull() {
		return math.NaN()
	}
	return a.Hopkins(w.Snapshot())
}

// Hopkins computes the statistic for an arbitrary frame.
func (a *Analyzer) Hopkins(f *window.Frame) float64 {
	n, dims := f.Rows, f.Cols
	if n < 2 || dims < 1 {
		return math.NaN()
	}

	// Per-dimension bounds of the data space.
	mins := make([]float64, dims)
	maxs := make([]float64, dims)
	for j := 0; j < dims; j++ {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}
	for i := 0; i < n; i++ {
		row := f.Row(i)
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	for j := 0; j < dims; j++ {
		if !(maxs[j] > mins[j]) {
			return math.NaN()
		}
	}

	probes := int(sampleFraction * float64(n))
	if probes < 1 {
		probes = 1
	}
	if probes > n-1 {
		probes = n - 1
	}

	src := a.src
	uniforms := make([]distuv.Uniform, dims)
	for j := 0; j < dims; j++ {
		uniforms[j] = distuv.Uniform{Min: mins[j], Max: maxs[j], Src: src}
	}

	indexDist := distuv.Uniform{Min: 0, Max: float64(n), Src: src}

	// u: distance from data-drawn probes to their nearest other data
	// point. w: distance from uniform probes to their nearest data point.
	var uSum, wSum float64
	probe := make([]float64, dims)
	for p := 0; p < probes; p++ {
		idx := int(indexDist.Rand())
		if idx >= n {
			idx = n - 1
		}
		uSum += nearestDistance(f, f.Row(idx), idx)

		for j := range probe {
			probe[j] = uniforms[j].Rand()
		}
		wSum += nearestDistance(f, probe, -1)
	}

	denom := uSum + wSum
	if denom == 0 {
		return math.NaN()
	}
	return wSum / denom
}

// nearestDistance returns the Euclidean distance from point to the nearest
// row of the frame, skipping row exclude (pass -1 to include all rows).
func nearestDistance(f *window.Frame, point []float64, exclude int) float64 {
	best := math.Inf(1)
	for i := 0; i < f.Rows; i++ {
		if i == exclude {
			continue
		}
		row := f.Row(i)
		var sq float64
		for j, v := range row {
			d := point[j] - v
			sq += d * d
		}
		if sq < best {
			best = sq
		}
	}
	return math.Sqrt(best)
}
