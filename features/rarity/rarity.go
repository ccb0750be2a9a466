// Package rarity scores how unusual the newest sample in a window is
// relative to the window's empirical distribution.
//
// The window's values are binned into a square-root-rule histogram. The
// rarity of the newest sample combines its bin's distance from the modal bin
// with the probability gap between the two, scaled by a sensitivity factor:
// rarity = |modalBin - sampleBin| · (p(modal) - p(sample)) · alpha.
package rarity

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/infomuscp/goeyesweb/window"
)

// ErrAlpha is returned when the sensitivity factor is not positive.
var ErrAlpha = errors.New("rarity: alpha must be positive")

// Analyzer scores sample rarity with a fixed sensitivity factor.
type Analyzer struct {
	alpha float64
}

// New creates an analyzer with the given sensitivity factor.
func New(alpha float64) (*Analyzer, error) {
	if alpha <= 0 {
		return nil, ErrAlpha
	}
	return &Analyzer{alpha: alpha}, nil
}

// Analyze scores the newest value of the window's first column. Until the
// window is full the score is NaN. A degenerate window whose values span no
// range scores 0: every sample falls in the single occupied bin.
func (a *Analyzer) Analyze(w *window.SlidingWindow) float64 {
	if !w.IsFull() {
		return math.NaN()
	}

	f := w.Snapshot()
	values := f.Column(0)
	n := len(values)

	minVal, err := stats.Min(values)
	if err != nil {
		return math.NaN()
	}
	maxVal, err := stats.Max(values)
	if err != nil {
		return math.NaN()
	}
	if maxVal <= minVal {
		return 0
	}

	bins := int(math.Sqrt(float64(n)))
	if bins < 1 {
		bins = 1
	}

	counts := make([]int, bins)
	width := (maxVal - minVal) / float64(bins)
	for _, v := range values {
		counts[binIndex(v, minVal, width, bins)]++
	}

	modalBin := 0
	for i, c := range counts {
		if c > counts[modalBin] {
			modalBin = i
		}
	}

	sampleBin := binIndex(values[n-1], minVal, width, bins)

	pModal := float64(counts[modalBin]) / float64(n)
	pSample := float64(counts[sampleBin]) / float64(n)

	binDistance := float64(modalBin - sampleBin)
	if binDistance < 0 {
		binDistance = -binDistance
	}

	return binDistance * (pModal - pSample) * a.alpha
}

func binIndex(v, minVal, width float64, bins int) int {
	idx := int((v - minVal) / width)
	if idx < 0 {
		return 0
	}
	if idx >= bins {
		return bins - 1
	}
	return idx
}
