// Package moments computes per-column statistical moments of a window
// snapshot: mean, sample standard deviation, skewness, and excess kurtosis.
// Higher moments use Welford's online algorithm in a single pass for
// numerical stability.
package moments

import (
	"math"

	"github.com/infomuscp/goeyesweb/window"
)

// Minimum sample counts per moment. Below the threshold the moment is NaN.
const (
	minSamplesMean     = 1
	minSamplesStdDev   = 2
	minSamplesSkewness = 3
	minSamplesKurtosis = 4
)

// Moments holds the four moments of one feature column. Moments that cannot
// be estimated from the available samples are NaN.
type Moments struct {
	Count    int
	Mean     float64
	StdDev   float64 // sample standard deviation (n-1 denominator)
	Skewness float64 // population skewness
	Kurtosis float64 // excess kurtosis
}

// Analyze computes moments for every feature column of the frame.
func Analyze(f *window.Frame) []Moments {
	out := make([]Moments, f.Cols)
	for j := range out {
		out[j] = Calculate(f.Column(j))
	}
	return out
}

// Calculate computes all four moments of one series in a single pass.
func Calculate(series []float64) Moments {
	n := len(series)
	m := Moments{
		Count:    n,
		Mean:     math.NaN(),
		StdDev:   math.NaN(),
		Skewness: math.NaN(),
		Kurtosis: math.NaN(),
	}
	if n < minSamplesMean {
		return m
	}

	// Welford accumulators for the central moments.
	var mean, m2, m3, m4 float64
	for i, x := range series {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)
	m.Mean = mean

	if n >= minSamplesStdDev {
		m.StdDev = math.Sqrt(m2 / (nf - 1))
	}

	variance := m2 / nf
	if variance > 0 {
		if n >= minSamplesSkewness {
			m.Skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		}
		if n >= minSamplesKurtosis {
			m.Kurtosis = (m4/nf)/(variance*variance) - 3
		}
	}

	return m
}
