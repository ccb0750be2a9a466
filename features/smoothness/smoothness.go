// Package smoothness quantifies movement smoothness from windowed motion
// signals using two complementary metrics: SPARC (spectral arc length) and
// jerk RMS.
//
// SPARC measures the arc length of the normalized magnitude spectrum; it is
// dimensionless and independent of movement amplitude and duration. Values
// are negative, and values closer to zero indicate smoother movement. Jerk
// RMS is the root mean square of the differentiated signal; lower is
// smoother.
package smoothness

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/infomuscp/goeyesweb/window"
)

// ErrRate is returned when the sampling rate is not positive.
var ErrRate = errors.New("smoothness: sampling rate must be positive")

// minSamples is the minimum window occupancy for a meaningful estimate.
const minSamples = 5

// Analyzer computes smoothness metrics at a fixed sampling rate.
type Analyzer struct {
	rateHz float64
}

// New creates an analyzer for signals sampled at rateHz.
func New(rateHz float64) (*Analyzer, error) {
	if rateHz <= 0 {
		return nil, ErrRate
	}
	return &Analyzer{rateHz: rateHz}, nil
}

// Result holds the smoothness metrics of one analysis pass. Both values are
// NaN when the window holds fewer than five samples.
type Result struct {
	SPARC   float64
	JerkRMS float64
}

// Analyze computes smoothness metrics for the first feature column of the
// frame, matching the convention that multi-column windows carry the signal
// of interest in column 0.
func (a *Analyzer) Analyze(f *window.Frame) Result {
	if f.Rows < minSamples {
		return Result{SPARC: math.NaN(), JerkRMS: math.NaN()}
	}

	series := f.Column(0)
	return Result{
		SPARC:   a.SPARC(series),
		JerkRMS: a.JerkRMS(series),
	}
}

// SPARC computes the spectral arc length of the series: the arc length of
// the max-normalized magnitude spectrum over the positive frequency axis,
// negated. Returns NaN for series shorter than two samples.
func (a *Analyzer) SPARC(series []float64) float64 {
	n := len(series)
	if n < 2 {
		return math.NaN()
	}

	fftSize := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return math.NaN()
	}

	in := make([]complex128, fftSize)
	for i, v := range series {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return math.NaN()
	}

	// Magnitude of the positive-frequency half.
	half := fftSize / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	peak := 0.0
	for _, v := range mag {
		if v > peak {
			peak = v
		}
	}
	if peak > 0 {
		inv := 1.0 / peak
		for i := range mag {
			mag[i] *= inv
		}
	}

	// Frequency spacing of the padded spectrum in Hz.
	df := a.rateHz / float64(fftSize)

	var arc float64
	for i := 1; i < half; i++ {
		dy := mag[i] - mag[i-1]
		arc += math.Sqrt(df*df + dy*dy)
	}

	return -arc
}

// JerkRMS computes the RMS of the first difference of the series divided by
// the sampling interval. Returns NaN for series shorter than two samples.
func (a *Analyzer) JerkRMS(series []float64) float64 {
	n := len(series)
	if n < 2 {
		return math.NaN()
	}

	dt := 1.0 / a.rateHz
	var sumSq float64
	for i := 1; i < n; i++ {
		j := (series[i] - series[i-1]) / dt
		sumSq += j * j
	}

	return math.Sqrt(sumSq / float64(n-1))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
