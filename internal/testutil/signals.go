package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave sampled at sampleRate Hz.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates i.i.d. uniform noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant generates a constant-valued series.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates a linear ramp from start to end inclusive.
func Ramp(start, end float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// NoisySine generates a sine wave with additive seeded uniform noise.
func NoisySine(freqHz, sampleRate, amplitude, noiseAmplitude float64, seed int64, length int) []float64 {
	out := Sine(freqHz, sampleRate, amplitude, length)
	noise := Noise(seed, noiseAmplitude, length)
	for i := range out {
		out[i] += noise[i]
	}
	return out
}

// GaussianClusters generates two seeded gaussian clusters in one dimension,
// centered at c1 and c2 with the given spread.
func GaussianClusters(c1, c2, spread float64, seed int64, perCluster int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, 0, 2*perCluster)
	for i := 0; i < perCluster; i++ {
		out = append(out, c1+rng.NormFloat64()*spread)
	}
	for i := 0; i < perCluster; i++ {
		out = append(out, c2+rng.NormFloat64()*spread)
	}
	return out
}
