package entropy

// CoarseGrain down-samples a series by replacing contiguous, non-overlapping
// blocks of length scale with their arithmetic mean. Scale 1 returns a copy
// of the input. A trailing partial block is discarded. The result is empty
// when scale < 1 or the series is shorter than scale.
func CoarseGrain(series []float64, scale int) []float64 {
	if scale < 1 || len(series) < scale {
		return nil
	}

	if scale == 1 {
		out := make([]float64, len(series))
		copy(out, series)
		return out
	}

	n := len(series) / scale
	out := make([]float64, n)
	inv := 1.0 / float64(scale)
	for i := 0; i < n; i++ {
		var sum float64
		base := i * scale
		for k := 0; k < scale; k++ {
			sum += series[base+k]
		}
		out[i] = sum * inv
	}

	return out
}
