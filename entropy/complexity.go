package entropy

import "gonum.org/v1/gonum/integrate"

// ComplexityIndex integrates sample entropy across time scales into a single
// index. Scales run contiguously from 1 up to cfg.MaxScale; the sweep halts
// at the first scale whose coarse-grained series is shorter than
// cfg.MinPoints. With two or more scale values the index is the trapezoidal
// integral over the scale axis; with exactly one it is that value; with none
// it is 0.0.
func ComplexityIndex(series []float64, cfg Config) float64 {
	values := make([]float64, 0, cfg.MaxScale)
	for scale := 1; scale <= cfg.MaxScale; scale++ {
		coarse := CoarseGrain(series, scale)
		if len(coarse) < cfg.MinPoints {
			break
		}
		values = append(values, SampleEntropy(coarse, cfg.M, cfg.R))
	}

	switch len(values) {
	case 0:
		return 0.0
	case 1:
		return values[0]
	}

	scales := make([]float64, len(values))
	for i := range scales {
		scales[i] = float64(i + 1)
	}
	return integrate.Trapezoidal(scales, values)
}
