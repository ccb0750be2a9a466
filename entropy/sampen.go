package entropy

import "math"

// minStdDev is the degeneracy threshold below which a signal is treated as
// constant and its entropy as undefined.
const minStdDev = 1e-10

// SampleEntropy computes the sample entropy of one series with embedding
// dimension m and tolerance ratio r (fraction of the standard deviation,
// applied after standardization).
//
// It returns NaN when the series is too short (len <= m+10) or near-constant;
// both mean "not enough information", not an error. When either template
// family has at most one member or no matches at all, the result is 0.0:
// no detectable repeating structure is defined as minimum irregularity for
// compatibility with the reference method.
func SampleEntropy(series []float64, m int, r float64) float64 {
	n := len(series)
	if m < 1 || n <= m+10 {
		return math.NaN()
	}

	var mean float64
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	var sqSum float64
	for _, v := range series {
		d := v - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / float64(n))
	if std < minStdDev {
		return math.NaN()
	}

	u := make([]float64, n)
	invStd := 1.0 / std
	for i, v := range series {
		u[i] = (v - mean) * invStd
	}

	nm := n - m      // templates of length m
	nm1 := n - m - 1 // templates of length m+1
	if nm <= 1 || nm1 <= 1 {
		return 0.0
	}

	bMatches := templateMatches(u, m, nm, r)
	aMatches := templateMatches(u, m+1, nm1, r)
	if bMatches == 0 || aMatches == 0 {
		return 0.0
	}

	b := float64(bMatches) / float64(nm*(nm-1))
	a := float64(aMatches) / float64(nm1*(nm1-1))

	return -math.Log(a / b)
}

// templateMatches counts ordered pairs (i, j), i != j, of length-tmplLen
// templates within Chebyshev distance < r. The first numTmpl windows of u are
// the template family. Each unordered match is counted twice, which matches
// summing per-template neighbor counts over all templates.
func templateMatches(u []float64, tmplLen, numTmpl int, r float64) int {
	matches := 0
	for i := 0; i < numTmpl; i++ {
		for j := i + 1; j < numTmpl; j++ {
			within := true
			for k := 0; k < tmplLen; k++ {
				d := u[i+k] - u[j+k]
				if d < 0 {
					d = -d
				}
				if d >= r {
					within = false
					break
				}
			}
			if within {
				matches += 2
			}
		}
	}
	return matches
}
