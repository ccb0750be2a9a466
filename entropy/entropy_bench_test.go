package entropy

import (
	"fmt"
	"testing"

	"github.com/infomuscp/goeyesweb/internal/testutil"
)

func BenchmarkSampleEntropy(b *testing.B) {
	sizes := []int{250, 500, 1000}
	for _, n := range sizes {
		series := testutil.NoisySine(1, 100, 1, 0.3, 1, n)
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				SampleEntropy(series, 2, 0.15)
			}
		})
	}
}

func BenchmarkComplexityIndex(b *testing.B) {
	series := testutil.NoisySine(1, 100, 1, 0.3, 1, 3000)
	cfg := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ComplexityIndex(series, cfg)
	}
}
