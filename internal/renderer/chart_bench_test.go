package renderer

import (
	"io"
	"slices"
	"testing"

	"github.com/linuxmatters/rankhist/internal/histogram"
)

// generateTestRanks creates a long-tailed rank series for benchmarking
func generateTestRanks(n int) histogram.RankSeries {
	ranks := make(histogram.RankSeries, n)
	for i := range ranks {
		ranks[i] = 100000 / (i + 1)
	}
	slices.Sort(ranks)
	return ranks
}

// BenchmarkRenderImage benchmarks drawing at the default geometry
func BenchmarkRenderImage(b *testing.B) {
	ranks := generateTestRanks(5000)
	yMax, err := histogram.AxisScale(ranks.Max())
	if err != nil {
		b.Fatal(err)
	}
	pc := testPlotConfig(1280, 960)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RenderImage(ranks, yMax, pc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncode compares the cost of each output format
func BenchmarkEncode(b *testing.B) {
	ranks := generateTestRanks(500)
	yMax, err := histogram.AxisScale(ranks.Max())
	if err != nil {
		b.Fatal(err)
	}
	img, err := RenderImage(ranks, yMax, testPlotConfig(1280, 960))
	if err != nil {
		b.Fatal(err)
	}

	for _, format := range []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF} {
		b.Run(string(format), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := Encode(io.Discard, img, format); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
