package fit

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkAnalyze(b *testing.B) {
	for _, n := range []int{100, 10_000} {
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range n {
			x[i] = float64(i + 1)
			y[i] = 3 + 20/x[i] + 0.01*math.Sin(x[i])
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Analyze(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
