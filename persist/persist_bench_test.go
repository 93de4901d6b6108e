package persist

import (
	"math"
	"testing"

	"github.com/ornl-ndav/ISAW-sub008/format"
	"github.com/ornl-ndav/ISAW-sub008/scale"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

func benchSeries(b *testing.B) series.Series {
	b.Helper()
	sc, err := scale.Uniform(0, 20000, 8192)
	if err != nil {
		b.Fatal(err)
	}

	values := make([]float64, sc.Len())
	for i := range values {
		values[i] = math.Round(1000*math.Exp(-math.Pow(sc.At(i)-9000, 2)/2e6)) + float64(i%3)
	}

	s, err := series.NewSampled(sc, values, series.WithAttributes(everyKindAttributes()))
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func BenchmarkCompress(b *testing.B) {
	s := benchSeries(b)
	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Compress(s, 0, WithCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInflate(b *testing.B) {
	data, err := Compress(benchSeries(b), 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Inflate(data); err != nil {
			b.Fatal(err)
		}
	}
}
