package encoding

import (
	"math"
	"testing"

	"github.com/ornl-ndav/ISAW-sub008/endian"
)

func benchSpectrum(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 1e4*math.Exp(-math.Pow(float64(i-n/2)/float64(n/10), 2)) + float64(i%7)
	}

	return values
}

func BenchmarkFloatRawEncoder(b *testing.B) {
	values := benchSpectrum(4096)
	engine := endian.GetLittleEndianEngine()

	b.ReportAllocs()
	for b.Loop() {
		enc := NewFloatRawEncoder(engine)
		enc.WriteSlice(values)
		_ = enc.Bytes()
		enc.Finish()
	}
}

func BenchmarkFloatGorillaEncoder(b *testing.B) {
	values := benchSpectrum(4096)

	b.ReportAllocs()
	for b.Loop() {
		enc := NewFloatGorillaEncoder()
		enc.WriteSlice(values)
		_ = enc.Bytes()
		enc.Finish()
	}
}

func BenchmarkFloatGorillaDecoder(b *testing.B) {
	values := benchSpectrum(4096)
	enc := NewFloatGorillaEncoder()
	enc.WriteSlice(values)
	data := append([]byte(nil), enc.Bytes()...)
	enc.Finish()
	dec := NewFloatGorillaDecoder()

	b.ReportAllocs()
	for b.Loop() {
		for v := range dec.All(data, len(values)) {
			_ = v
		}
	}
}
