package compress

import (
	"testing"

	"github.com/ornl-ndav/ISAW-sub008/format"
)

func BenchmarkCompress(b *testing.B) {
	data := spectrumPayload(8192)
	for _, ct := range allTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := spectrumPayload(8192)
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, _ := GetCodec(ct)
		packed, _ := codec.Compress(data)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(packed)
			}
		})
	}
}
