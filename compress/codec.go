package compress

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/format"
)

// Compressor compresses a complete encoded payload.
//
// The returned slice is owned by the caller unless documented otherwise; the
// input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. It returns an error for corrupt input or
// data produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats summarises one compression.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed/original, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved fraction as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1 - s.Ratio()) * 100
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.1f%% saved)", s.Algorithm, s.OriginalSize, s.CompressedSize, s.SpaceSavings())
}

// maxRawSize bounds the decoded size a block header may claim, so corrupt
// length prefixes fail before allocating.
const maxRawSize = 256 << 20

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in codec for t.
func GetCodec(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: compression %s (0x%02x)", errs.ErrInvalidCompressionCfg, t, uint8(t))
}

// Measure compresses data with the codec for t and reports the sizes.
func Measure(t format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(t)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("compress %s: %w", t, err)
	}

	return out, Stats{Algorithm: t, OriginalSize: len(data), CompressedSize: len(out)}, nil
}
