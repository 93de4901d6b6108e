package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor stores a payload as a single S2 block. S2 trades some ratio
// against Zstd for much faster decoding, which suits spectra that are
// inflated often.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress uses the "better" S2 level; payloads are small and written once.
// Empty input yields nil.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress checks the length recorded in the block against maxRawSize
// before allocating the output.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}
	if n > maxRawSize {
		return nil, fmt.Errorf("s2: decoded length %d exceeds limit", n)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}

	return out, nil
}
