package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const (
	lz4Stored     byte = 0
	lz4Compressed byte = 1
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor writes LZ4 blocks framed as
//
//	uvarint(raw length) | mode byte | block
//
// LZ4 blocks do not record their decoded size, so the prefix lets Decompress
// allocate exactly once. Incompressible input is stored verbatim.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor returns the LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data; empty input yields nil.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	head := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64+1), uint64(len(data)))
	dst := make([]byte, len(head)+1+lz4.CompressBlockBound(len(data)))
	copy(dst, head)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[len(head)+1:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		dst = append(dst[:len(head)], lz4Stored)
		return append(dst, data...), nil
	}

	dst[len(head)] = lz4Compressed

	return dst[:len(head)+1+n], nil
}

// Decompress decodes a block written by Compress.
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	rawLen, n := binary.Uvarint(data)
	if n <= 0 || n >= len(data) {
		return nil, errors.New("lz4: malformed length prefix")
	}
	if rawLen > maxRawSize {
		return nil, fmt.Errorf("lz4: raw length %d exceeds limit", rawLen)
	}

	mode, body := data[n], data[n+1:]
	switch mode {
	case lz4Stored:
		if uint64(len(body)) != rawLen {
			return nil, fmt.Errorf("lz4: stored block has %d bytes, want %d", len(body), rawLen)
		}

		return append([]byte(nil), body...), nil
	case lz4Compressed:
		out := make([]byte, rawLen)
		got, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if uint64(got) != rawLen {
			return nil, fmt.Errorf("lz4: decoded %d bytes, want %d", got, rawLen)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("lz4: unknown block mode %d", mode)
	}
}
