package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer
// =============================================================================

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, cap(bb.B))

	bb.B = append(bb.B, "abcd"...)
	require.Equal(t, []byte("abcd"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, cap(bb.B), "reset keeps capacity")
}

func TestByteBuffer_ExtendAndSlice(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.ExtendOrGrow(8)
	require.Equal(t, 8, cap(bb.B), "no growth while capacity suffices")

	copy(bb.Slice(0, 8), "12345678")
	bb.ExtendOrGrow(4)
	require.Equal(t, 12, bb.Len())
	require.Equal(t, []byte("12345678"), bb.Slice(0, 8))

	require.Panics(t, func() { bb.Slice(4, 2) })
	require.Panics(t, func() { bb.Slice(0, cap(bb.B)+1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name     string
		filled   int
		request  int
		minTotal int
	}{
		{"sufficient capacity", 0, 100, 1024},
		{"small buffer", 1024, 1, 1024 + growStep},
		{"huge request", 1024, growStep * 10, 1024 + growStep*10},
		{"large buffer", 4*growStep + 1024, 2048, 4*growStep + 1024 + 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(1024)
			bb.B = append(bb.B, make([]byte, tt.filled)...)
			bb.Grow(tt.request)

			require.Equal(t, tt.filled, bb.Len(), "grow must not change length")
			require.GreaterOrEqual(t, cap(bb.B), tt.minTotal)
		})
	}
}

func TestByteBuffer_GrowPreservesData(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, "spectrum"...)
	bb.Grow(growStep * 2)
	require.Equal(t, []byte("spectrum"), bb.Bytes())

	before := cap(bb.B)
	bb.Grow(0)
	require.Equal(t, before, cap(bb.B))
}

// =============================================================================
// Pools
// =============================================================================

func TestColumnAndPayloadPools(t *testing.T) {
	col := GetColumnBuffer()
	payload := GetPayloadBuffer()
	require.Equal(t, 0, col.Len())
	require.Equal(t, 0, payload.Len())
	require.GreaterOrEqual(t, cap(col.B), ColumnBufferDefaultSize)
	require.GreaterOrEqual(t, cap(payload.B), PayloadBufferDefaultSize)

	col.B = append(col.B, 'x')
	payload.B = append(payload.B, 'y')
	PutColumnBuffer(col)
	PutPayloadBuffer(payload)

	again := GetColumnBuffer()
	require.Equal(t, 0, again.Len(), "pooled buffers come back reset")
	PutColumnBuffer(again)

	require.NotPanics(t, func() {
		PutColumnBuffer(nil)
		PutPayloadBuffer(nil)
	})
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	big := p.Get()
	big.Grow(1024)
	require.Greater(t, cap(big.B), 128)
	p.Put(big)

	next := p.Get()
	require.LessOrEqual(t, cap(next.B), 128, "oversized buffers are discarded")

	unbounded := NewByteBufferPool(64, 0)
	b := unbounded.Get()
	b.Grow(4096)
	require.NotPanics(t, func() { unbounded.Put(b) })
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				bb.B = append(bb.B, byte(id))
				if bb.Len() != 1 || bb.B[0] != byte(id) {
					t.Errorf("buffer shared between goroutines")
				}
				PutPayloadBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
