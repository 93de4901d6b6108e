package pool

import "sync"

// Buffer sizes of the shared pools. A column buffer holds one encoded
// column; a payload buffer holds a whole series payload before compression.
// Buffers that grew past the threshold are dropped instead of pooled.
const (
	ColumnBufferDefaultSize   = 8 << 10   // 8KiB
	ColumnBufferMaxThreshold  = 128 << 10 // 128KiB
	PayloadBufferDefaultSize  = 64 << 10  // 64KiB
	PayloadBufferMaxThreshold = 4 << 20   // 4MiB

	growStep = 16 << 10
)

// ByteBuffer is an append-only byte slice owned by one encoder at a time.
// Encoders append to B directly.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer returns an empty buffer with capacity size.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

func (bb *ByteBuffer) Bytes() []byte { return bb.B }
func (bb *ByteBuffer) Len() int      { return len(bb.B) }
func (bb *ByteBuffer) Reset()        { bb.B = bb.B[:0] }

// Slice returns B[start:end] where end may reach into spare capacity.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: slice bounds out of range")
	}

	return bb.B[start:end]
}

// Grow makes room for n more bytes. Buffers below 4*growStep grow by at
// least growStep, larger ones by at least a quarter of their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	by := growStep
	if cap(bb.B) > 4*growStep {
		by = cap(bb.B) / 4
	}
	by = max(by, n)

	grown := make([]byte, len(bb.B), len(bb.B)+by)
	copy(grown, bb.B)
	bb.B = grown
}

// ExtendOrGrow lengthens B by n bytes, growing first when needed. The new
// bytes are not zeroed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	bb.Grow(n)
	bb.B = bb.B[:len(bb.B)+n]
}

// ByteBufferPool recycles buffers through a sync.Pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // 0 keeps every buffer
}

// NewByteBufferPool returns a pool of buffers with capacity size that drops
// buffers whose capacity exceeds maxThreshold.
func NewByteBufferPool(size, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool:         sync.Pool{New: func() any { return NewByteBuffer(size) }},
		maxThreshold: maxThreshold,
	}
}

func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool. Nil is ignored.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || (p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold) {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var (
	columnPool  = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)
	payloadPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
)

func GetColumnBuffer() *ByteBuffer    { return columnPool.Get() }
func PutColumnBuffer(bb *ByteBuffer)  { columnPool.Put(bb) }
func GetPayloadBuffer() *ByteBuffer   { return payloadPool.Get() }
func PutPayloadBuffer(bb *ByteBuffer) { payloadPool.Put(bb) }
