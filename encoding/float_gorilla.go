package encoding

import (
	"iter"
	"math"
	"math/bits"

	"github.com/ornl-ndav/ISAW-sub008/internal/pool"
)

// FloatGorillaEncoder compresses float64 values with the Gorilla XOR scheme
// (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf).
//
// The first value is stored as 64 bits. Every following value is XORed with
// its predecessor and written as:
//
//	0                          value unchanged
//	10 <meaningful bits>       fits inside the previous block
//	11 <5b lead> <6b size-1> <meaningful bits>
//
// Bits are packed most significant first.
type FloatGorillaEncoder struct {
	bitBuf       uint64
	prev         uint64
	bitCount     int
	count        int
	prevLeading  int
	prevTrailing int
	hasBlock     bool

	buf *pool.ByteBuffer
}

var _ ColumnarEncoder[float64] = (*FloatGorillaEncoder)(nil)

// NewFloatGorillaEncoder returns an empty Gorilla encoder.
func NewFloatGorillaEncoder() *FloatGorillaEncoder {
	return &FloatGorillaEncoder{buf: pool.GetColumnBuffer()}
}

// Write encodes a single value.
func (e *FloatGorillaEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	cur := math.Float64bits(val)
	if e.count == 0 {
		e.writeBits(cur, 64)
		e.prev = cur
		e.count++

		return
	}

	e.writeXOR(cur ^ e.prev)
	e.prev = cur
	e.count++
}

// WriteSlice encodes values in order.
func (e *FloatGorillaEncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	e.buf.Grow(len(values) * 2)
	for _, v := range values {
		e.Write(v)
	}
}

func (e *FloatGorillaEncoder) writeXOR(xor uint64) {
	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	leading := min(bits.LeadingZeros64(xor), 31)
	trailing := bits.TrailingZeros64(xor)

	if e.hasBlock && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBits(0b10, 2)
		e.writeBits(xor>>e.prevTrailing, 64-e.prevLeading-e.prevTrailing)

		return
	}

	size := 64 - leading - trailing
	e.writeBits(0b11, 2)
	e.writeBits(uint64(leading), 5)
	e.writeBits(uint64(size-1), 6)
	e.writeBits(xor>>trailing, size)

	e.prevLeading, e.prevTrailing = leading, trailing
	e.hasBlock = true
}

// writeBits appends the low n bits of v, n <= 64.
func (e *FloatGorillaEncoder) writeBits(v uint64, n int) {
	for n > 0 {
		take := min(n, 64-e.bitCount)
		chunk := (v >> (n - take)) & lowMask(take)
		e.bitBuf = e.bitBuf<<take | chunk
		e.bitCount += take
		n -= take

		if e.bitCount == 64 {
			e.buf.B = bigEndianAppend(e.buf.B, e.bitBuf, 8)
			e.bitBuf, e.bitCount = 0, 0
		}
	}
}

// Bytes returns the encoded column including any partially filled byte,
// padded with zero bits.
func (e *FloatGorillaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	pending := (e.bitCount + 7) / 8
	if pending == 0 {
		return e.buf.Bytes()
	}

	// Pending bits are rendered past len(B) so that later writes continue
	// from the same bit position.
	e.buf.Grow(pending)

	return bigEndianAppend(e.buf.B, e.bitBuf<<(64-e.bitCount), pending)
}

// Len returns the number of encoded values.
func (e *FloatGorillaEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes, including the padded tail.
func (e *FloatGorillaEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len() + (e.bitCount+7)/8
}

// Finish returns the buffer to the pool.
func (e *FloatGorillaEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// FloatGorillaDecoder decodes columns written by FloatGorillaEncoder. It keeps
// no state between calls and is safe for concurrent use.
type FloatGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = FloatGorillaDecoder{}

// NewFloatGorillaDecoder returns a Gorilla decoder.
func NewFloatGorillaDecoder() FloatGorillaDecoder {
	return FloatGorillaDecoder{}
}

// All yields up to count values, stopping early on truncated data.
func (FloatGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		r := bitReader{data: data}
		cur, ok := r.readBits(64)
		if !ok || !yield(math.Float64frombits(cur)) {
			return
		}

		var leading, trailing int
		for i := 1; i < count; i++ {
			bit, ok := r.readBits(1)
			if !ok {
				return
			}

			if bit == 1 {
				newBlock, ok := r.readBits(1)
				if !ok {
					return
				}

				if newBlock == 1 {
					lead, ok1 := r.readBits(5)
					size, ok2 := r.readBits(6)
					if !ok1 || !ok2 {
						return
					}
					leading = int(lead)
					trailing = 64 - leading - int(size) - 1
				}

				meaningful, ok := r.readBits(64 - leading - trailing)
				if !ok || trailing < 0 {
					return
				}
				cur ^= meaningful << trailing
			}

			if !yield(math.Float64frombits(cur)) {
				return
			}
		}
	}
}

// At decodes sequentially up to index; Gorilla columns have no random access.
func (d FloatGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, index+1) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}

type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) readBits(n int) (uint64, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		off := r.pos & 7
		avail := 8 - off
		take := min(avail, n)
		chunk := (uint64(r.data[r.pos>>3]) >> (avail - take)) & lowMask(take)
		v = v<<take | chunk
		r.pos += take
		n -= take
	}

	return v, true
}

func lowMask(n int) uint64 {
	return uint64(1)<<n - 1
}

// bigEndianAppend appends the top n bytes of word, most significant first.
func bigEndianAppend(dst []byte, word uint64, n int) []byte {
	for i := range n {
		dst = append(dst, byte(word>>(56-8*i)))
	}

	return dst
}
