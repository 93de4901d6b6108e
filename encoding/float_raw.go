package encoding

import (
	"iter"
	"math"

	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/internal/pool"
)

// FloatRawEncoder stores float64 values as 8-byte IEEE 754 words in the byte
// order of its engine.
type FloatRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*FloatRawEncoder)(nil)

// NewFloatRawEncoder returns a raw encoder writing with engine.
func NewFloatRawEncoder(engine endian.EndianEngine) *FloatRawEncoder {
	return &FloatRawEncoder{
		engine: engine,
		buf:    pool.GetColumnBuffer(),
	}
}

// Write encodes a single value.
func (e *FloatRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(8)
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
}

// WriteSlice encodes values with a single buffer growth.
func (e *FloatRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	start := e.buf.Len()
	e.buf.ExtendOrGrow(len(values) * 8)
	for i, v := range values {
		offset := start + i*8
		e.engine.PutUint64(e.buf.Slice(offset, offset+8), math.Float64bits(v))
	}
}

// Bytes returns the encoded column.
func (e *FloatRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *FloatRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes, always 8*Len().
func (e *FloatRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *FloatRawEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// FloatRawDecoder decodes columns written by FloatRawEncoder. It is stateless
// apart from the byte order and safe for concurrent use.
type FloatRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = FloatRawDecoder{}

// NewFloatRawDecoder returns a raw decoder reading with engine.
func NewFloatRawDecoder(engine endian.EndianEngine) FloatRawDecoder {
	return FloatRawDecoder{engine: engine}
}

// All yields min(count, len(data)/8) values.
func (d FloatRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := min(count, len(data)/8)
		for i := range n {
			if !yield(math.Float64frombits(d.engine.Uint64(data[i*8:]))) {
				return
			}
		}
	}
}

// At returns the value at index in O(1).
func (d FloatRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	offset := index * 8
	if offset+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[offset:])), true
}

// ByteLength returns the encoded size of count values.
func (FloatRawDecoder) ByteLength(count int) int {
	return count * 8
}
