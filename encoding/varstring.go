package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/internal/pool"
)

// MaxTextLength bounds a single encoded string. Attribute text is far
// shorter in practice; the bound protects decoders from corrupt prefixes.
const MaxTextLength = 1 << 20

// VarStringEncoder writes variable-length records: uvarint-prefixed strings,
// zigzag varints and fixed-width floats in the engine's byte order.
//
// It is not a ColumnarEncoder; callers define the record layout.
type VarStringEncoder struct {
	buf    *pool.ByteBuffer
	put    func(*pool.ByteBuffer)
	engine endian.EndianEngine
	count  int
}

// NewVarStringEncoder returns an encoder writing fixed-width fields with engine.
func NewVarStringEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{
		engine: engine,
		buf:    pool.GetColumnBuffer(),
		put:    pool.PutColumnBuffer,
	}
}

// NewPayloadEncoder is NewVarStringEncoder backed by the larger payload pool,
// for assembling a whole persisted series.
func NewPayloadEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
		put:    pool.PutPayloadBuffer,
	}
}

// Write encodes text with a uvarint length prefix.
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("text length %d exceeds maximum %d", len(text), MaxTextLength)
	}

	e.count++
	e.buf.Grow(binary.MaxVarintLen32 + len(text))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(text)))
	e.buf.B = append(e.buf.B, text...)

	return nil
}

// WriteSlice encodes texts in order, validating all of them first.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	total := 0
	for _, text := range texts {
		if len(text) > MaxTextLength {
			return fmt.Errorf("text length %d exceeds maximum %d", len(text), MaxTextLength)
		}
		total += binary.MaxVarintLen32 + len(text)
	}

	e.buf.Grow(total)
	for _, text := range texts {
		_ = e.Write(text)
	}

	return nil
}

// WriteBytes writes b with a uvarint length prefix.
func (e *VarStringEncoder) WriteBytes(b []byte) {
	e.buf.Grow(binary.MaxVarintLen64 + len(b))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(b)))
	e.buf.B = append(e.buf.B, b...)
}

// WriteByte appends a single tag byte.
func (e *VarStringEncoder) WriteByte(b byte) error {
	e.buf.B = append(e.buf.B, b)
	return nil
}

// WriteUvarint encodes an unsigned varint.
func (e *VarStringEncoder) WriteUvarint(val uint64) {
	e.buf.B = binary.AppendUvarint(e.buf.B, val)
}

// WriteVarint encodes a signed value as a zigzag varint.
func (e *VarStringEncoder) WriteVarint(val int64) {
	e.buf.B = binary.AppendVarint(e.buf.B, val)
}

// WriteFloat32 writes a 4-byte IEEE 754 word.
func (e *VarStringEncoder) WriteFloat32(val float32) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, math.Float32bits(val))
}

// WriteFloat64 writes an 8-byte IEEE 754 word.
func (e *VarStringEncoder) WriteFloat64(val float64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
}

// Bytes returns the encoded records. Do not modify the returned slice.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings written.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used again.
func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		e.put(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder reads records written by VarStringEncoder.
//
// The first failure is sticky: later reads return zero values and Err keeps
// reporting the original problem, so a record can be read field by field and
// checked once.
type VarStringDecoder struct {
	data   []byte
	engine endian.EndianEngine
	pos    int
	err    error
}

// NewVarStringDecoder returns a decoder over data.
func NewVarStringDecoder(data []byte, engine endian.EndianEngine) *VarStringDecoder {
	return &VarStringDecoder{data: data, engine: engine}
}

// Err returns the first decoding failure, if any.
func (d *VarStringDecoder) Err() error {
	return d.err
}

// Remaining returns the number of unread bytes.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *VarStringDecoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("offset %d: "+format, append([]any{d.pos}, args...)...)
	}
}

func (d *VarStringDecoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || n > d.Remaining() {
		d.fail("need %d bytes, have %d", n, d.Remaining())
		return nil
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b
}

// ReadString reads a uvarint-prefixed string.
func (d *VarStringDecoder) ReadString() string {
	n := d.ReadUvarint()
	if d.err != nil {
		return ""
	}
	if n > MaxTextLength {
		d.fail("text length %d exceeds maximum %d", n, MaxTextLength)
		return ""
	}

	return string(d.take(int(n)))
}

// ReadBytes reads a uvarint-prefixed byte block. The result aliases the
// decoder's input.
func (d *VarStringDecoder) ReadBytes() []byte {
	n := d.ReadUvarint()
	if d.err != nil {
		return nil
	}
	if n > uint64(d.Remaining()) {
		d.fail("block length %d exceeds remaining %d", n, d.Remaining())
		return nil
	}

	return d.take(int(n))
}

// ReadByte reads a single byte.
func (d *VarStringDecoder) ReadByte() (byte, error) {
	b := d.take(1)
	if b == nil {
		return 0, d.err
	}

	return b[0], nil
}

// ReadUvarint reads an unsigned varint.
func (d *VarStringDecoder) ReadUvarint() uint64 {
	if d.err != nil {
		return 0
	}

	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		d.fail("malformed uvarint")
		return 0
	}
	d.pos += n

	return v
}

// ReadVarint reads a zigzag varint.
func (d *VarStringDecoder) ReadVarint() int64 {
	if d.err != nil {
		return 0
	}

	v, n := binary.Varint(d.data[d.pos:])
	if n <= 0 {
		d.fail("malformed varint")
		return 0
	}
	d.pos += n

	return v
}

// ReadFloat32 reads a 4-byte IEEE 754 word.
func (d *VarStringDecoder) ReadFloat32() float32 {
	b := d.take(4)
	if b == nil {
		return 0
	}

	return math.Float32frombits(d.engine.Uint32(b))
}

// ReadFloat64 reads an 8-byte IEEE 754 word.
func (d *VarStringDecoder) ReadFloat64() float64 {
	b := d.take(8)
	if b == nil {
		return 0
	}

	return math.Float64frombits(d.engine.Uint64(b))
}
