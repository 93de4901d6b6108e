package encoding

import "iter"

// ColumnarEncoder encodes a column of values into a pooled byte buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded column. The slice is valid until the next
	// Write, WriteSlice or Finish and must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the encoded size in bytes.
	Size() int

	// Finish returns the buffer to the pool. The encoder is unusable
	// afterwards; retrieve Bytes first.
	Finish()

	// Write encodes a single value.
	Write(v T)

	// WriteSlice encodes values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder decodes a column produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count decoded values. Malformed or short data yields
	// fewer values; callers compare the number received against count.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is out of range or
	// the data is too short.
	At(data []byte, index int, count int) (T, bool)
}

// DecodeAll collects count values from dec. ok is false when data holds fewer
// than count values.
func DecodeAll[T comparable](dec ColumnarDecoder[T], data []byte, count int) ([]T, bool) {
	out := make([]T, 0, count)
	for v := range dec.All(data, count) {
		out = append(out, v)
	}

	return out, len(out) == count
}
