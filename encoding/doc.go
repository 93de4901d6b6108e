// Package encoding holds the column codecs of the persisted series format.
//
// Float64 columns (scale points, values, errors) are written either as raw
// IEEE 754 words (FloatRawEncoder) or with Gorilla XOR compression
// (FloatGorillaEncoder), which packs slowly varying spectra and regularly
// spaced scales into a fraction of their raw size. Both implement
// ColumnarEncoder[float64]; their decoders implement ColumnarDecoder[float64].
//
// Variable-length records such as the attribute and model sections use
// VarStringEncoder and VarStringDecoder: uvarint-prefixed strings, zigzag
// varints and fixed-width floats.
//
// Encoders draw their buffers from internal/pool. Retrieve Bytes before
// calling Finish; the buffer is recycled afterwards.
package encoding
