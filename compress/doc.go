// Package compress provides the payload codecs of the persisted series format.
//
// A Codec compresses the encoded payload of one series (scale, value, error,
// model and attribute sections) as a single block. Four codecs are built in:
//
//   - None: passes data through unchanged
//   - Zstd: best ratio; pure Go by default, libzstd via cgo with the
//     "gozstd" build tag
//   - S2: fastest, moderate ratio
//   - LZ4: fast decompression, length-prefixed blocks
//
// Built-in codecs are stateless values that pool their internal encoders, so
// GetCodec returns shared instances that are safe for concurrent use.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
