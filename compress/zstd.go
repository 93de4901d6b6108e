package compress

// ZstdCompressor uses Zstandard at the default level. It gives the best ratio
// of the built-in codecs and suits archived run data.
//
// The pure-Go klauspost/compress implementation is used unless the module is
// built with the "gozstd" tag and cgo, which switches to libzstd through
// valyala/gozstd. Both produce standard Zstandard frames, so either build
// reads the other's output.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns the Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
