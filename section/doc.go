// Package section defines the fixed 32-byte header that prefixes every
// persisted series.
//
// # Layout
//
//	offset  size  field
//	0       2     options: bit 0 big-endian, bit 1 has errors, bit 2 modeled,
//	              bit 3 reserved (zero), bits 4-15 magic 0xD510; always little-endian
//	2       1     encoding: bits 0-3 scale column, bits 4-7 value/error columns
//	3       1     payload compression
//	4       4     point count
//	8       4     group id (signed)
//	12      2     attribute count
//	14      1     display: bit 0 selected, bit 1 visible
//	15      1     reserved (zero)
//	16      4     payload length (compressed, as stored)
//	20      4     raw length (payload before compression)
//	24      8     xxHash64 of the raw payload
//
// All fields after the options word use the byte order selected by bit 0.
// The payload follows the header immediately.
package section
