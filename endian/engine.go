// Package endian provides the byte order engines used by the persisted series
// format.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// encoders can both patch fixed-size header fields in place and append column
// words without temporary buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// Little-endian is the default for persisted series; big-endian exists for
// interoperability with hosts that expect network order.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// Both binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Select returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise. Header flag parsing uses it to pick the
// engine recorded in the persisted flag word.
func Select(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
