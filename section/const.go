package section

import "github.com/ornl-ndav/ISAW-sub008/format"

const (
	// Option bits (bits 0-3 of the options word)
	EndiannessMask   = 0x0001 // 0 little-endian, 1 big-endian
	ErrorsMask       = 0x0002 // error column present
	ModeledMask      = 0x0004 // model section present
	ReservedBitsMask = 0x0008 // must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicSeriesV1 identifies version 1 of the persisted series format.
	MagicSeriesV1 = 0xD510

	// Display bits
	SelectedMask = 0x01
	VisibleMask  = 0x02

	ScaleEncodingRaw     = uint8(format.TypeRaw)
	ScaleEncodingGorilla = uint8(format.TypeGorilla)
	ValueEncodingRaw     = uint8(format.TypeRaw) << 4
	ValueEncodingGorilla = uint8(format.TypeGorilla) << 4
)

const (
	HeaderSize = 32 // fixed header size in bytes

	// MaxPayloadLength is the largest payload a header can describe.
	MaxPayloadLength = 1<<32 - 1
)
