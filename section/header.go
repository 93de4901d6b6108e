package section

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
)

// Header is the fixed-size prefix of a persisted series.
type Header struct {
	Flag Flag // bytes 0-3 and 14

	// Count is the number of scale points.
	Count uint32 // bytes 4-7
	// Group is the series group id.
	Group int32 // bytes 8-11
	// AttrCount is the number of attributes in the attribute section.
	AttrCount uint16 // bytes 12-13
	// PayloadLength is the stored payload size, after compression.
	PayloadLength uint32 // bytes 16-19
	// RawLength is the payload size before compression.
	RawLength uint32 // bytes 20-23
	// Checksum is the xxHash64 of the raw payload.
	Checksum uint64 // bytes 24-31
}

// NewHeader returns a header with the default flag; lengths, counts and the
// checksum are filled in by the writer.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse decodes exactly HeaderSize bytes and validates the flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The options word is always little-endian; it selects the order of the rest.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]
	h.Flag.Display = data[14]

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[15] != 0 {
		return fmt.Errorf("%w: reserved byte set", errs.ErrInvalidHeaderFlags)
	}

	engine := h.Flag.EndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.Group = int32(engine.Uint32(data[8:12])) //nolint:gosec
	h.AttrCount = engine.Uint16(data[12:14])
	h.PayloadLength = engine.Uint32(data[16:20])
	h.RawLength = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new HeaderSize slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.EndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.EncodingType, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, uint32(h.Group)) //nolint:gosec
	dst = engine.AppendUint16(dst, h.AttrCount)
	dst = append(dst, h.Flag.Display, 0)
	dst = engine.AppendUint32(dst, h.PayloadLength)
	dst = engine.AppendUint32(dst, h.RawLength)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses the header at the start of data, which may be longer
// than HeaderSize.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
