package section

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/format"
)

// Flag holds the packed descriptor bytes of a header.
type Flag struct {
	// Options packs the option bits and the format magic.
	Options uint16
	// EncodingType holds the scale encoding in bits 0-3 and the value/error
	// encoding in bits 4-7.
	EncodingType uint8
	// CompressionType is the payload codec.
	CompressionType uint8
	// Display holds the selected and visible bits.
	Display uint8
}

// NewFlag returns a little-endian, visible, raw-encoded, Zstd-compressed flag.
func NewFlag() Flag {
	return Flag{
		Options:         MagicSeriesV1,
		EncodingType:    ScaleEncodingRaw | ValueEncodingRaw,
		CompressionType: uint8(format.CompressionZstd),
		Display:         VisibleMask,
	}
}

func (f *Flag) setOption(mask uint16, on bool) {
	if on {
		f.Options |= mask
	} else {
		f.Options &^= mask
	}
}

func (f *Flag) setDisplay(mask uint8, on bool) {
	if on {
		f.Display |= mask
	} else {
		f.Display &^= mask
	}
}

// IsBigEndian reports whether fields after the options word are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// SetBigEndian selects the byte order.
func (f *Flag) SetBigEndian(big bool) {
	f.setOption(EndiannessMask, big)
}

// HasErrors reports whether the payload carries an error column.
func (f Flag) HasErrors() bool {
	return f.Options&ErrorsMask != 0
}

// SetHasErrors marks the error column as present.
func (f *Flag) SetHasErrors(on bool) {
	f.setOption(ErrorsMask, on)
}

// IsModeled reports whether the payload carries a model section.
func (f Flag) IsModeled() bool {
	return f.Options&ModeledMask != 0
}

// SetModeled marks the model section as present.
func (f *Flag) SetModeled(on bool) {
	f.setOption(ModeledMask, on)
}

func (f Flag) Selected() bool {
	return f.Display&SelectedMask != 0
}

func (f *Flag) SetSelected(on bool) {
	f.setDisplay(SelectedMask, on)
}

func (f Flag) Visible() bool {
	return f.Display&VisibleMask != 0
}

func (f *Flag) SetVisible(on bool) {
	f.setDisplay(VisibleMask, on)
}

// MagicNumber returns bits 4-15 of the options word.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// ScaleEncoding returns the encoding of the scale column.
func (f Flag) ScaleEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType & 0x0F)
}

// SetScaleEncoding sets bits 0-3 of EncodingType.
func (f *Flag) SetScaleEncoding(enc format.EncodingType) {
	f.EncodingType = f.EncodingType&0xF0 | uint8(enc)&0x0F
}

// ValueEncoding returns the encoding of the value and error columns.
func (f Flag) ValueEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType >> 4)
}

// SetValueEncoding sets bits 4-7 of EncodingType.
func (f *Flag) SetValueEncoding(enc format.EncodingType) {
	f.EncodingType = f.EncodingType&0x0F | (uint8(enc)&0x0F)<<4
}

// Compression returns the payload codec.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload codec.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic, the reserved bits and the enumerations.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicSeriesV1 {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, f.MagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 || f.Display&^(SelectedMask|VisibleMask) != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}
	if !f.ScaleEncoding().Valid() || !f.ValueEncoding().Valid() {
		return fmt.Errorf("%w: encoding 0x%02x", errs.ErrInvalidHeaderFlags, f.EncodingType)
	}
	if !f.Compression().Valid() {
		return fmt.Errorf("%w: compression 0x%02x", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}

// EndianEngine returns the engine matching the endianness bit.
func (f Flag) EndianEngine() endian.EndianEngine {
	return endian.Select(f.IsBigEndian())
}
