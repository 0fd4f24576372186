package section

import (
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/format"
)

// Flag holds the packed option word and the compression byte of a header.
type Flag struct {
	// Options is a packed field.
	// Bit 0 is the coder flag, 0 means narrow units, 1 means wide units.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 hold the magic number 0xCE10.
	Options uint16

	// Compression identifies the payload codec.
	Compression uint8
}

// NewFlag creates a little-endian narrow flag using Zstd compression.
func NewFlag() Flag {
	return Flag{
		Options:     MagicTextV1Opt,
		Compression: uint8(format.CompressionZstd),
	}
}

// IsWide reports whether the payload stores 16-bit units.
func (f Flag) IsWide() bool {
	return (f.Options & WideMask) != 0
}

// SetWide records whether the payload stores 16-bit units.
func (f *Flag) SetWide(wide bool) {
	if wide {
		f.Options |= WideMask
	} else {
		f.Options &^= WideMask
	}
}

// IsLittleEndian returns whether wide units are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether wide units are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicTextV1Opt {
		return errs.ErrInvalidMagic
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().Valid() {
		return errs.ErrUnsupportedCompression
	}

	return nil
}
