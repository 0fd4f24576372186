package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/endian"
	"github.com/arloliu/ctext/errs"
)

// Header is the fixed-size metadata preceding a text blob payload.
type Header struct {
	Flag Flag // 3 bytes, offset 0-2

	// Reserved must be zero, offset 3.
	Reserved uint8
	// Length is the text length in code units.
	Length uint32 // 4 bytes, offset 4-7
	// RawSize is the uncompressed payload size in bytes.
	RawSize uint32 // 4 bytes, offset 8-11
	// PayloadSize is the stored payload size in bytes.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// Checksum is the xxhash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 16-23
}

// NewHeader creates a header for a text of length units.
func NewHeader(length int, wide bool) *Header {
	h := &Header{
		Flag:   NewFlag(),
		Length: uint32(length), //nolint:gosec
	}
	h.Flag.SetWide(wide)

	return h
}

// UnitSize returns the number of payload bytes per unit.
func (h *Header) UnitSize() int {
	if h.Flag.IsWide() {
		return 2
	}

	return 1
}

// Parse parses the header from data, which must be exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options is always little-endian.
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Compression = data[2]
	h.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.GetEndianEngine()
	h.Length = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	coder := encoding.Narrow
	if h.Flag.IsWide() {
		coder = encoding.Wide
	}
	if err := encoding.CheckLength(int(h.Length), coder); err != nil {
		return err
	}

	if uint64(h.Length)*uint64(h.UnitSize()) != uint64(h.RawSize) {
		return fmt.Errorf("%w: %d units need %d bytes, header records %d",
			errs.ErrPayloadSizeMismatch, h.Length, uint64(h.Length)*uint64(h.UnitSize()), h.RawSize)
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b.
func (h *Header) AppendTo(b []byte) []byte {
	engine := h.GetEndianEngine()

	b = binary.LittleEndian.AppendUint16(b, h.Flag.Options)
	b = append(b, h.Flag.Compression, h.Reserved)
	b = engine.AppendUint32(b, h.Length)
	b = engine.AppendUint32(b, h.RawSize)
	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// GetEndianEngine returns the endian engine recorded in the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
