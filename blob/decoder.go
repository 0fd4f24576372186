package blob

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/ctext/compress"
	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/endian"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/internal/hash"
	"github.com/arloliu/ctext/internal/pool"
	"github.com/arloliu/ctext/section"
	"github.com/arloliu/ctext/text"
)

// maxSizeHintRatio bounds the decode buffer preallocated from the header to
// this multiple of the stored payload size. LZ4 blocks cannot expand further.
const maxSizeHintRatio = 255

// sizeHint returns the decode buffer size to preallocate for a payload of
// packed bytes whose header records rawSize decoded bytes.
func sizeHint(rawSize uint32, packed int) int {
	return int(min(uint64(rawSize), uint64(packed)*maxSizeHintRatio))
}

// Inspect parses and validates the header of a blob without touching the
// payload.
func Inspect(data []byte) (section.Header, error) {
	var header section.Header
	if len(data) < section.HeaderSize {
		return header, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return header, err
	}

	return header, nil
}

// Unmarshal decodes a blob produced by Marshal.
func Unmarshal(data []byte, opts ...Option) (*text.Text, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	header, err := Inspect(data)
	if err != nil {
		return nil, err
	}

	packed := data[section.PayloadOffset:]
	if len(packed) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header records %d payload bytes, have %d",
			errs.ErrPayloadSizeMismatch, header.PayloadSize, len(packed))
	}

	compression := header.Flag.GetCompression()
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	if ce := o.logger.Check(zap.DebugLevel, "text blob decoding"); ce != nil {
		ce.Write(
			zap.Stringer("compression", compression),
			zap.Bool("wide", header.Flag.IsWide()),
			zap.Bool("big_endian", header.Flag.IsBigEndian()),
			zap.Uint32("len", header.Length),
		)
	}

	raw, err := compress.DecompressSized(codec, packed, sizeHint(header.RawSize, len(packed)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(raw) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: expected %d raw bytes, got %d",
			errs.ErrPayloadSizeMismatch, header.RawSize, len(raw))
	}

	if sum := hash.Sum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	if !header.Flag.IsWide() {
		return o.cfg.FromRaw(raw, encoding.Narrow)
	}

	engine := header.GetEndianEngine()
	if engine == endian.GetLittleEndianEngine() {
		return o.cfg.FromRaw(raw, encoding.Wide)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.B = endian.ReadUnits(engine, buf.B, raw)

	return o.cfg.FromRaw(buf.B, encoding.Wide)
}
