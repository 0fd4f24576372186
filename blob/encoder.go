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

// Marshal encodes t into a new blob.
func Marshal(t *text.Text, opts ...Option) ([]byte, error) {
	return AppendMarshal(nil, t, opts...)
}

// AppendMarshal encodes t and appends the blob to dst.
func AppendMarshal(dst []byte, t *text.Text, opts ...Option) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil text", errs.ErrInvalidArgument)
	}

	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	wide := t.Coder() == encoding.Wide
	header := section.NewHeader(t.Len(), wide)
	header.Flag.SetCompression(o.compression)
	if o.endianness == bigEndianOpt {
		header.Flag.WithBigEndian()
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	payload := appendPayload(buf, t, header.GetEndianEngine())
	header.RawSize = uint32(len(payload)) //nolint:gosec
	header.Checksum = hash.Sum(payload)

	codec, err := compress.GetCodec(o.compression)
	if err != nil {
		return nil, err
	}

	packed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	header.PayloadSize = uint32(len(packed)) //nolint:gosec

	if ce := o.logger.Check(zap.DebugLevel, "text blob encoded"); ce != nil {
		ce.Write(
			zap.Stringer("compression", o.compression),
			zap.Stringer("coder", t.Coder()),
			zap.Int("len", t.Len()),
			zap.Int("raw_size", len(payload)),
			zap.Int("payload_size", len(packed)),
		)
	}

	dst = header.AppendTo(dst)
	dst = append(dst, packed...)

	return dst, nil
}

// appendPayload writes the units of t into buf in the byte order of engine.
func appendPayload(buf *pool.ByteBuffer, t *text.Text, engine endian.EndianEngine) []byte {
	if t.Coder() == encoding.Narrow || engine == endian.GetLittleEndianEngine() {
		buf.B = t.AppendRaw(buf.B)
		return buf.B
	}

	scratch := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(scratch)

	scratch.B = t.AppendRaw(scratch.B)
	buf.B = endian.AppendUnits(engine, buf.B, scratch.B)

	return buf.B
}
