package text

import (
	"fmt"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
)

// AppendRaw appends the stored representation of t to dst: one byte per unit
// when narrow, two little-endian bytes per unit when wide.
func (t *Text) AppendRaw(dst []byte) []byte {
	return append(dst, t.value...)
}

// RawSize returns the number of bytes AppendRaw appends.
func (t *Text) RawSize() int {
	return len(t.value)
}

// FromRaw builds a text from a stored representation produced by AppendRaw.
// The result uses the minimal encoding for c regardless of coder.
func (c *Config) FromRaw(b []byte, coder encoding.Coder) (*Text, error) {
	if coder != encoding.Narrow && coder != encoding.Wide {
		return nil, fmt.Errorf("%w: coder %d", errs.ErrInvalidArgument, coder)
	}
	if coder == encoding.Wide && len(b)&1 != 0 {
		return nil, fmt.Errorf("%w: odd wide payload of %d bytes", errs.ErrInvalidArgument, len(b))
	}
	if err := encoding.CheckLength(coder.Units(len(b)), coder); err != nil {
		return nil, err
	}

	return c.fromRegion(b, coder, 0, coder.Units(len(b))), nil
}

// FromRaw builds a default-configuration text from a stored representation.
func FromRaw(b []byte, coder encoding.Coder) (*Text, error) {
	return defaultConfig.FromRaw(b, coder)
}
