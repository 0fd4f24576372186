package text

import (
	"fmt"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/ucd"
)

// Decode converts b from the character encoding enc into a text. ISO 8859-1
// input maps byte for byte onto units without transcoding. The whole input is
// decoded at once.
func (c *Config) Decode(b []byte, enc xencoding.Encoding) (*Text, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil character encoding", errs.ErrInvalidArgument)
	}
	if enc == charmap.ISO8859_1 {
		return c.FromLatin1(b), nil
	}

	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", errs.ErrInvalidArgument, err)
	}

	return c.FromString(string(decoded)), nil
}

// Decode converts b from enc into a text of the default configuration.
func Decode(b []byte, enc xencoding.Encoding) (*Text, error) {
	return defaultConfig.Decode(b, enc)
}

// Encode converts t into the character encoding enc. Code points enc cannot
// represent are reported as an error, and so is an unpaired surrogate unit,
// which no encoding carries through. Units returns the raw units instead.
func (t *Text) Encode(enc xencoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil character encoding", errs.ErrInvalidArgument)
	}
	if enc == charmap.ISO8859_1 && t.coder == encoding.Narrow {
		latin1, _ := t.Latin1()
		return latin1, nil
	}

	if i := t.unpairedSurrogate(); i >= 0 {
		return nil, fmt.Errorf("%w: encode: unpaired surrogate %#04x at index %d",
			errs.ErrInvalidArgument, encoding.GetUnit(t.value, t.coder, i), i)
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(t.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", errs.ErrInvalidArgument, err)
	}

	return encoded, nil
}

// unpairedSurrogate returns the index of the first surrogate unit in t that is
// not part of a well-formed pair, or -1.
func (t *Text) unpairedSurrogate() int {
	if t.coder == encoding.Narrow {
		return -1
	}

	v := t.view()
	for i := 0; i < v.n; i++ {
		u := v.at(i)
		switch {
		case ucd.IsHighSurrogate(u) && i+1 < v.n && ucd.IsLowSurrogate(v.at(i+1)):
			i++
		case ucd.IsSurrogate(u):
			return i
		}
	}

	return -1
}
