package text

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
)

// coderIn returns the encoding t needs when copied into a text of cfg. A wide
// text from a wide-only configuration counts as narrow when its units fit.
func (t *Text) coderIn(cfg *Config) encoding.Coder {
	if t.coder == encoding.Wide && cfg.mode.Compact() && !t.config().mode.Compact() &&
		encoding.CanNarrow(t.value, 0, t.Len()) {
		return encoding.Narrow
	}

	return t.coder
}

// Concat returns t followed by other in t's configuration. The result uses the
// wider of the two encodings.
func (t *Text) Concat(other *Text) (*Text, error) {
	if other == nil || other.IsEmpty() {
		return t, nil
	}
	if t.IsEmpty() {
		return other, nil
	}

	cfg := t.config()
	coder := cfg.mode.Coder(t.coderIn(cfg).Union(other.coderIn(cfg)))
	n, err := encoding.AddLength(t.Len(), other.Len(), coder)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, coder.Bytes(n))
	encoding.Copy(t.value, t.coder, 0, buf, coder, 0, t.Len())
	encoding.Copy(other.value, other.coder, 0, buf, coder, t.Len(), other.Len())

	return newText(cfg, buf, coder), nil
}

// Join concatenates elems with sep between consecutive elements.
func (c *Config) Join(sep *Text, elems ...*Text) (*Text, error) {
	if sep == nil {
		sep = c.empty
	}

	coder := c.mode.Initial().Union(sep.coderIn(c))
	n := 0
	for i, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("%w: nil element %d", errs.ErrInvalidArgument, i)
		}
		coder = coder.Union(e.coderIn(c))
	}

	var err error
	for i, e := range elems {
		if i > 0 {
			if n, err = encoding.AddLength(n, sep.Len(), coder); err != nil {
				return nil, err
			}
		}
		if n, err = encoding.AddLength(n, e.Len(), coder); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return c.empty, nil
	}

	buf := make([]byte, coder.Bytes(n))
	off := 0
	for i, e := range elems {
		if i > 0 {
			encoding.Copy(sep.value, sep.coder, 0, buf, coder, off, sep.Len())
			off += sep.Len()
		}
		encoding.Copy(e.value, e.coder, 0, buf, coder, off, e.Len())
		off += e.Len()
	}

	return newText(c, buf, coder), nil
}

// Join concatenates elems with sep under the default configuration.
func Join(sep *Text, elems ...*Text) (*Text, error) {
	return defaultConfig.Join(sep, elems...)
}

// SubText returns the units in [begin, end). A wide region whose units all
// fit the narrow encoding is narrowed.
func (t *Text) SubText(begin, end int) (*Text, error) {
	n := t.Len()
	if err := checkBeginEnd(begin, end, n); err != nil {
		return nil, err
	}
	if begin == 0 && end == n {
		return t, nil
	}

	return t.config().fromRegion(t.value, t.coder, begin, end-begin), nil
}

// SubTextFrom returns the units from begin to the end of t.
func (t *Text) SubTextFrom(begin int) (*Text, error) {
	return t.SubText(begin, t.Len())
}

// ReplaceUnit returns t with every occurrence of oldUnit replaced by newUnit.
// A wide text whose result fits the narrow encoding is narrowed.
func (t *Text) ReplaceUnit(oldUnit, newUnit uint16) *Text {
	if oldUnit == newUnit {
		return t
	}

	v := t.view()
	first := indexOfUnit(v, oldUnit, 0)
	if first < 0 {
		return t
	}

	cfg := t.config()
	if v.coder == encoding.Narrow && !encoding.Narrow.Fits(newUnit) {
		buf := encoding.Widen(t.value, 0, v.n)
		replaceWide(buf, first, v.n, oldUnit, newUnit)

		return newText(cfg, buf, encoding.Wide)
	}
	if v.coder == encoding.Narrow {
		buf := bytes.Clone(t.value)
		for i := first; i < v.n; i++ {
			if buf[i] == byte(oldUnit) {
				buf[i] = byte(newUnit)
			}
		}

		return newText(cfg, buf, encoding.Narrow)
	}

	if cfg.mode.Compact() && encoding.Narrow.Fits(newUnit) {
		if buf, ok := narrowReplaced(v, oldUnit, newUnit); ok {
			return newText(cfg, buf, encoding.Narrow)
		}
	}

	buf := bytes.Clone(t.value)
	replaceWide(buf, first, v.n, oldUnit, newUnit)

	return newText(cfg, buf, encoding.Wide)
}

func replaceWide(buf []byte, from, n int, oldUnit, newUnit uint16) {
	for i := from; i < n; i++ {
		if encoding.GetWide(buf, i) == oldUnit {
			encoding.PutWide(buf, i, newUnit)
		}
	}
}

// narrowReplaced builds the narrow form of a wide view with oldUnit mapped to
// newUnit, failing on the first unit that still needs the wide encoding.
func narrowReplaced(v view, oldUnit, newUnit uint16) ([]byte, bool) {
	buf := make([]byte, v.n)
	for i := range v.n {
		u := v.at(i)
		if u == oldUnit {
			u = newUnit
		}
		if u > encoding.MaxNarrowUnit {
			return nil, false
		}
		buf[i] = byte(u)
	}

	return buf, true
}

// Repeat returns t repeated count times.
func (t *Text) Repeat(count int) (*Text, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative repeat count %d", errs.ErrInvalidArgument, count)
	}
	if count == 1 {
		return t, nil
	}

	cfg := t.config()
	n, err := encoding.MulLength(t.Len(), count, t.coder)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return cfg.empty, nil
	}

	return newText(cfg, bytes.Repeat(t.value, count), t.coder), nil
}
