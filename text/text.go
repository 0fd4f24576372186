package text

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
	"unicode/utf8"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/ucd"
)

// Text is an immutable sequence of 16-bit units.
//
// Under encoding.ModeCompact a Text is always stored in the minimal encoding
// for its content: narrow when every unit is <= 0xFF, wide otherwise. Texts are
// shared by pointer; no operation mutates a Text after construction, so a Text
// may be read from many goroutines at once. The zero value is an empty text of
// the default configuration.
type Text struct {
	value []byte
	coder encoding.Coder
	cfg   *Config

	// hash is published by storing the value before setting hashDone.
	hash     atomic.Int32
	hashDone atomic.Bool
}

func newText(cfg *Config, value []byte, coder encoding.Coder) *Text {
	return &Text{value: value, coder: coder, cfg: cfg}
}

func (t *Text) config() *Config {
	if t.cfg == nil {
		return defaultConfig
	}

	return t.cfg
}

func (t *Text) view() view {
	return view{b: t.value, coder: t.coder, n: t.Len()}
}

// Len returns the number of units.
func (t *Text) Len() int {
	return t.coder.Units(len(t.value))
}

// IsEmpty reports whether the text has no units.
func (t *Text) IsEmpty() bool {
	return len(t.value) == 0
}

// Coder returns the storage encoding.
func (t *Text) Coder() encoding.Coder {
	return t.coder
}

// Config returns the configuration the text was created with.
func (t *Text) Config() *Config {
	return t.config()
}

// CharAt returns the unit at index.
func (t *Text) CharAt(index int) (uint16, error) {
	if err := checkIndex(index, t.Len()); err != nil {
		return 0, err
	}

	return encoding.GetUnit(t.value, t.coder, index), nil
}

// CodePointAt returns the code point starting at index. An unpaired surrogate
// is returned as its own value.
func (t *Text) CodePointAt(index int) (rune, error) {
	v := t.view()
	if err := checkIndex(index, v.n); err != nil {
		return 0, err
	}
	cp, _ := v.codePointAt(index)

	return cp, nil
}

// CodePointBefore returns the code point ending just before index.
func (t *Text) CodePointBefore(index int) (rune, error) {
	v := t.view()
	if err := checkIndex(index-1, v.n); err != nil {
		return 0, err
	}
	cp, _ := v.codePointBefore(index)

	return cp, nil
}

// CodePointCount returns the number of code points in units [begin, end).
// Unpaired surrogates count as one code point each.
func (t *Text) CodePointCount(begin, end int) (int, error) {
	v := t.view()
	if err := checkBeginEnd(begin, end, v.n); err != nil {
		return 0, err
	}
	if v.coder == encoding.Narrow {
		return end - begin, nil
	}

	return v.codePointCount(begin, end), nil
}

// Units returns a copy of the units.
func (t *Text) Units() []uint16 {
	return encoding.ToUnits(t.value, t.coder, 0, t.Len())
}

// Latin1 returns a copy of the stored bytes and true when the text is narrow.
func (t *Text) Latin1() ([]byte, bool) {
	if t.coder != encoding.Narrow {
		return nil, false
	}

	return slices.Clone(t.value), true
}

// String returns the UTF-8 form of the text. Unpaired surrogates become U+FFFD.
func (t *Text) String() string {
	if t.coder == encoding.Narrow {
		if isASCII(t.value) {
			return string(t.value)
		}
		b := make([]byte, 0, len(t.value)*2)
		for _, c := range t.value {
			b = utf8.AppendRune(b, rune(c))
		}

		return string(b)
	}

	v := t.view()
	b := make([]byte, 0, v.n*3)
	for i := 0; i < v.n; {
		cp, w := v.codePointAt(i)
		if w == 1 && ucd.IsSurrogate(uint16(cp)) { //nolint:gosec
			cp = utf8.RuneError
		}
		b = utf8.AppendRune(b, cp)
		i += w
	}

	return string(b)
}

// Clone returns a deep copy of t.
func (t *Text) Clone() *Text {
	return newText(t.config(), slices.Clone(t.value), t.coder)
}

// CodePoints returns a cursor over the code points of t.
func (t *Text) CodePoints() *Cursor {
	return &Cursor{v: t.view()}
}

// All returns an iterator over (unit index, code point) pairs.
func (t *Text) All() iter.Seq2[int, rune] {
	v := t.view()
	return func(yield func(int, rune) bool) {
		for i := 0; i < v.n; {
			cp, w := v.codePointAt(i)
			if !yield(i, cp) {
				return
			}
			i += w
		}
	}
}

// FromString returns the text holding the UTF-16 units of s. Invalid UTF-8
// bytes decode to U+FFFD.
func (c *Config) FromString(s string) *Text {
	if len(s) == 0 {
		return c.empty
	}
	if isASCII([]byte(s)) {
		return c.fromNarrow([]byte(s))
	}

	n := 0
	for _, r := range s {
		n += ucd.CharCount(r)
	}

	return c.buildRunes(n, func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	})
}

// FromUnits returns the text holding a copy of units.
func (c *Config) FromUnits(units []uint16) *Text {
	if len(units) == 0 {
		return c.empty
	}
	buf, coder := encoding.FromUnits(units, c.mode)

	return newText(c, buf, coder)
}

// FromUnitsRange returns the text holding units[offset:offset+count].
func (c *Config) FromUnitsRange(units []uint16, offset, count int) (*Text, error) {
	if err := checkOffsetCount(offset, count, len(units)); err != nil {
		return nil, err
	}

	return c.FromUnits(units[offset : offset+count]), nil
}

// FromCodePoints returns the text holding cps[offset:offset+count], with
// supplementary code points stored as surrogate pairs.
func (c *Config) FromCodePoints(cps []rune, offset, count int) (*Text, error) {
	if err := checkOffsetCount(offset, count, len(cps)); err != nil {
		return nil, err
	}

	cps = cps[offset : offset+count]
	n := 0
	for _, cp := range cps {
		if !ucd.IsValidCodePoint(cp) {
			return nil, fmt.Errorf("%w: code point 0x%X", errs.ErrInvalidArgument, cp)
		}
		n += ucd.CharCount(cp)
	}
	// Surrogate pairs force wide storage.
	if n > len(cps) {
		if err := encoding.CheckLength(n, encoding.Wide); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return c.empty, nil
	}

	return c.buildRunes(n, slices.Values(cps)), nil
}

// FromLatin1 returns the text whose units are the bytes of b.
func (c *Config) FromLatin1(b []byte) *Text {
	if len(b) == 0 {
		return c.empty
	}

	return c.fromNarrow(slices.Clone(b))
}

// FromHiByte returns the text whose units combine hibyte, as the high byte,
// with each byte of ascii[offset:offset+count] as the low byte.
func (c *Config) FromHiByte(ascii []byte, hibyte, offset, count int) (*Text, error) {
	if err := checkOffsetCount(offset, count, len(ascii)); err != nil {
		return nil, err
	}
	if count == 0 {
		return c.empty, nil
	}

	src := ascii[offset : offset+count]
	hibyte &= 0xFF
	if hibyte == 0 {
		return c.fromNarrow(slices.Clone(src)), nil
	}

	buf := make([]byte, count<<1)
	hi := uint16(hibyte) << 8 //nolint:gosec
	for i, b := range src {
		encoding.PutWide(buf, i, hi|uint16(b))
	}

	return newText(c, buf, encoding.Wide), nil
}

// fromNarrow takes ownership of narrow content, widening it in wide-only mode.
func (c *Config) fromNarrow(b []byte) *Text {
	if c.mode.Compact() {
		return newText(c, b, encoding.Narrow)
	}

	return newText(c, encoding.Widen(b, 0, len(b)), encoding.Wide)
}

// fromRegion copies n units of b starting at off into a new text with the
// minimal encoding, narrowing wide content when every unit fits.
func (c *Config) fromRegion(b []byte, coder encoding.Coder, off, n int) *Text {
	if n == 0 {
		return c.empty
	}
	if coder == encoding.Narrow {
		return c.fromNarrow(slices.Clone(b[off : off+n]))
	}
	if c.mode.Compact() {
		if nb, ok := encoding.TryNarrow(b, off, n); ok {
			return newText(c, nb, encoding.Narrow)
		}
	}

	return newText(c, slices.Clone(b[off<<1:(off+n)<<1]), encoding.Wide)
}

// buildRunes encodes n units worth of code points, starting narrow and
// promoting to wide at the first code point above 0xFF.
func (c *Config) buildRunes(n int, runes iter.Seq[rune]) *Text {
	if !c.mode.Compact() {
		wide := make([]byte, n<<1)
		i := 0
		for r := range runes {
			i = putRune(wide, i, r)
		}

		return newText(c, wide, encoding.Wide)
	}

	buf := make([]byte, n)
	var wide []byte
	i := 0
	for r := range runes {
		if wide == nil {
			if r <= encoding.MaxNarrowUnit {
				buf[i] = byte(r)
				i++

				continue
			}
			wide = encoding.PromotePrefix(buf, i, n)
		}
		i = putRune(wide, i, r)
	}

	if wide == nil {
		return newText(c, buf, encoding.Narrow)
	}

	return newText(c, wide, encoding.Wide)
}

// putRune stores r at unit index i of a wide buffer and returns the next index.
func putRune(wide []byte, i int, r rune) int {
	if ucd.IsSupplementary(r) {
		encoding.PutWide(wide, i, ucd.HighSurrogate(r))
		encoding.PutWide(wide, i+1, ucd.LowSurrogate(r))

		return i + 2
	}
	encoding.PutWide(wide, i, uint16(r)) //nolint:gosec

	return i + 1
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// FromString returns the text holding the UTF-16 units of s under the default configuration.
func FromString(s string) *Text { return defaultConfig.FromString(s) }

// FromUnits returns the text holding a copy of units under the default configuration.
func FromUnits(units []uint16) *Text { return defaultConfig.FromUnits(units) }

// FromUnitsRange returns the text holding units[offset:offset+count] under the default configuration.
func FromUnitsRange(units []uint16, offset, count int) (*Text, error) {
	return defaultConfig.FromUnitsRange(units, offset, count)
}

// FromCodePoints returns the text holding cps[offset:offset+count] under the default configuration.
func FromCodePoints(cps []rune, offset, count int) (*Text, error) {
	return defaultConfig.FromCodePoints(cps, offset, count)
}

// FromLatin1 returns the text whose units are the bytes of b under the default configuration.
func FromLatin1(b []byte) *Text { return defaultConfig.FromLatin1(b) }

// FromHiByte combines hibyte with each byte of ascii[offset:offset+count] under the default configuration.
func FromHiByte(ascii []byte, hibyte, offset, count int) (*Text, error) {
	return defaultConfig.FromHiByte(ascii, hibyte, offset, count)
}
