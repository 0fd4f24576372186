package text

import (
	"fmt"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/ucd"
)

// view is a read-only window over the first n units of a coded buffer.
// Texts and builders both expose their content through views, so search,
// comparison and iteration are written once.
type view struct {
	b     []byte
	coder encoding.Coder
	n     int
}

func (v view) at(i int) uint16 {
	return encoding.GetUnit(v.b, v.coder, i)
}

// codePointAt returns the code point starting at unit i and its width in units.
// A high surrogate without a following low surrogate is returned as itself.
func (v view) codePointAt(i int) (rune, int) {
	u := v.at(i)
	if ucd.IsHighSurrogate(u) && i+1 < v.n {
		if lo := v.at(i + 1); ucd.IsLowSurrogate(lo) {
			return ucd.ToCodePoint(u, lo), 2
		}
	}

	return rune(u), 1
}

// codePointBefore returns the code point ending just before unit i and its width.
func (v view) codePointBefore(i int) (rune, int) {
	u := v.at(i - 1)
	if ucd.IsLowSurrogate(u) && i-2 >= 0 {
		if hi := v.at(i - 2); ucd.IsHighSurrogate(hi) {
			return ucd.ToCodePoint(hi, u), 2
		}
	}

	return rune(u), 1
}

func (v view) codePointCount(begin, end int) int {
	count := 0
	for i := begin; i < end; count++ {
		_, w := v.codePointAt(i)
		if i+w > end {
			w = 1
		}
		i += w
	}

	return count
}

// bytes returns the stored bytes of units [begin, end).
func (v view) bytes(begin, end int) []byte {
	s := v.coder.Shift()
	return v.b[begin<<s : end<<s]
}

// span is a run of units to be written into a buffer, taken either from a
// region of a coded byte buffer or from a unit slice.
type span struct {
	b     []byte
	coder encoding.Coder
	off   int
	units []uint16
	n     int
}

func bufSpan(b []byte, coder encoding.Coder, off, n int) span {
	return span{b: b, coder: coder, off: off, n: n}
}

func unitSpan(units []uint16) span {
	return span{units: units, coder: encoding.Wide, n: len(units)}
}

// narrowBytes wraps narrow content, e.g. ASCII digits from strconv.
func narrowBytes(b []byte) span {
	return bufSpan(b, encoding.Narrow, 0, len(b))
}

// compressTo copies units into the narrow buffer dst at dstOff, stopping at
// the first unit that does not fit. It returns the number of units copied.
func (s span) compressTo(dst []byte, dstOff int) int {
	switch {
	case s.units != nil:
		return encoding.CompressUnits(s.units, dst, dstOff)
	case s.coder == encoding.Narrow:
		return copy(dst[dstOff:dstOff+s.n], s.b[s.off:s.off+s.n])
	default:
		return encoding.Compress(s.b, s.off, dst, dstOff, s.n)
	}
}

// widenTo writes units [from, n) into the wide buffer dst at unit dstOff+from.
func (s span) widenTo(dst []byte, dstOff, from int) {
	if s.units != nil {
		encoding.PutUnits(dst, dstOff+from, s.units[from:s.n])
		return
	}
	encoding.Copy(s.b, s.coder, s.off+from, dst, encoding.Wide, dstOff+from, s.n-from)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrOutOfRange, index, length)
	}

	return nil
}

func checkOffset(offset, length int) error {
	if offset < 0 || offset > length {
		return fmt.Errorf("%w: offset %d, length %d", errs.ErrOutOfRange, offset, length)
	}

	return nil
}

func checkBeginEnd(begin, end, length int) error {
	if begin < 0 || begin > end || end > length {
		return fmt.Errorf("%w: begin %d, end %d, length %d", errs.ErrOutOfRange, begin, end, length)
	}

	return nil
}

func checkOffsetCount(offset, count, length int) error {
	if offset < 0 || count < 0 || offset > length-count {
		return fmt.Errorf("%w: offset %d, count %d, length %d", errs.ErrOutOfRange, offset, count, length)
	}

	return nil
}
