package text

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/arloliu/ctext/encoding"
	"github.com/arloliu/ctext/errs"
	"github.com/arloliu/ctext/ucd"
)

func textSpan(t *Text) span {
	if t == nil {
		return span{}
	}

	return bufSpan(t.value, t.coder, 0, t.Len())
}

// builderSpan returns a span over the content of other, copying it when it is
// the receiver so the splice never reads units it is moving.
func (b *Builder) builderSpan(other *Builder) span {
	if other == nil {
		return span{}
	}
	if other == b {
		return bufSpan(slices.Clone(b.value[:b.coder.Bytes(b.count)]), b.coder, 0, b.count)
	}

	return bufSpan(other.value, other.coder, 0, other.count)
}

func codePointSpan(cp rune) (span, error) {
	if !ucd.IsValidCodePoint(cp) {
		return span{}, fmt.Errorf("%w: code point 0x%X", errs.ErrInvalidArgument, cp)
	}
	if ucd.IsBMP(cp) {
		return unitSpan([]uint16{uint16(cp)}), nil //nolint:gosec
	}

	return unitSpan([]uint16{ucd.HighSurrogate(cp), ucd.LowSurrogate(cp)}), nil
}

func (b *Builder) insertAt(offset int, s span) error {
	if err := checkOffset(offset, b.count); err != nil {
		return err
	}

	return b.splice(offset, offset, s)
}

// Append appends the units of t. A nil text appends nothing.
func (b *Builder) Append(t *Text) error {
	return b.splice(b.count, b.count, textSpan(t))
}

// AppendBuilder appends the current content of other, which may be b itself.
func (b *Builder) AppendBuilder(other *Builder) error {
	return b.splice(b.count, b.count, b.builderSpan(other))
}

// AppendString appends the UTF-16 units of s.
func (b *Builder) AppendString(s string) error {
	return b.Append(b.config().FromString(s))
}

// AppendUnits appends units.
func (b *Builder) AppendUnits(units []uint16) error {
	return b.splice(b.count, b.count, unitSpan(units))
}

// AppendUnitsRange appends units[offset:offset+count].
func (b *Builder) AppendUnitsRange(units []uint16, offset, count int) error {
	if err := checkOffsetCount(offset, count, len(units)); err != nil {
		return err
	}

	return b.AppendUnits(units[offset : offset+count])
}

// AppendUnit appends a single unit.
func (b *Builder) AppendUnit(u uint16) error {
	if b.coder == encoding.Narrow && u <= encoding.MaxNarrowUnit && b.count < b.Cap() {
		b.value[b.count] = byte(u)
		b.count++

		return nil
	}

	return b.AppendUnits([]uint16{u})
}

// AppendCodePoint appends cp, as a surrogate pair when it is supplementary.
func (b *Builder) AppendCodePoint(cp rune) error {
	s, err := codePointSpan(cp)
	if err != nil {
		return err
	}

	return b.splice(b.count, b.count, s)
}

// AppendBool appends "true" or "false".
func (b *Builder) AppendBool(v bool) error {
	var buf [8]byte
	return b.splice(b.count, b.count, narrowBytes(strconv.AppendBool(buf[:0], v)))
}

// AppendInt appends the decimal form of v.
func (b *Builder) AppendInt(v int64) error {
	var buf [24]byte
	return b.splice(b.count, b.count, narrowBytes(strconv.AppendInt(buf[:0], v, 10)))
}

// AppendUint appends the decimal form of v.
func (b *Builder) AppendUint(v uint64) error {
	var buf [24]byte
	return b.splice(b.count, b.count, narrowBytes(strconv.AppendUint(buf[:0], v, 10)))
}

// AppendFloat appends the shortest decimal form of v at the given bit size.
func (b *Builder) AppendFloat(v float64, bitSize int) error {
	var buf [32]byte
	return b.splice(b.count, b.count, narrowBytes(strconv.AppendFloat(buf[:0], v, 'g', -1, bitSize)))
}

// AppendValue appends the text form of v. Texts, builders, strings, unit
// slices, booleans and numbers are appended directly, a rune as a code point
// and anything else through fmt.Sprint.
func (b *Builder) AppendValue(v any) error {
	return b.InsertValue(b.count, v)
}

// Insert inserts the units of t at offset.
func (b *Builder) Insert(offset int, t *Text) error {
	return b.insertAt(offset, textSpan(t))
}

// InsertBuilder inserts the current content of other at offset.
func (b *Builder) InsertBuilder(offset int, other *Builder) error {
	return b.insertAt(offset, b.builderSpan(other))
}

// InsertString inserts the UTF-16 units of s at offset.
func (b *Builder) InsertString(offset int, s string) error {
	return b.Insert(offset, b.config().FromString(s))
}

// InsertUnits inserts units at offset.
func (b *Builder) InsertUnits(offset int, units []uint16) error {
	return b.insertAt(offset, unitSpan(units))
}

// InsertUnit inserts a single unit at offset.
func (b *Builder) InsertUnit(offset int, u uint16) error {
	return b.insertAt(offset, unitSpan([]uint16{u}))
}

// InsertCodePoint inserts cp at offset.
func (b *Builder) InsertCodePoint(offset int, cp rune) error {
	if err := checkOffset(offset, b.count); err != nil {
		return err
	}
	s, err := codePointSpan(cp)
	if err != nil {
		return err
	}

	return b.splice(offset, offset, s)
}

// InsertValue inserts the text form of v at offset, see AppendValue.
func (b *Builder) InsertValue(offset int, v any) error {
	if err := checkOffset(offset, b.count); err != nil {
		return err
	}

	var buf [32]byte
	switch x := v.(type) {
	case *Text:
		return b.splice(offset, offset, textSpan(x))
	case *Builder:
		return b.splice(offset, offset, b.builderSpan(x))
	case string:
		return b.splice(offset, offset, textSpan(b.config().FromString(x)))
	case []uint16:
		return b.splice(offset, offset, unitSpan(x))
	case rune:
		return b.InsertCodePoint(offset, x)
	case bool:
		return b.splice(offset, offset, narrowBytes(strconv.AppendBool(buf[:0], x)))
	case int:
		return b.splice(offset, offset, narrowBytes(strconv.AppendInt(buf[:0], int64(x), 10)))
	case int64:
		return b.splice(offset, offset, narrowBytes(strconv.AppendInt(buf[:0], x, 10)))
	case uint:
		return b.splice(offset, offset, narrowBytes(strconv.AppendUint(buf[:0], uint64(x), 10)))
	case uint64:
		return b.splice(offset, offset, narrowBytes(strconv.AppendUint(buf[:0], x, 10)))
	case float32:
		return b.splice(offset, offset, narrowBytes(strconv.AppendFloat(buf[:0], float64(x), 'g', -1, 32)))
	case float64:
		return b.splice(offset, offset, narrowBytes(strconv.AppendFloat(buf[:0], x, 'g', -1, 64)))
	case fmt.Stringer:
		return b.splice(offset, offset, textSpan(b.config().FromString(x.String())))
	default:
		return b.splice(offset, offset, textSpan(b.config().FromString(fmt.Sprint(x))))
	}
}

// Remove deletes units [start, end). An end past the length is clamped.
func (b *Builder) Remove(start, end int) error {
	end = min(end, b.count)
	if err := checkBeginEnd(start, end, b.count); err != nil {
		return err
	}
	if start == end {
		return nil
	}

	return b.splice(start, end, span{})
}

// DeleteCharAt deletes the unit at index.
func (b *Builder) DeleteCharAt(index int) error {
	if err := checkIndex(index, b.count); err != nil {
		return err
	}

	return b.splice(index, index+1, span{})
}

// Replace replaces units [start, end) with t. An end past the length is
// clamped.
func (b *Builder) Replace(start, end int, t *Text) error {
	end = min(end, b.count)
	if err := checkBeginEnd(start, end, b.count); err != nil {
		return err
	}

	return b.splice(start, end, textSpan(t))
}

// SetCharAt overwrites the unit at index.
func (b *Builder) SetCharAt(index int, u uint16) error {
	if err := checkIndex(index, b.count); err != nil {
		return err
	}

	if b.coder == encoding.Narrow {
		if u <= encoding.MaxNarrowUnit {
			b.value[index] = byte(u)
			return nil
		}

		return b.promote(index, index+1, unitSpan([]uint16{u}), 0)
	}

	encoding.PutWide(b.value, index, u)
	if b.state == narrowExact {
		b.state = narrowMaybe
	}

	return nil
}

// Reverse reverses the order of the units in place. Surrogate pairs are
// swapped unit by unit like any other unit, so a pair comes out as a low
// surrogate followed by a high surrogate.
func (b *Builder) Reverse() {
	n := b.count
	if b.coder == encoding.Narrow {
		slices.Reverse(b.value[:n])
		return
	}

	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		ui, uj := encoding.GetWide(b.value, i), encoding.GetWide(b.value, j)
		encoding.PutWide(b.value, i, uj)
		encoding.PutWide(b.value, j, ui)
	}
}

// CharAt returns the unit at index.
func (b *Builder) CharAt(index int) (uint16, error) {
	if err := checkIndex(index, b.count); err != nil {
		return 0, err
	}

	return encoding.GetUnit(b.value, b.coder, index), nil
}

// CodePointAt returns the code point starting at index.
func (b *Builder) CodePointAt(index int) (rune, error) {
	if err := checkIndex(index, b.count); err != nil {
		return 0, err
	}
	cp, _ := b.view().codePointAt(index)

	return cp, nil
}

// SubText returns units [begin, end) as a text in its minimal encoding.
func (b *Builder) SubText(begin, end int) (*Text, error) {
	if err := checkBeginEnd(begin, end, b.count); err != nil {
		return nil, err
	}

	return b.config().fromRegion(b.value, b.coder, begin, end-begin), nil
}

// IndexOf returns the index of the first occurrence of t at or after from, or -1.
func (b *Builder) IndexOf(t *Text, from int) int {
	return indexOf(b.view(), t.view(), from)
}

// LastIndexOf returns the index of the last occurrence of t at or before from,
// or -1.
func (b *Builder) LastIndexOf(t *Text, from int) int {
	return lastIndexOf(b.view(), t.view(), from)
}

// IndexOfUnit returns the index of the first occurrence of u at or after from,
// or -1.
func (b *Builder) IndexOfUnit(u uint16, from int) int {
	return indexOfUnit(b.view(), u, from)
}

// Compare orders the contents of b and other unit by unit, like Text.Compare.
func (b *Builder) Compare(other *Builder) int {
	return compareViews(b.view(), other.view())
}
